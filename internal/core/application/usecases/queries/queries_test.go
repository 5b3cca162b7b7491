package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	var badID kernel.UUID
	_, err = queries.NewGetOrderQuery(badID)
	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetTrackingQuery(t *testing.T) {
	query, err := queries.NewGetTrackingQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetTrackingQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTrackingQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetTrackingQueryIsNotConstructed)
}

func TestNewGetCarrierOrdersQuery(t *testing.T) {
	query, err := queries.NewGetCarrierOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetCarrierOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCarrierOrdersQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetCarrierOrdersQueryIsNotConstructed)
}

func TestNewGetLedgerQuery(t *testing.T) {
	query, err := queries.NewGetLedgerQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetLedgerQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLedgerQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetLedgerQueryIsNotConstructed)
}
