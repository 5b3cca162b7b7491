// Package carrierrepo persists carrier aggregates with GORM.
package carrierrepo

import (
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO is the database row for a carrier aggregate. The zone column is
// indexed because assignment looks carriers up by zone on every order.
type CarrierDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Zone     string `gorm:"size:64;index"`
	Verified bool
	Active   bool
}

// TableName overrides GORM's default naming to use "carriers".
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Zone:     aggregate.Zone().Code(),
		Verified: aggregate.IsVerified(),
		Active:   aggregate.IsActive(),
	}
}

// toDomain reconstructs a carrier aggregate from a database row.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zone, err := kernel.NewZone(dto.Zone)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, zone, dto.Verified, dto.Active)
}
