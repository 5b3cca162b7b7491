package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidTransition is returned when Advance is requested from a status
	// that has no successor in the transition table.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrAlreadyTerminal is returned when Advance or Cancel is requested on an
	// order that is already Completed or Cancelled.
	ErrAlreadyTerminal = errors.New("order is already in a terminal status")

	// ErrUnbalancedBreakdown is returned when total price does not equal
	// commission amount plus seller amount. This is a configuration fault,
	// never a recoverable business condition.
	ErrUnbalancedBreakdown = errors.New("total price must equal commission amount plus seller amount")

	// ErrCarrierChangeAfterShipment is returned when carrier re-assignment is
	// attempted once the parcel has left the seller's zone.
	ErrCarrierChangeAfterShipment = errors.New("carriers cannot be changed after shipment")
)

// PriceBreakdown is the monetary split of an order between platform and
// seller. It is computed once at order creation and snapshotted; later catalog
// price changes never touch it.
type PriceBreakdown struct {
	total      kernel.Money
	commission kernel.Money
	seller     kernel.Money

	isConstructed bool
}

// NewPriceBreakdown creates a breakdown, enforcing the balance invariant
// total == commission + seller.
func NewPriceBreakdown(total, commission, seller kernel.Money) (PriceBreakdown, error) {
	if commission.IsNegative() || seller.IsNegative() {
		return PriceBreakdown{}, errs.NewValueIsInvalidError("price breakdown amounts must not be negative")
	}
	if !commission.Add(seller).IsEqual(total) {
		return PriceBreakdown{}, ErrUnbalancedBreakdown
	}
	return PriceBreakdown{
		total:         total,
		commission:    commission,
		seller:        seller,
		isConstructed: true,
	}, nil
}

// Total returns the full price the buyer pays for the goods.
func (b PriceBreakdown) Total() kernel.Money { return b.total }

// Commission returns the platform's cut.
func (b PriceBreakdown) Commission() kernel.Money { return b.commission }

// Seller returns the seller's net amount.
func (b PriceBreakdown) Seller() kernel.Money { return b.seller }

// Validate ensures the breakdown was created via NewPriceBreakdown and still balances.
func (b PriceBreakdown) Validate() error {
	if !b.isConstructed {
		return errs.NewValueIsRequiredError("PriceBreakdown must be created via NewPriceBreakdown")
	}
	if !b.commission.Add(b.seller).IsEqual(b.total) {
		return ErrUnbalancedBreakdown
	}
	return nil
}

// DistanceEstimate is the optional routing enrichment returned by the distance
// collaborator. Orders are created without one when the collaborator is down.
type DistanceEstimate struct {
	DistanceKm      float64
	DurationMinutes int
}

// Order represents a purchase order moving through the delivery lifecycle.
// It is the aggregate root that owns pricing, carrier assignment, the scan
// token, and status transitions.
//
// Order maintains these invariants:
//   - total price equals commission amount plus seller amount, fixed at creation
//   - status only changes through Advance (one step along the linear lifecycle)
//     or Cancel (to the alternate terminal state)
//   - carrier assignment is immutable once the order ships
//   - the scan token never changes after creation
//
// The version field supports optimistic concurrency at the persistence layer:
// two concurrent updates of the same order cannot both succeed.
type Order struct {
	id        kernel.UUID
	buyerID   kernel.UUID
	sellerID  kernel.UUID
	productID kernel.UUID

	quantity        int
	unitPrice       kernel.Money
	breakdown       PriceBreakdown
	transportCharge kernel.Money

	pickupAddress   kernel.Address
	deliveryAddress kernel.Address

	scanToken ScanToken
	status    Status

	sourceCarrierID      *kernel.UUID
	destinationCarrierID *kernel.UUID
	deliveryAgentID      *kernel.UUID

	distance *DistanceEstimate
	billURL  string

	version int

	isConstructed bool
}

// NewOrder creates an order in Placed status with version 1.
//
// All identifiers must be constructed UUIDs, quantity must be positive, the
// breakdown must balance, and the breakdown total must equal unit price times
// quantity (the unit price snapshot). Carrier assignment, distance data, and
// the delivery agent are attached afterwards through their own methods.
func NewOrder(
	id, buyerID, sellerID, productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	breakdown PriceBreakdown,
	transportCharge kernel.Money,
	pickupAddress, deliveryAddress kernel.Address,
	scanToken ScanToken,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setUnitPrice(unitPrice),
		o.setBreakdown(breakdown),
		o.setTransportCharge(transportCharge),
		o.setPickupAddress(pickupAddress),
		o.setDeliveryAddress(deliveryAddress),
		o.setScanToken(scanToken),
	); err != nil {
		return nil, err
	}

	if !breakdown.Total().IsEqual(unitPrice.MulInt(quantity)) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price breakdown",
			fmt.Errorf("total %s does not equal unit price %s times quantity %d",
				breakdown.Total(), unitPrice, quantity),
		)
	}

	return o, nil
}

// RestoreOrderParams carries every persisted attribute needed to rehydrate an
// order from storage.
type RestoreOrderParams struct {
	ID                   kernel.UUID
	BuyerID              kernel.UUID
	SellerID             kernel.UUID
	ProductID            kernel.UUID
	Quantity             int
	UnitPrice            kernel.Money
	Breakdown            PriceBreakdown
	TransportCharge      kernel.Money
	PickupAddress        kernel.Address
	DeliveryAddress      kernel.Address
	ScanToken            ScanToken
	Status               Status
	SourceCarrierID      *kernel.UUID
	DestinationCarrierID *kernel.UUID
	DeliveryAgentID      *kernel.UUID
	Distance             *DistanceEstimate
	BillURL              string
	Version              int
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and an existing version, but it still refuses
// unbalanced breakdowns and invalid identifiers: corrupt rows surface here
// instead of propagating.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setBuyerID(p.BuyerID),
		o.setSellerID(p.SellerID),
		o.setProductID(p.ProductID),
		o.setQuantity(p.Quantity),
		o.setUnitPrice(p.UnitPrice),
		o.setBreakdown(p.Breakdown),
		o.setTransportCharge(p.TransportCharge),
		o.setPickupAddress(p.PickupAddress),
		o.setDeliveryAddress(p.DeliveryAddress),
		o.setScanToken(p.ScanToken),
		o.setStatus(p.Status),
		o.setVersion(p.Version),
	); err != nil {
		return nil, err
	}

	o.sourceCarrierID = p.SourceCarrierID
	o.destinationCarrierID = p.DestinationCarrierID
	o.deliveryAgentID = p.DeliveryAgentID
	o.distance = p.Distance
	o.billURL = p.BillURL

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// BuyerID returns the buyer reference.
func (o *Order) BuyerID() kernel.UUID { return o.buyerID }

// SellerID returns the seller reference.
func (o *Order) SellerID() kernel.UUID { return o.sellerID }

// ProductID returns the product reference.
func (o *Order) ProductID() kernel.UUID { return o.productID }

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int { return o.quantity }

// UnitPrice returns the per-unit price snapshotted at creation.
func (o *Order) UnitPrice() kernel.Money { return o.unitPrice }

// TotalPrice returns the full goods price.
func (o *Order) TotalPrice() kernel.Money { return o.breakdown.Total() }

// CommissionAmount returns the platform's cut.
func (o *Order) CommissionAmount() kernel.Money { return o.breakdown.Commission() }

// SellerAmount returns the seller's net amount.
func (o *Order) SellerAmount() kernel.Money { return o.breakdown.Seller() }

// TransportCharge returns the delivery charge quoted at creation.
func (o *Order) TransportCharge() kernel.Money { return o.transportCharge }

// PickupAddress returns the seller-side pickup address.
func (o *Order) PickupAddress() kernel.Address { return o.pickupAddress }

// DeliveryAddress returns the buyer-side delivery address.
func (o *Order) DeliveryAddress() kernel.Address { return o.deliveryAddress }

// ScanToken returns the order's immutable scan token.
func (o *Order) ScanToken() ScanToken { return o.scanToken }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// SourceCarrier returns the carrier covering the seller's zone, or nil when
// no verified carrier served that zone at assignment time.
func (o *Order) SourceCarrier() *kernel.UUID { return o.sourceCarrierID }

// DestinationCarrier returns the carrier covering the buyer's zone, or nil.
func (o *Order) DestinationCarrier() *kernel.UUID { return o.destinationCarrierID }

// DeliveryAgent returns the assigned last-mile agent, or nil.
func (o *Order) DeliveryAgent() *kernel.UUID { return o.deliveryAgentID }

// Distance returns the routing estimate, or nil when the distance collaborator
// was unavailable at creation.
func (o *Order) Distance() *DistanceEstimate { return o.distance }

// BillURL returns the invoice document location, empty until generated.
func (o *Order) BillURL() string { return o.billURL }

// Version returns the optimistic-concurrency version loaded from storage.
func (o *Order) Version() int { return o.version }

// Advance moves the order one step along the linear lifecycle and returns the
// new status. Fails with ErrAlreadyTerminal on Completed/Cancelled orders and
// ErrInvalidTransition when the table has no successor.
func (o *Order) Advance() (Status, error) {
	next, err := o.status.Next()
	if err != nil {
		return 0, err
	}

	o.status = next
	return next, nil
}

// Cancel moves the order to the Cancelled terminal status.
// Permitted from any non-terminal status; fails with ErrAlreadyTerminal otherwise.
func (o *Order) Cancel() error {
	if !o.status.CanCancel() {
		return ErrAlreadyTerminal
	}

	o.status = Cancelled
	return nil
}

// AssignCarriers binds the order to its source and destination carriers.
// Either reference may be nil when no verified carrier serves the zone; a
// human operator assigns manually later. Re-assignment is allowed only while
// the parcel has not shipped.
func (o *Order) AssignCarriers(source, destination *kernel.UUID) error {
	if o.status != Placed && o.status != Assigned {
		return ErrCarrierChangeAfterShipment
	}

	if source != nil {
		if err := source.Validate(); err != nil {
			return err
		}
	}
	if destination != nil {
		if err := destination.Validate(); err != nil {
			return err
		}
	}

	o.sourceCarrierID = source
	o.destinationCarrierID = destination
	return nil
}

// SetDeliveryAgent records the last-mile agent carrying the parcel.
// Rejected on terminal orders.
func (o *Order) SetDeliveryAgent(agentID kernel.UUID) error {
	if o.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	if err := agentID.Validate(); err != nil {
		return err
	}

	o.deliveryAgentID = &agentID
	return nil
}

// SetDistanceEstimate attaches the routing enrichment from the distance
// collaborator. Negative values are rejected; absence is represented by never
// calling this.
func (o *Order) SetDistanceEstimate(estimate DistanceEstimate) error {
	if estimate.DistanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distance", fmt.Errorf("%f is negative", estimate.DistanceKm))
	}
	if estimate.DurationMinutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"duration", fmt.Errorf("%d is negative", estimate.DurationMinutes))
	}

	o.distance = &estimate
	return nil
}

// SetBillURL records the generated invoice location.
func (o *Order) SetBillURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("bill URL")
	}
	o.billURL = url
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer ID", err)
	}
	o.buyerID = id
	return nil
}

func (o *Order) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("seller ID", err)
	}
	o.sellerID = id
	return nil
}

func (o *Order) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product ID", err)
	}
	o.productID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setUnitPrice(price kernel.Money) error {
	if price.IsNegative() || price.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%s is not greater than 0", price))
	}
	o.unitPrice = price
	return nil
}

func (o *Order) setBreakdown(breakdown PriceBreakdown) error {
	if err := breakdown.Validate(); err != nil {
		return err
	}
	o.breakdown = breakdown
	return nil
}

func (o *Order) setTransportCharge(charge kernel.Money) error {
	if charge.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("transport charge is invalid",
			fmt.Errorf("%s is negative", charge))
	}
	o.transportCharge = charge
	return nil
}

func (o *Order) setPickupAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	o.pickupAddress = addr
	return nil
}

func (o *Order) setDeliveryAddress(addr kernel.Address) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = addr
	return nil
}

func (o *Order) setScanToken(token ScanToken) error {
	if err := token.Validate(); err != nil {
		return err
	}
	o.scanToken = token
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version <= 0 {
		return errs.NewVersionIsInvalidError("order version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
