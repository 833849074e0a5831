package commands

import (
	"errors"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/vehicle"
	"freighthub/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCargoIsRequired           = errors.New("cargo description is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CreateOrderCommand represents a request to publish a new freight order
// and open its bidding window.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID,
//	    vehicle.LongbedTarpaulin, "20 pallets of tile", "Warehouse 4, Omsk",
//	    "Lenina 10, Novosibirsk", "2026-09-14")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	truckType       vehicle.TruckType
	cargo           string
	pickupAddress   string
	deliveryAddress string
	deliveryDate    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to publish a new order.
// Validates identifiers, truck type, and the required cargo and delivery
// address fields. Pickup address and delivery date are optional free text.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	truckType vehicle.TruckType,
	cargo string,
	pickupAddress string,
	deliveryAddress string,
	deliveryDate string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		pickupAddress: pickupAddress,
		deliveryDate:  deliveryDate,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setTruckType(truckType),
		orderCommand.setCargo(cargo),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer publishing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TruckType returns the vehicle category the shipment requires.
func (c CreateOrderCommand) TruckType() vehicle.TruckType {
	return c.truckType
}

// Cargo returns the cargo description.
func (c CreateOrderCommand) Cargo() string {
	return c.cargo
}

// PickupAddress returns the optional pickup address.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryDate returns the optional requested delivery date.
func (c CreateOrderCommand) DeliveryDate() string {
	return c.deliveryDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setTruckType(truckType vehicle.TruckType) error {
	if err := truckType.Validate(); err != nil {
		return err
	}

	c.truckType = truckType
	return nil
}

func (c *CreateOrderCommand) setCargo(cargo string) error {
	if cargo == "" {
		return ErrCargoIsRequired
	}

	c.cargo = cargo
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}
