package participant

import (
	"errors"

	"freighthub/internal/core/domain/model/kernel"
	"freighthub/internal/core/domain/model/vehicle"
	"freighthub/internal/pkg/errs"
)

var (
	// ErrParticipantIsNotConstructed is returned when a Participant instance was not
	// created through NewParticipant or RestoreParticipant.
	ErrParticipantIsNotConstructed = errors.New("Participant must be created via NewParticipant constructor")
)

// Participant is a registered marketplace identity: a customer or a carrier.
// Carriers hold a non-empty set of truck-type capabilities that gates which
// orders they may bid on. Customers hold no capabilities.
//
// Participant is an aggregate with private fields; it can only be created
// through NewParticipant, which validates:
//   - a valid unique identifier
//   - a valid role
//   - a non-empty name and phone (both are carried in notification payloads)
//   - carriers have at least one valid truck type, customers have none
type Participant struct {
	id         kernel.UUID
	role       Role
	name       string
	phone      string
	truckTypes map[vehicle.TruckType]struct{}

	isConstructed bool
}

// NewParticipant creates a validated Participant.
// truckTypes must be non-empty for carriers and empty for customers.
func NewParticipant(
	id kernel.UUID,
	role Role,
	name string,
	phone string,
	truckTypes []vehicle.TruckType,
) (*Participant, error) {
	p := &Participant{
		truckTypes:    make(map[vehicle.TruckType]struct{}, len(truckTypes)),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRole(role),
		p.setName(name),
		p.setPhone(phone),
		p.setTruckTypes(role, truckTypes),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParticipant reconstructs a Participant from persisted state.
// It applies the same validation as NewParticipant.
func RestoreParticipant(
	id kernel.UUID,
	role Role,
	name string,
	phone string,
	truckTypes []vehicle.TruckType,
) (*Participant, error) {
	return NewParticipant(id, role, name, phone, truckTypes)
}

// Validate ensures the Participant was constructed through NewParticipant.
func (p *Participant) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParticipantIsNotConstructed
	}
	return nil
}

// ID returns the participant's unique identifier.
func (p *Participant) ID() kernel.UUID {
	return p.id
}

// Role returns the participant's role.
func (p *Participant) Role() Role {
	return p.role
}

// Name returns the participant's display name.
func (p *Participant) Name() string {
	return p.name
}

// Phone returns the participant's contact phone number.
func (p *Participant) Phone() string {
	return p.phone
}

// TruckTypes returns the carrier's capability set in unspecified order.
// The result is a copy; mutating it does not affect the participant.
func (p *Participant) TruckTypes() []vehicle.TruckType {
	types := make([]vehicle.TruckType, 0, len(p.truckTypes))
	for t := range p.truckTypes {
		types = append(types, t)
	}
	return types
}

// CanHaul reports whether the participant is a carrier holding the given
// truck type. Customers can never haul.
func (p *Participant) CanHaul(truckType vehicle.TruckType) bool {
	if p.role != Carrier {
		return false
	}
	_, ok := p.truckTypes[truckType]
	return ok
}

func (p *Participant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Participant) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}

func (p *Participant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Participant) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	p.phone = phone
	return nil
}

func (p *Participant) setTruckTypes(role Role, truckTypes []vehicle.TruckType) error {
	if role == Carrier && len(truckTypes) == 0 {
		return errs.NewValueIsRequiredError("carrier truck types")
	}
	if role == Customer && len(truckTypes) > 0 {
		return errs.NewValueIsInvalidError("customer truck types")
	}

	for _, t := range truckTypes {
		if err := t.Validate(); err != nil {
			return err
		}
		p.truckTypes[t] = struct{}{}
	}
	return nil
}
