// Package guard provides a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect zero-value instances that bypassed the constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, which distinguishes constructor-built instances from
// struct literals.
//
// Example:
//
//	type PlaceBidCommand struct {
//	    price kernel.Price
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPlaceBidCommand(price kernel.Price) (PlaceBidCommand, error) {
//	    return PlaceBidCommand{price: price, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceBidCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
