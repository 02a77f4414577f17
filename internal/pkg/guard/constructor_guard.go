// Package guard provides a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable,
// so invariants established by constructors cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// "not constructed" and fails validation; NewConstructorGuard returns a guard
// that passes validation. Guards are immutable and safe for concurrent use.
//
// Example:
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) (Money, error) {
//	    // validate business rules...
//	    return Money{amount: amount, currency: currency, guard: NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call this in the constructor of domain objects to distinguish them from zero values.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its constructor.
// For zero-value guards it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
