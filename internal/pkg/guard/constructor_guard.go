// Package guard lets value objects, commands and queries detect whether they were
// built through their constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard when the
// caller passes no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a private
// field, set it with NewConstructorGuard in the constructor and check it in Validate.
//
// Example:
//
//	var ErrCreateOrderCommandIsNotConstructed = errors.New("CreateOrderCommand must be created via NewCreateOrderCommand")
//
//	type CreateOrderCommand struct {
//	    draft order.Draft
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that validates successfully.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
