// Package guard provides a defensive construction check for value objects
// and entities, ensuring they are only created through their designated
// constructor functions rather than as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embedding it in a
// struct distinguishes instances created through a constructor from zero values,
// which lets Validate methods reject structs that bypassed validation.
//
// Example usage:
//
//	type Note struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewNote(text string) (Note, error) {
//	    if text == "" {
//	        return Note{}, errors.New("text is required")
//	    }
//	    return Note{text: text, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (n Note) Validate() error {
//	    return n.guard.Validate(ErrNoteNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
// Call it only inside the object's constructor function.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
