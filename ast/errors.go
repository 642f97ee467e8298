// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// KeyNotFoundError is reported by Object.Get when the requested key is not
// present in the object.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string { return fmt.Sprintf("key %q not found", e.Key) }

// TypeError is reported by As when a value does not have the requested kind.
type TypeError struct {
	Want, Got Kind
}

func (e *TypeError) Error() string { return fmt.Sprintf("value is %v, not %v", e.Got, e.Want) }
