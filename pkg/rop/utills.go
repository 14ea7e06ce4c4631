package rop

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors splits a joined error, the way errors.Join builds it, into its
// parts and reports whether err was joined. Any other error comes back alone.
func GetErrors(err error) ([]error, bool) {
	if IsNil(err) {
		return nil, false
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap(), true
	}

	return []error{err}, false
}
