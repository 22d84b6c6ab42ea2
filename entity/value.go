package entity

import (
	"fmt"

	"github.com/pkg/errors"
)

// Value wraps a derived or scanned field value and provides type
// conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Float returns the value as a float64, converting integer kinds.
func (v Value) Float() (float64, error) {
	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case int:
		return float64(raw), nil
	case int64:
		return float64(raw), nil
	}
	return 0, errors.Errorf("value is not numeric: %T", v.Raw)
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}
