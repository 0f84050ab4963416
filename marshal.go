package tnid

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText renders the native TNID form. With UnmarshalText this
// makes TNID usable directly as a JSON value, a map key, or a text
// template argument.
func (t TNID) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses the native TNID form in place.
func (t *TNID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value stores the native TNID string. Implements driver.Valuer for text
// columns.
func (t TNID) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan reads a native TNID string from a text or byte column.
func (t *TNID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	default:
		return fmt.Errorf("tnid: cannot scan %T", src)
	}
}
