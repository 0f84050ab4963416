package tnid

// MaxNameLen is the maximum number of characters in a TNID name.
const MaxNameLen = 4

// Name is the 1-4 character type label attached to a TNID. The allowed
// alphabet is the lowercase letters a-z. A Name travels with the
// identifier only in the native text form; the UUID form omits it, so
// ParseUUID takes the name out of band.
//
// Name is an immutable value type; the zero Name is invalid.
type Name struct {
	buf [MaxNameLen]byte
	len uint8
}

// NewName validates candidate and returns it as a Name.
// Fails with ErrInvalidLength when candidate is empty or longer than four
// characters, and with ErrInvalidCharacter when any character falls
// outside a-z.
func NewName(candidate string) (Name, error) {
	if len(candidate) == 0 || len(candidate) > MaxNameLen {
		return Name{}, ErrInvalidLength
	}
	var name Name
	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		if c < 'a' || c > 'z' {
			return Name{}, ErrInvalidCharacter
		}
		name.buf[i] = c
	}
	name.len = uint8(len(candidate))
	return name, nil
}

// MustName is NewName that panics on invalid input. Intended for
// package-level constants:
//
//	var userName = tnid.MustName("usr")
func MustName(candidate string) Name {
	name, err := NewName(candidate)
	if err != nil {
		panic(err)
	}
	return name
}

// IsValidName reports whether candidate is a valid TNID name.
func IsValidName(candidate string) bool {
	_, err := NewName(candidate)
	return err == nil
}

// String returns the name as a plain string.
func (n Name) String() string {
	return string(n.buf[:n.len])
}

// IsZero reports whether n is the invalid zero Name.
func (n Name) IsZero() bool {
	return n.len == 0
}
