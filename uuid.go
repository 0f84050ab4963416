package tnid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Case selects the letter case of the UUID text rendering.
type Case int

const (
	Lower Case = iota
	Upper
)

// UUIDString renders the payload as a standard 8-4-4-4-12 hyphenated
// UUID string in the requested case. The name is not representable in
// this form; carry it out of band for ParseUUID.
func (t TNID) UUIDString(c Case) string {
	s := uuid.UUID(t.payload).String()
	if c == Upper {
		return strings.ToUpper(s)
	}
	return s
}

// UUID returns the payload as a uuid.UUID.
func (t TNID) UUID() uuid.UUID {
	return uuid.UUID(t.payload)
}

// ParseUUID parses a standard 36-character hyphenated UUID string in
// either letter case and pairs it with the supplied name. Fails with
// ErrMalformedUUID on any structural defect and with ErrUnknownVariant
// when the tag bits match no defined variant.
func ParseUUID(name Name, s string) (TNID, error) {
	if len(s) != 36 {
		// uuid.Parse also accepts braced, URN and unhyphenated forms;
		// this codec admits only the canonical one.
		return TNID{}, ErrMalformedUUID
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return TNID{}, fmt.Errorf("%w: %v", ErrMalformedUUID, err)
	}
	return FromUUID(name, u)
}

// FromUUID wraps an existing uuid.UUID as a TNID with the given name.
// Fails with ErrUnknownVariant when the UUID's version and variant bits
// match no TNID variant.
func FromUUID(name Name, u uuid.UUID) (TNID, error) {
	p := Payload(u)
	if _, err := p.variant(); err != nil {
		return TNID{}, err
	}
	return TNID{name: name, payload: p}, nil
}
