package tnid

import (
	"bytes"
	"encoding/binary"
	"strings"
	"time"
)

// TNID is a typed 128-bit identifier: a Name plus a Payload whose tag
// bits always agree with the reported Variant; constructors and parsers
// never let the two disagree.
//
// TNID is an immutable, comparable value type: == compares both the name
// and the payload. The zero TNID is invalid; guard with IsZero where
// uninitialized values can appear.
type TNID struct {
	name    Name
	payload Payload
}

// NewV0 builds a time-ordered TNID from a millisecond Unix timestamp and
// 64 bits of caller-supplied randomness. The top 16 bits of timestampMS
// are not representable and are dropped; random is preserved in full, so
// Time and Entropy recover both inputs bit for bit.
func NewV0(name Name, timestampMS, random uint64) TNID {
	return TNID{name: name, payload: encodeV0(timestampMS, random)}
}

// NewV1 builds a high-entropy TNID from 128 bits of caller-supplied
// randomness. The six tag-bit positions are overwritten, exactly as a
// standard UUIDv4 generator would.
func NewV1(name Name, random [16]byte) TNID {
	return TNID{name: name, payload: encodeV1(random)}
}

// Name returns the type label.
func (t TNID) Name() Name {
	return t.name
}

// Variant returns the variant tag. Meaningless for the zero TNID, which
// no constructor or parser produces.
func (t TNID) Variant() Variant {
	v, _ := t.payload.variant()
	return v
}

// Bytes returns the raw 128-bit payload.
func (t TNID) Bytes() [16]byte {
	return [16]byte(t.payload)
}

// Time returns the millisecond Unix timestamp of a V0 TNID.
// Fails with ErrWrongVariant for any other variant.
func (t TNID) Time() (uint64, error) {
	if v, err := t.payload.variant(); err != nil || v != V0 {
		return 0, ErrWrongVariant
	}
	return t.payload.timestamp(), nil
}

// Timestamp is Time as a UTC time.Time.
func (t TNID) Timestamp() (time.Time, error) {
	ms, err := t.Time()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// Entropy returns the random field: 8 bytes for V0, 16 bytes for V1.
// Fails with ErrWrongVariant for the reserved variants, whose raw bits
// remain available through Bytes.
func (t TNID) Entropy() ([]byte, error) {
	v, err := t.payload.variant()
	if err != nil {
		return nil, ErrWrongVariant
	}
	switch v {
	case V0:
		_, lo := t.payload.entropy()
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, lo)
		return b, nil
	case V1:
		b := make([]byte, 16)
		copy(b, t.payload[:])
		return b, nil
	default:
		return nil, ErrWrongVariant
	}
}

// Compare orders TNIDs by name, then by payload bytes. V0 TNIDs sharing
// a name therefore sort by creation time.
func (t TNID) Compare(u TNID) int {
	if c := strings.Compare(t.name.String(), u.name.String()); c != 0 {
		return c
	}
	return bytes.Compare(t.payload[:], u.payload[:])
}

// IsZero reports whether t is the invalid zero TNID.
func (t TNID) IsZero() bool {
	return t == TNID{}
}
