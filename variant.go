package tnid

// Variant selects the generation scheme of a TNID payload. It is a
// closed enumeration: V0 and V1 carry fully specified field layouts,
// V2 and V3 are reserved and expose raw payload bytes only.
//
// The variant tag lives in the payload's UUID version nibble, so every
// TNID payload is simultaneously a syntactically valid UUID.
type Variant uint8

const (
	// V0 is the time-ordered variant: a 48-bit millisecond timestamp
	// plus 64 bits of randomness, laid out as a standard UUIDv7.
	V0 Variant = iota
	// V1 is the high-entropy variant: 122 random bits laid out as a
	// standard UUIDv4.
	V1
	// V2 is reserved (UUID version 8, the RFC 9562 custom format slot).
	V2
	// V3 is reserved (UUID version 6).
	V3
)

// uuidVersion maps each variant to the UUID version nibble carrying it.
var uuidVersion = [4]byte{V0: 7, V1: 4, V2: 8, V3: 6}

// variantOfVersion inverts uuidVersion; 0xFF marks undefined nibbles.
var variantOfVersion = [16]byte{
	0xFF, 0xFF, 0xFF, 0xFF,
	byte(V1), // 4
	0xFF,
	byte(V3), // 6
	byte(V0), // 7
	byte(V2), // 8
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// String returns "v0" through "v3".
func (v Variant) String() string {
	switch v {
	case V0:
		return "v0"
	case V1:
		return "v1"
	case V2:
		return "v2"
	case V3:
		return "v3"
	}
	return "v?"
}

// token is the single-character discriminator used in the native text form.
func (v Variant) token() byte {
	return '0' + byte(v)
}
