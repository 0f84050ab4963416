package tnid

import (
	"fmt"
	"strings"
)

// base32Alphabet is Crockford's Base32, lowercase (excludes i, l, o, u).
// The payload packing is byte-for-byte the ULID text encoding.
const base32Alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// encodedLen is the length of the base32 payload portion. 26 characters
// carry 130 bits, so the first character holds only the top 3 payload
// bits and must be '0' through '7'.
const encodedLen = 26

// base32Value maps ASCII to 5-bit values; 0xFF marks invalid characters.
// Parsing accepts either letter case, per Crockford convention.
var base32Value [256]byte

func init() {
	for i := range base32Value {
		base32Value[i] = 0xFF
	}
	for i := 0; i < len(base32Alphabet); i++ {
		c := base32Alphabet[i]
		base32Value[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			base32Value[c-'a'+'A'] = byte(i)
		}
	}
}

// String renders the native TNID text form: the name, an underscore, the
// variant token, and 26 base32 characters of payload:
//
//	usr_001hf7yat00e00828t5cy4tqkff
//
// The underscore is outside the name alphabet, so the form has no
// ambiguous separators. Returns "" for the invalid zero TNID.
func (t TNID) String() string {
	v, err := t.payload.variant()
	if err != nil || t.name.IsZero() {
		return ""
	}

	buf := make([]byte, 0, MaxNameLen+2+encodedLen)
	buf = append(buf, t.name.buf[:t.name.len]...)
	buf = append(buf, '_', v.token())

	var enc [encodedLen]byte
	encodePayload(&enc, t.payload)
	return string(append(buf, enc[:]...))
}

// Parse parses the native TNID text form. Fails with ErrMalformedString
// on any structural defect (separator position, length, alphabet, variant
// token, name) and with ErrUnknownVariant when the payload tag bits are
// undefined or contradict the variant token; the latter catches
// truncation and splice errors that still decode to valid base32.
func Parse(s string) (TNID, error) {
	sep := strings.IndexByte(s, '_')
	if sep < 1 || sep > MaxNameLen || len(s) != sep+2+encodedLen {
		return TNID{}, ErrMalformedString
	}

	name, err := NewName(s[:sep])
	if err != nil {
		return TNID{}, fmt.Errorf("%w: %v", ErrMalformedString, err)
	}

	token := s[sep+1]
	if token < '0' || token > '3' {
		return TNID{}, ErrMalformedString
	}

	payload, err := decodePayload(s[sep+2:])
	if err != nil {
		return TNID{}, err
	}

	v, err := payload.variant()
	if err != nil {
		return TNID{}, err
	}
	if v != Variant(token-'0') {
		return TNID{}, ErrUnknownVariant
	}

	return TNID{name: name, payload: payload}, nil
}

// encodePayload writes the base32 rendering of p into dst.
func encodePayload(dst *[encodedLen]byte, p Payload) {
	dst[0] = base32Alphabet[(p[0]&224)>>5]
	dst[1] = base32Alphabet[p[0]&31]
	dst[2] = base32Alphabet[(p[1]&248)>>3]
	dst[3] = base32Alphabet[(p[1]&7)<<2|(p[2]&192)>>6]
	dst[4] = base32Alphabet[(p[2]&62)>>1]
	dst[5] = base32Alphabet[(p[2]&1)<<4|(p[3]&240)>>4]
	dst[6] = base32Alphabet[(p[3]&15)<<1|(p[4]&128)>>7]
	dst[7] = base32Alphabet[(p[4]&124)>>2]
	dst[8] = base32Alphabet[(p[4]&3)<<3|(p[5]&224)>>5]
	dst[9] = base32Alphabet[p[5]&31]
	dst[10] = base32Alphabet[(p[6]&248)>>3]
	dst[11] = base32Alphabet[(p[6]&7)<<2|(p[7]&192)>>6]
	dst[12] = base32Alphabet[(p[7]&62)>>1]
	dst[13] = base32Alphabet[(p[7]&1)<<4|(p[8]&240)>>4]
	dst[14] = base32Alphabet[(p[8]&15)<<1|(p[9]&128)>>7]
	dst[15] = base32Alphabet[(p[9]&124)>>2]
	dst[16] = base32Alphabet[(p[9]&3)<<3|(p[10]&224)>>5]
	dst[17] = base32Alphabet[p[10]&31]
	dst[18] = base32Alphabet[(p[11]&248)>>3]
	dst[19] = base32Alphabet[(p[11]&7)<<2|(p[12]&192)>>6]
	dst[20] = base32Alphabet[(p[12]&62)>>1]
	dst[21] = base32Alphabet[(p[12]&1)<<4|(p[13]&240)>>4]
	dst[22] = base32Alphabet[(p[13]&15)<<1|(p[14]&128)>>7]
	dst[23] = base32Alphabet[(p[14]&124)>>2]
	dst[24] = base32Alphabet[(p[14]&3)<<3|(p[15]&224)>>5]
	dst[25] = base32Alphabet[p[15]&31]
}

// decodePayload parses 26 base32 characters. Fails with
// ErrMalformedString on a bad length, an out-of-alphabet character, or a
// first character above '7' (which would overflow 128 bits).
func decodePayload(s string) (Payload, error) {
	var p Payload
	if len(s) != encodedLen {
		return p, ErrMalformedString
	}

	var v [encodedLen]byte
	for i := 0; i < encodedLen; i++ {
		c := base32Value[s[i]]
		if c == 0xFF {
			return p, ErrMalformedString
		}
		v[i] = c
	}
	if v[0] > 7 {
		return p, ErrMalformedString
	}

	p[0] = v[0]<<5 | v[1]
	p[1] = v[2]<<3 | v[3]>>2
	p[2] = v[3]<<6 | v[4]<<1 | v[5]>>4
	p[3] = v[5]<<4 | v[6]>>1
	p[4] = v[6]<<7 | v[7]<<2 | v[8]>>3
	p[5] = v[8]<<5 | v[9]
	p[6] = v[10]<<3 | v[11]>>2
	p[7] = v[11]<<6 | v[12]<<1 | v[13]>>4
	p[8] = v[13]<<4 | v[14]>>1
	p[9] = v[14]<<7 | v[15]<<2 | v[16]>>3
	p[10] = v[16]<<5 | v[17]
	p[11] = v[18]<<3 | v[19]>>2
	p[12] = v[19]<<6 | v[20]<<1 | v[21]>>4
	p[13] = v[21]<<4 | v[22]>>1
	p[14] = v[22]<<7 | v[23]<<2 | v[24]>>3
	p[15] = v[24]<<5 | v[25]
	return p, nil
}
