package tnid

import "encoding/binary"

// Payload is the 128-bit TNID value. Six bit positions are reserved for
// the variant tag: the UUID version nibble (high nibble of byte 6) and
// the RFC variant marker (top two bits of byte 8, always 0b10). The
// remaining 122 bits carry the variant-specific fields.
//
// V0 layout:
//
//	bytes 0-5   low 48 bits of the millisecond Unix timestamp, big-endian
//	byte  6     0x70 | entropy[73:70]
//	byte  7     entropy[69:62]
//	byte  8     0x80 | entropy[61:56]
//	bytes 9-15  entropy[55:0]
//
// The 74-bit entropy field holds the 64-bit random input right-aligned;
// its top ten bits are zero. The top 16 bits of the timestamp input are
// sacrificed (48 bits of milliseconds reach the year 10889). No random
// bits are sacrificed, so the V0 round trip is bit-exact.
//
// V1 layout: the 128 random input bits verbatim, with the six tag
// positions overwritten, the same sacrifice a standard UUIDv4 generator
// makes.
type Payload [16]byte

// timestampMask keeps the low 48 bits of a millisecond timestamp.
const timestampMask = 1<<48 - 1

// encodeV0 packs a millisecond timestamp and 64 random bits into the V0
// layout.
func encodeV0(timestampMS, random uint64) Payload {
	var p Payload
	p.setTimestamp(timestampMS)
	p.setEntropy(0, random)
	p.setVariant(V0)
	return p
}

// encodeV1 overlays the V1 tag bits onto 128 random bits.
func encodeV1(random [16]byte) Payload {
	p := Payload(random)
	p.setVariant(V1)
	return p
}

// variant extracts the tag bits. Fails with ErrUnknownVariant when the
// version nibble or the RFC variant marker matches no defined variant.
func (p Payload) variant() (Variant, error) {
	if p[8]&0xC0 != 0x80 {
		return 0, ErrUnknownVariant
	}
	v := variantOfVersion[p[6]>>4]
	if v == 0xFF {
		return 0, ErrUnknownVariant
	}
	return Variant(v), nil
}

// setVariant overlays the tag bits for v, leaving all payload bits alone.
func (p *Payload) setVariant(v Variant) {
	p[6] = uuidVersion[v]<<4 | p[6]&0x0F
	p[8] = 0x80 | p[8]&0x3F
}

// timestamp returns the 48-bit millisecond timestamp field.
func (p Payload) timestamp() uint64 {
	return binary.BigEndian.Uint64(p[:8]) >> 16
}

// setTimestamp writes the low 48 bits of ts into bytes 0-5.
func (p *Payload) setTimestamp(ts uint64) {
	p[0] = byte(ts >> 40)
	p[1] = byte(ts >> 32)
	p[2] = byte(ts >> 24)
	p[3] = byte(ts >> 16)
	p[4] = byte(ts >> 8)
	p[5] = byte(ts)
}

// entropy returns the 74-bit entropy field split as (top 10 bits, low 64).
func (p Payload) entropy() (hi uint16, lo uint64) {
	hi = uint16(p[6]&0x0F)<<6 | uint16(p[7]>>2)
	lo = uint64(p[7]&0x03)<<62 | uint64(p[8]&0x3F)<<56 |
		uint64(p[9])<<48 | uint64(p[10])<<40 | uint64(p[11])<<32 |
		uint64(p[12])<<24 | uint64(p[13])<<16 | uint64(p[14])<<8 |
		uint64(p[15])
	return hi, lo
}

// setEntropy writes the 74-bit entropy field, skipping the tag positions.
func (p *Payload) setEntropy(hi uint16, lo uint64) {
	p[6] = p[6]&0xF0 | byte(hi>>6)
	p[7] = byte(hi&0x3F)<<2 | byte(lo>>62)
	p[8] = p[8]&0xC0 | byte(lo>>56)&0x3F
	p[9] = byte(lo >> 48)
	p[10] = byte(lo >> 40)
	p[11] = byte(lo >> 32)
	p[12] = byte(lo >> 24)
	p[13] = byte(lo >> 16)
	p[14] = byte(lo >> 8)
	p[15] = byte(lo)
}
