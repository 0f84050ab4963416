package tnid

import (
	"crypto/aes"
	"encoding/binary"
	"encoding/hex"
)

// KeySize is the transform key size in bytes.
const KeySize = 16

// Key is the 128-bit key for the V0/V1 transform. Construct one with
// KeyFromBytes or KeyFromHex; the fixed array keeps key-length errors out
// of the transform itself.
type Key [KeySize]byte

// KeyFromBytes copies b into a Key. Fails with ErrInvalidKeyLength unless
// b is exactly 16 bytes.
func KeyFromBytes(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, ErrInvalidKeyLength
	}
	return Key(b), nil
}

// KeyFromHex decodes a 32-character hex string into a Key.
func KeyFromHex(s string) (Key, error) {
	if len(s) != 2*KeySize {
		return Key{}, ErrInvalidKeyLength
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Key{}, ErrInvalidKeyLength
	}
	return Key(b), nil
}

// Encrypt transforms a time-ordered TNID into a high-entropy one under
// key. The transform is a pure bijection on the 122 free payload bits,
// so the output is a structurally valid V1 that an observer without the
// key cannot distinguish from a freshly random one, and Decrypt with the
// same key recovers the original bit for bit. The name carries through
// unchanged. Fails with ErrWrongVariant unless t is V0.
func (t TNID) Encrypt(key Key) (TNID, error) {
	if v, err := t.payload.variant(); err != nil || v != V0 {
		return TNID{}, ErrWrongVariant
	}
	p := feistel(t.payload, key, true)
	p.setVariant(V1)
	return TNID{name: t.name, payload: p}, nil
}

// Decrypt is the exact inverse of Encrypt. There is no integrity tag:
// decrypting with the wrong key still succeeds and yields a structurally
// valid V0 whose timestamp and random fields are garbage. Fails with
// ErrWrongVariant unless t is V1.
func (t TNID) Decrypt(key Key) (TNID, error) {
	if v, err := t.payload.variant(); err != nil || v != V1 {
		return TNID{}, ErrWrongVariant
	}
	p := feistel(t.payload, key, false)
	p.setVariant(V0)
	return TNID{name: t.name, payload: p}, nil
}

// feistelRounds is the round count of the V0/V1 transform. Two rounds
// already touch every free bit; four give full PRP-strength mixing at one
// AES block each.
const feistelRounds = 4

// entropyHiMask keeps the top 10 bits of the 74-bit entropy field.
const entropyHiMask = 1<<10 - 1

// feistel permutes the 122 non-tag payload bits under key: an unbalanced
// Feistel network over L = the 48-bit timestamp field and R = the 74-bit
// entropy field. Each round XORs one half with an AES-128 PRF of the
// other (the round index domain-separates the PRF inputs), so running the
// rounds in reverse inverts the permutation exactly. The tag bits never
// enter the network; callers overwrite them afterwards.
func feistel(p Payload, key Key, forward bool) Payload {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		// Unreachable: aes.NewCipher rejects only wrong key sizes and
		// Key is fixed at 16 bytes.
		panic(err)
	}

	l := p.timestamp()
	hi, lo := p.entropy()

	var in, out [aes.BlockSize]byte
	for i := 0; i < feistelRounds; i++ {
		round := i
		if !forward {
			round = feistelRounds - 1 - i
		}

		clear(in[:])
		in[0] = byte(round)
		if round%2 == 0 {
			// Even rounds mask the timestamp half with a PRF of the
			// entropy half.
			binary.BigEndian.PutUint16(in[6:8], hi)
			binary.BigEndian.PutUint64(in[8:], lo)
			block.Encrypt(out[:], in[:])
			l ^= binary.BigEndian.Uint64(out[:8]) & timestampMask
		} else {
			binary.BigEndian.PutUint64(in[8:], l)
			block.Encrypt(out[:], in[:])
			hi ^= binary.BigEndian.Uint16(out[:2]) & entropyHiMask
			lo ^= binary.BigEndian.Uint64(out[2:10])
		}
	}

	p.setTimestamp(l)
	p.setEntropy(hi, lo)
	return p
}
