// Package tnid implements TNID, a compact typed 128-bit identifier that
// is bit-compatible with standard UUIDs.
//
// A TNID pairs a short type name (1-4 lowercase letters) with a 128-bit
// payload. The payload's UUID version nibble carries a variant tag, so
// every TNID is simultaneously a syntactically valid UUID:
//
//   - V0 (time-ordered): 48-bit millisecond timestamp + 64 random bits,
//     laid out as a UUIDv7. Lexicographically sortable by creation time.
//   - V1 (high-entropy): 122 random bits, laid out as a UUIDv4.
//   - V2, V3: reserved.
//
// Basic usage:
//
//	import "github.com/tnid/tnid-go"
//
//	user := tnid.MustName("usr")
//
//	// Generate a time-ordered identifier
//	id := tnid.GenerateV0(user)
//	fmt.Println(id) // usr_001hf7yat00e00828t5cy4tqkff
//
//	// Or build one deterministically
//	id = tnid.NewV0(user, uint64(time.Now().UnixMilli()), random)
//
//	// Round-trip through text
//	parsed, err := tnid.Parse(id.String())
//
//	// UUID interop (the name travels out of band)
//	s := id.UUIDString(tnid.Lower) // 018bcfe5-6800-7000-8123-456789abcdef
//	back, err := tnid.ParseUUID(user, s)
//
// # Encryption
//
// V0 identifiers leak their creation time. Encrypt converts a V0 TNID
// into a V1-shaped one under a 128-bit key, and Decrypt reverses it
// exactly:
//
//	key, _ := tnid.KeyFromHex("000102030405060708090a0b0c0d0e0f")
//
//	public, _ := id.Encrypt(key)    // looks like a random V1
//	private, _ := public.Decrypt(key) // private == id, bit for bit
//
// The transform is a pure bijection with no integrity tag: decrypting
// with the wrong key succeeds and yields a V0 with garbage fields. Treat
// it as obfuscation under key control, not authenticated encryption.
//
// # Concurrency
//
// All operations are pure functions over owned values. Every function
// and method is safe for unlimited concurrent use without coordination.
package tnid
