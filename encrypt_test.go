package tnid_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tnid "github.com/tnid/tnid-go"
)

func testKey(t *testing.T) tnid.Key {
	t.Helper()
	key, err := tnid.KeyFromHex("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	return key
}

func randomKey() tnid.Key {
	var b [16]byte
	for i := range b {
		b[i] = byte(rand.Uint64())
	}
	key, _ := tnid.KeyFromBytes(b[:])
	return key
}

func TestKeyFromHex(t *testing.T) {
	t.Parallel()

	t.Run("decodes 32 hex characters", func(t *testing.T) {
		t.Parallel()

		key, err := tnid.KeyFromHex("000102030405060708090a0b0c0d0e0f")
		require.NoError(t, err)
		assert.Equal(t, tnid.Key{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, key)
	})

	t.Run("rejects wrong lengths and non-hex input", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{
			"",
			"00",
			"000102030405060708090a0b0c0d0e",     // 15 bytes
			"000102030405060708090a0b0c0d0e0f00", // 17 bytes
			"zz0102030405060708090a0b0c0d0e0f",   // not hex
		} {
			_, err := tnid.KeyFromHex(s)
			assert.ErrorIs(t, err, tnid.ErrInvalidKeyLength, "input %q", s)
		}
	})
}

func TestKeyFromBytes(t *testing.T) {
	t.Parallel()

	key, err := tnid.KeyFromBytes(make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, tnid.Key{}, key)

	for _, n := range []int{0, 15, 17, 32} {
		_, err := tnid.KeyFromBytes(make([]byte, n))
		assert.ErrorIs(t, err, tnid.ErrInvalidKeyLength, "length %d", n)
	}
}

func TestEncrypt(t *testing.T) {
	t.Parallel()

	t.Run("reference identifier round trip", func(t *testing.T) {
		t.Parallel()

		key := testKey(t)
		id := tnid.NewV0(tnid.MustName("usr"), 1700000000000, 0x0123456789abcdef)

		encrypted, err := id.Encrypt(key)
		require.NoError(t, err)
		assert.Equal(t, tnid.V1, encrypted.Variant())
		assert.Equal(t, "usr", encrypted.Name().String(), "name carries through")
		assert.NotEqual(t, id.Bytes(), encrypted.Bytes())

		decrypted, err := encrypted.Decrypt(key)
		require.NoError(t, err)
		assert.Equal(t, id, decrypted, "decryption must be bit-exact")
	})

	t.Run("round trips under arbitrary keys", func(t *testing.T) {
		t.Parallel()

		name := tnid.MustName("doc")
		for i := 0; i < 500; i++ {
			id := tnid.NewV0(name, rand.Uint64(), rand.Uint64())
			key := randomKey()

			encrypted, err := id.Encrypt(key)
			require.NoError(t, err)
			require.Equal(t, tnid.V1, encrypted.Variant())

			decrypted, err := encrypted.Decrypt(key)
			require.NoError(t, err)
			require.Equal(t, id, decrypted)
		}
	})

	t.Run("output is a structurally valid UUIDv4", func(t *testing.T) {
		t.Parallel()

		id := tnid.GenerateV0(tnid.MustName("usr"))
		encrypted, err := id.Encrypt(testKey(t))
		require.NoError(t, err)

		u, err := uuid.Parse(encrypted.UUIDString(tnid.Lower))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), u.Version())
		assert.Equal(t, uuid.RFC4122, u.Variant())
	})

	t.Run("deterministic under a fixed key", func(t *testing.T) {
		t.Parallel()

		key := testKey(t)
		id := tnid.NewV0(tnid.MustName("usr"), 1700000000000, 42)

		a, err := id.Encrypt(key)
		require.NoError(t, err)
		b, err := id.Encrypt(key)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("different keys produce different ciphertexts", func(t *testing.T) {
		t.Parallel()

		id := tnid.NewV0(tnid.MustName("usr"), 1700000000000, 42)

		a, err := id.Encrypt(testKey(t))
		require.NoError(t, err)

		other, err := tnid.KeyFromHex("ffeeddccbbaa99887766554433221100")
		require.NoError(t, err)
		b, err := id.Encrypt(other)
		require.NoError(t, err)

		assert.NotEqual(t, a.Bytes(), b.Bytes())
	})

	t.Run("refuses non-V0 input", func(t *testing.T) {
		t.Parallel()

		key := testKey(t)

		_, err := tnid.GenerateV1(tnid.MustName("usr")).Encrypt(key)
		assert.ErrorIs(t, err, tnid.ErrWrongVariant)

		var zero tnid.TNID
		_, err = zero.Encrypt(key)
		assert.ErrorIs(t, err, tnid.ErrWrongVariant)
	})
}

func TestDecrypt(t *testing.T) {
	t.Parallel()

	t.Run("refuses non-V1 input", func(t *testing.T) {
		t.Parallel()

		key := testKey(t)

		_, err := tnid.GenerateV0(tnid.MustName("usr")).Decrypt(key)
		assert.ErrorIs(t, err, tnid.ErrWrongVariant)

		var zero tnid.TNID
		_, err = zero.Decrypt(key)
		assert.ErrorIs(t, err, tnid.ErrWrongVariant)
	})

	t.Run("wrong key silently yields garbage", func(t *testing.T) {
		t.Parallel()

		// The transform is a pure bijection with no integrity tag, so a
		// wrong-key decryption must succeed and produce a structurally
		// valid V0 with meaningless fields, not an error.
		id := tnid.NewV0(tnid.MustName("usr"), 1700000000000, 0x0123456789abcdef)
		encrypted, err := id.Encrypt(testKey(t))
		require.NoError(t, err)

		wrongKey, err := tnid.KeyFromHex("0f0e0d0c0b0a09080706050403020100")
		require.NoError(t, err)

		garbage, err := encrypted.Decrypt(wrongKey)
		require.NoError(t, err, "wrong-key decryption must not fail")
		assert.Equal(t, tnid.V0, garbage.Variant())
		assert.Equal(t, "usr", garbage.Name().String())
		assert.NotEqual(t, id, garbage)

		// The garbage still behaves like any V0.
		_, err = garbage.Time()
		assert.NoError(t, err)
		reparsed, err := tnid.Parse(garbage.String())
		require.NoError(t, err)
		assert.Equal(t, garbage, reparsed)
	})

	t.Run("decryption of an arbitrary V1 succeeds", func(t *testing.T) {
		t.Parallel()

		// Any V1 payload is in the transform's range; decrypting one that
		// was never encrypted still lands on some V0 payload.
		id := tnid.GenerateV1(tnid.MustName("usr"))
		decrypted, err := id.Decrypt(testKey(t))
		require.NoError(t, err)
		assert.Equal(t, tnid.V0, decrypted.Variant())

		// And the transform inverts from this side too.
		back, err := decrypted.Encrypt(testKey(t))
		require.NoError(t, err)
		assert.Equal(t, id, back)
	})
}
