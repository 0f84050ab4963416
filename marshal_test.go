package tnid_test

import (
	"database/sql/driver"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tnid "github.com/tnid/tnid-go"
)

func TestTextMarshalling(t *testing.T) {
	t.Parallel()

	t.Run("round trips through MarshalText", func(t *testing.T) {
		t.Parallel()

		id := tnid.NewV0(tnid.MustName("usr"), 1700000000000, 0x0123456789abcdef)

		b, err := id.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, id.String(), string(b))

		var parsed tnid.TNID
		require.NoError(t, parsed.UnmarshalText(b))
		assert.Equal(t, id, parsed)
	})

	t.Run("round trips through JSON", func(t *testing.T) {
		t.Parallel()

		type record struct {
			ID     tnid.TNID `json:"id"`
			Author tnid.TNID `json:"author"`
		}

		in := record{
			ID:     tnid.GenerateV0(tnid.MustName("doc")),
			Author: tnid.GenerateV1(tnid.MustName("usr")),
		}

		b, err := json.Marshal(in)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"id":"doc_0`)
		assert.Contains(t, string(b), `"author":"usr_1`)

		var out record
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, in, out)
	})

	t.Run("unmarshalling rejects malformed input", func(t *testing.T) {
		t.Parallel()

		var id tnid.TNID
		err := id.UnmarshalText([]byte("not a tnid"))
		assert.ErrorIs(t, err, tnid.ErrMalformedString)
		assert.True(t, id.IsZero(), "failed unmarshal must not modify the receiver")
	})
}

func TestSQLMarshalling(t *testing.T) {
	t.Parallel()

	t.Run("Value stores the native string", func(t *testing.T) {
		t.Parallel()

		id := tnid.NewV0(tnid.MustName("usr"), 1700000000000, 0x0123456789abcdef)

		v, err := id.Value()
		require.NoError(t, err)
		assert.Equal(t, driver.Value("usr_001hf7yat00e00828t5cy4tqkff"), v)
	})

	t.Run("Scan reads strings and bytes", func(t *testing.T) {
		t.Parallel()

		want := tnid.GenerateV1(tnid.MustName("ses"))

		var fromString tnid.TNID
		require.NoError(t, fromString.Scan(want.String()))
		assert.Equal(t, want, fromString)

		var fromBytes tnid.TNID
		require.NoError(t, fromBytes.Scan([]byte(want.String())))
		assert.Equal(t, want, fromBytes)
	})

	t.Run("Scan rejects unsupported types", func(t *testing.T) {
		t.Parallel()

		var id tnid.TNID
		assert.Error(t, id.Scan(42))
		assert.Error(t, id.Scan(nil))
		assert.Error(t, id.Scan("corrupted"))
	})
}
