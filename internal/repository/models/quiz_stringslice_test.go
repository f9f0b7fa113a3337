package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSliceValue(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		var s StringSlice
		v, err := s.Value()
		assert.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("Options", func(t *testing.T) {
		s := StringSlice{"Option A", "Option B"}
		v, err := s.Value()
		assert.NoError(t, err)
		assert.Equal(t, `["Option A","Option B"]`, v)
	})
}

func TestStringSliceScan(t *testing.T) {
	t.Run("NullBecomesEmpty", func(t *testing.T) {
		var s StringSlice
		assert.NoError(t, s.Scan(nil))
		assert.Empty(t, s)
	})

	t.Run("StringPayload", func(t *testing.T) {
		var s StringSlice
		assert.NoError(t, s.Scan(`["a","b","c","d"]`))
		assert.Equal(t, StringSlice{"a", "b", "c", "d"}, s)
	})

	t.Run("BytesPayload", func(t *testing.T) {
		var s StringSlice
		assert.NoError(t, s.Scan([]byte(`["a"]`)))
		assert.Equal(t, StringSlice{"a"}, s)
	})

	t.Run("LiteralNullString", func(t *testing.T) {
		var s StringSlice
		assert.NoError(t, s.Scan("null"))
		assert.Empty(t, s)
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		var s StringSlice
		assert.Error(t, s.Scan(42))
	})
}
