//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSeparateChainingHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns exact table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "table size kept exactly as given")
	})
}

func TestSeparateChainingHashAlgorithm_BucketNumber(t *testing.T) {
	t.Run("creates a valid bucket number", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		h := NewSeparateChainingHashAlgorithm(10)

		// Execute
		bucketNo := h.BucketNumber(a)

		// Check
		assert.Equal(t, int64(2), bucketNo, "create a valid bucket number")
	})

	t.Run("bucket number follows table size", func(t *testing.T) {
		// Prepare
		a := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		h := NewSeparateChainingHashAlgorithm(10)
		h.SetTableSize(7)

		// Execute
		bucketNo := h.BucketNumber(a)

		// Check
		assert.Equal(t, int64(4), bucketNo, "bucket number reduced modulo new table size")
	})

	t.Run("bucket number is always within table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(7)

		// Execute and Check
		for i := 0; i < 100; i++ {
			bucketNo := h.BucketNumber([]byte{byte(i), byte(i + 1)})
			assert.GreaterOrEqual(t, bucketNo, int64(0), "bucket number not negative")
			assert.Less(t, bucketNo, int64(7), "bucket number less than table size")
		}
	})
}

func TestSeparateChainingHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewSeparateChainingHashAlgorithm(10)
		tableSize := h.GetTableSize()
		assert.Equal(t, int64(10), tableSize, "correct tableSize value")

		// Execute
		h.SetTableSize(21)

		// Check
		tableSize = h.GetTableSize()
		assert.Equal(t, int64(21), tableSize, "correct tableSize value")
	})
}
