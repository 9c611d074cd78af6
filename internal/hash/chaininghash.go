package hash

import (
	"hash/crc32"
)

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm is implemented using
// crc32.ChecksumIEEE to create a hash value over the key and then applying bucket = hash % tableSize to
// get the bucket number. The table size is used exactly as given, with no rounding to some nearest
// bigger exponent of 2, since the hash map relies on exact table sizes when growing.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the hash map will address
func (S *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// BucketNumber - Given key it generates a bucket number between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm) BucketNumber(key []byte) int64 {
	h := int64(crc32.ChecksumIEEE(key))
	return h % S.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (S *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}
