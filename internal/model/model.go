package model

// Record - Represents one record in a bucket chain.
// Key and Value are referenced as handed over by the caller, not copied, so keys and
// values must not be modified once they have been given to a hash map.
type Record struct {
	Key   []byte
	Value []byte
}

// Bucket - Represents a snapshot of all records in one bucket chain, in chain order
// from head (most recently inserted) to tail
type Bucket struct {
	BucketNo int64
	Records  []Record
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	InitialNumberOfBuckets int64
	NumberOfBuckets        int64
	ChainLengthThreshold   int64
	InternalAlgorithm      bool
}
