package scmem

import (
	"fmt"
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/hash"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// ChainTableConf - Is a struct to be passed in the call to NewChainTable and contains configuration that
// affects how the table selects buckets and matches keys.
//   - NumberOfBuckets is the number of buckets the table starts out with
//   - KeyEqual is the key comparison function to use in key addressed operations
//   - HashAlgorithm is the hash function to use
type ChainTableConf struct {
	NumberOfBuckets int64
	KeyEqual        func(a, b []byte) bool
	HashAlgorithm   hashfunc.HashAlgorithm
}

// ChainTable - Represents an implementation of in memory storage for the Separate Chaining Collision
// Resolution Technique. Each bucket holds a singly linked chain of records where new records are
// inserted at the head of the chain.
type ChainTable struct {
	buckets                []*chainRecord
	records                int64
	initialNumberOfBuckets int64
	numberOfBuckets        int64
	chainLengthThreshold   int64
	keyEqual               func(a, b []byte) bool
	hashAlgorithm          hashfunc.HashAlgorithm
	internalAlgorithm      bool
}

// NewChainTable - Returns a pointer to a new instance of Separate Chaining in memory implementation.
// It never rejects a configuration, a requested number of buckets outside the permitted range is
// clamped to the nearest limit.
//   - chainTableConf is a ChainTableConf struct providing configuration parameters affecting table creation and processing
//
// It returns:
//   - chainTable which is a pointer to the created instance
func NewChainTable(chainTableConf ChainTableConf) (chainTable *ChainTable) {
	// Clamp the requested number of buckets rather than reject it
	numberOfBuckets := chainTableConf.NumberOfBuckets
	if numberOfBuckets < crt.MinNumberOfBuckets {
		numberOfBuckets = crt.MinNumberOfBuckets
	} else if numberOfBuckets > crt.MaxNumberOfBuckets {
		numberOfBuckets = crt.MaxNumberOfBuckets
	}

	// If no KeyEqual was given then use the default structural equality
	keyEqual := chainTableConf.KeyEqual
	if keyEqual == nil {
		keyEqual = utils.IsEqual
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	hashAlgorithm := chainTableConf.HashAlgorithm
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeparateChainingHashAlgorithm(numberOfBuckets)
		internalAlg = true
	} else {
		// The algorithm owns the table size, but it is only honored while within the permitted range
		hashAlgorithm.SetTableSize(numberOfBuckets)
		if tableSize := hashAlgorithm.GetTableSize(); tableSize >= crt.MinNumberOfBuckets && tableSize <= crt.MaxNumberOfBuckets {
			numberOfBuckets = tableSize
		}
	}

	chainTable = &ChainTable{
		buckets:                make([]*chainRecord, numberOfBuckets),
		initialNumberOfBuckets: numberOfBuckets,
		numberOfBuckets:        numberOfBuckets,
		chainLengthThreshold:   initialChainLengthThreshold,
		keyEqual:               keyEqual,
		hashAlgorithm:          hashAlgorithm,
		internalAlgorithm:      internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from ChainTable
func (C *ChainTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		InitialNumberOfBuckets: C.initialNumberOfBuckets,
		NumberOfBuckets:        C.numberOfBuckets,
		ChainLengthThreshold:   C.chainLengthThreshold,
		InternalAlgorithm:      C.internalAlgorithm,
	}

	return
}

// GetBucket - Returns a snapshot of a bucket chain given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct containing all records in the chain, in order from head to tail
//   - err is standard error
func (C *ChainTable) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if bucketNo < 0 || bucketNo >= C.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside number of buckets %d", bucketNo, C.numberOfBuckets)
		return
	}

	records := make([]model.Record, 0)
	for node := C.buckets[bucketNo]; node != nil; node = node.next {
		records = append(records, node.record)
	}

	bucket = model.Bucket{BucketNo: bucketNo, Records: records}

	return
}

// GetBucketNo - Returns the bucket number the given key hashes to in the current table
//   - key is the key to process through the hash algorithm
//
// It returns:
//   - bucketNo is the bucket number for the key
//   - err is of type crt.BucketAlgorithm if the hash algorithm misbehaved, otherwise nil
func (C *ChainTable) GetBucketNo(key []byte) (bucketNo int64, err error) {
	bucketNo, err = C.getBucketNo(key)

	return
}

// Get - Gets the value of the first record in the key's chain that matches the key according to
// the key comparison function. With multiple records matching the key it is hence the most
// recently inserted one that is returned.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned
//   - err is either of type crt.NoRecordFound or crt.BucketAlgorithm, if something went wrong
func (C *ChainTable) Get(key []byte) (value []byte, err error) {
	bucketNo, err := C.getBucketNo(key)
	if err != nil {
		return
	}

	// Sort out first record in chain with correct key
	for node := C.buckets[bucketNo]; node != nil; node = node.next {
		if C.keyEqual(key, node.record.Key) {
			value = node.record.Value
			return
		}
	}

	err = crt.NoRecordFound{}

	return
}

// GetAll - Gets the values of all records in the key's chain whose keys are structurally equal to the
// given key, regardless of any custom key comparison function. Values come in chain order from head
// (most recently inserted) to tail.
//   - key is the identifier of the records
//
// It returns:
//   - values are the values of all matching records, an empty slice if no record matched
//   - err is of type crt.BucketAlgorithm if the hash algorithm misbehaved, otherwise nil
func (C *ChainTable) GetAll(key []byte) (values [][]byte, err error) {
	bucketNo, err := C.getBucketNo(key)
	if err != nil {
		return
	}

	values = make([][]byte, 0)
	for node := C.buckets[bucketNo]; node != nil; node = node.next {
		if utils.IsEqual(key, node.record.Key) {
			values = append(values, node.record.Value)
		}
	}

	return
}

// Has - Returns whether a record with a key structurally equal to the given key is present,
// regardless of any custom key comparison function.
//   - key is the identifier of a record
//
// It returns:
//   - found is true if a record was found
//   - err is of type crt.BucketAlgorithm if the hash algorithm misbehaved, otherwise nil
func (C *ChainTable) Has(key []byte) (found bool, err error) {
	bucketNo, err := C.getBucketNo(key)
	if err != nil {
		return
	}

	for node := C.buckets[bucketNo]; node != nil; node = node.next {
		if utils.IsEqual(key, node.record.Key) {
			found = true
			return
		}
	}

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with a
// structurally equal key. An updated record keeps its position in the chain, a new record is
// inserted at the head of the chain. Adding a record may grow the table, the record is already
// in place should the growth fail.
//   - key is the identifier of the record
//   - value is the value to store with the key
//
// It returns:
//   - err is of type crt.BucketAlgorithm if the hash algorithm misbehaved, otherwise nil
func (C *ChainTable) Set(key, value []byte) (err error) {
	bucketNo, err := C.getBucketNo(key)
	if err != nil {
		return
	}

	// Try to find an existing record with structurally equal key to update in place
	for node := C.buckets[bucketNo]; node != nil; node = node.next {
		if utils.IsEqual(key, node.record.Key) {
			node.record.Value = value
			return
		}
	}

	C.buckets[bucketNo] = &chainRecord{record: model.Record{Key: key, Value: value}, next: C.buckets[bucketNo]}
	C.records++

	err = C.grow()

	return
}

// Add - Adds a record at the head of the key's chain regardless of any existing records with the
// same key. The most recently added record shadows older ones in calls to Get, but all of them are
// reachable through GetAll. Adding a record may grow the table, the record is already in place
// should the growth fail.
//   - key is the identifier of the record
//   - value is the value to store with the key
//
// It returns:
//   - err is of type crt.BucketAlgorithm if the hash algorithm misbehaved, otherwise nil
func (C *ChainTable) Add(key, value []byte) (err error) {
	bucketNo, err := C.getBucketNo(key)
	if err != nil {
		return
	}

	C.buckets[bucketNo] = &chainRecord{record: model.Record{Key: key, Value: value}, next: C.buckets[bucketNo]}
	C.records++

	err = C.grow()

	return
}

// Remove - Unlinks the first record in the key's chain that matches the key according to the key
// comparison function. Records after the removed one keep their relative order. Removing a key
// that is not present is a silent no-op.
//   - key is the identifier of the record
//
// It returns:
//   - err is of type crt.BucketAlgorithm if the hash algorithm misbehaved, otherwise nil
func (C *ChainTable) Remove(key []byte) (err error) {
	bucketNo, err := C.getBucketNo(key)
	if err != nil {
		return
	}

	var prev *chainRecord
	for node := C.buckets[bucketNo]; node != nil; node = node.next {
		if C.keyEqual(key, node.record.Key) {
			if prev == nil {
				C.buckets[bucketNo] = node.next
			} else {
				prev.next = node.next
			}
			C.records--
			return
		}
		prev = node
	}

	return
}

// Records - Returns the current number of records in the table
func (C *ChainTable) Records() (records int64) {
	records = C.records

	return
}

// Clear - Empties every bucket chain and resets the record count to zero.
// The number of buckets, the hash algorithm and the chain length threshold are left untouched.
func (C *ChainTable) Clear() {
	for i := range C.buckets {
		C.buckets[i] = nil
	}
	C.records = 0
}
