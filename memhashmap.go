package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/gostonefire/memhashmap/internal/storage/scmem"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// KeyEqual - Function type for custom key comparison. It is used by the operations that act on
// one single record for a key, i.e. Get, Remove, Pop and Next. Operations that act on keys as
// stored, i.e. GetAll, Has and the update check in Set, always compare keys structurally byte
// by byte regardless of any custom function given.
type KeyEqual func(a, b []byte) bool

// ChainManagement - Interface for any chain storage implementation
type ChainManagement interface {
	Get(key []byte) (value []byte, err error)
	GetAll(key []byte) (values [][]byte, err error)
	Has(key []byte) (found bool, err error)
	Set(key, value []byte) (err error)
	Add(key, value []byte) (err error)
	Remove(key []byte) (err error)
	Clear()
	Records() (records int64)
	GetBucket(bucketNo int64) (bucket model.Bucket, err error)
	GetBucketNo(key []byte) (bucketNo int64, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// HashMapInfo - Information structure containing some information about the hash map
//   - Records is the current number of records in the hash map
//   - NumberOfBuckets is the current number of buckets in the hash map
//   - ChainLengthThreshold is the current chain length threshold, it starts out at 3 and doubles every time the hash map grows
//   - InternalAlgorithm is true if the hash map uses the built-in bucket selection algorithm
type HashMapInfo struct {
	Records              int64
	NumberOfBuckets      int64
	ChainLengthThreshold int64
	InternalAlgorithm    bool
}

// MemHashMap - The main implementation struct
type MemHashMap struct {
	chainManagement ChainManagement
	keyEqual        KeyEqual
}

// NewMemHashMap - Returns a new in memory hash map prepared with a given number of buckets.
// The number of buckets is a starting point rather than a limit, whenever the number of records comes to
// exceed the number of buckets the hash map grows itself to double the number of buckets plus one.
// A requested number of buckets outside the permitted range is silently clamped to the nearest limit,
// creation never rejects a size.
//   - keyEqual is an optional custom key comparison function, a nil value defaults to structural equality over the key bytes
//   - numberOfBuckets is the number of buckets the hash map starts out with
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//
// It returns:
//   - memHashMap is a pointer to a MemHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created
func NewMemHashMap(keyEqual KeyEqual, numberOfBuckets int64, hashAlgorithm hashfunc.HashAlgorithm) (memHashMap *MemHashMap, hashMapInfo HashMapInfo) {
	cm := scmem.NewChainTable(scmem.ChainTableConf{
		NumberOfBuckets: numberOfBuckets,
		KeyEqual:        keyEqual,
		HashAlgorithm:   hashAlgorithm,
	})

	// Keep the comparison function also in the root since traversal anchors on it
	if keyEqual == nil {
		keyEqual = utils.IsEqual
	}

	memHashMap = &MemHashMap{
		chainManagement: cm,
		keyEqual:        keyEqual,
	}

	hashMapInfo = memHashMap.hashMapInfo()

	return
}

// hashMapInfo - Assembles a HashMapInfo struct from current storage parameters
func (M *MemHashMap) hashMapInfo() (hashMapInfo HashMapInfo) {
	sp := M.chainManagement.GetStorageParameters()

	hashMapInfo = HashMapInfo{
		Records:              M.chainManagement.Records(),
		NumberOfBuckets:      sp.NumberOfBuckets,
		ChainLengthThreshold: sp.ChainLengthThreshold,
		InternalAlgorithm:    sp.InternalAlgorithm,
	}

	return
}

// ReorgConf - Is a struct used in the call to Reorg holding configuration for the new table.
//   - NumberOfBuckets is the number of buckets to give the new table
//   - NewHashAlgorithm is the algorithm to use onwards
type ReorgConf struct {
	NumberOfBuckets  int64
	NewHashAlgorithm hashfunc.HashAlgorithm
}

// Reorg - Is used when an existing hash map needs to reflect new conditions as compared to when it was
// first created. For instance if lots of records have been removed and the table has become unnecessarily
// sparse, or a better suited hash algorithm has been found for the particular set of keys being processed.
//
// The reorganization will happen only if there are detectable changes coming from the ReorgConf struct.
// A positive NumberOfBuckets differing from the current number of buckets counts as a change, as does a
// non nil NewHashAlgorithm even if it happens to be the exact same implementation as the current one.
// A nil NewHashAlgorithm while the hash map was created with a custom algorithm also counts as a change
// and switches the hash map over to the internal algorithm.
//
// To force a reorganization even if there are no changes to apply through the ReorgConf struct, use the
// force flag in the call to the function.
//
// Records transfer per chain from tail to head, so the relative order of records within a chain survives
// into the new table. The new table grows itself during the transfer just as under normal insertion, hence
// a NumberOfBuckets lower than the current number of records only results in growth while transferring.
// The key comparison function is a creation time contract and is carried over unchanged.
// Should the transfer fail the hash map is left untouched.
//   - reorgConf is an instance of the ReorgConf struct
//   - force set to true forces a reorganization regardless of what is changed from the ReorgConf struct
//
// It returns:
//   - fromHashMapInfo is a HashMapInfo struct with data regarding the hash map before reorganization
//   - toHashMapInfo is a HashMapInfo struct with data regarding the hash map after reorganization
//   - err is a standard error, if something went wrong
func (M *MemHashMap) Reorg(reorgConf ReorgConf, force bool) (fromHashMapInfo, toHashMapInfo HashMapInfo, err error) {
	sp := M.chainManagement.GetStorageParameters()

	// Sort out new settings and also make sure there are any changes at all (unless force flag has already overridden that)
	hasChanges := force
	numberOfBuckets := sp.NumberOfBuckets
	if reorgConf.NumberOfBuckets > 0 && reorgConf.NumberOfBuckets != sp.NumberOfBuckets {
		numberOfBuckets = reorgConf.NumberOfBuckets
		hasChanges = true
	}
	if reorgConf.NewHashAlgorithm != nil || !sp.InternalAlgorithm {
		hasChanges = true
	}
	if !hasChanges {
		return
	}

	fromHashMapInfo = M.hashMapInfo()

	to := scmem.NewChainTable(scmem.ChainTableConf{
		NumberOfBuckets: numberOfBuckets,
		KeyEqual:        M.keyEqual,
		HashAlgorithm:   reorgConf.NewHashAlgorithm,
	})

	err = M.reorgRecords(to)
	if err != nil {
		err = fmt.Errorf("error while transferring records to reorganized table: %s", err)
		return
	}

	M.chainManagement = to
	toHashMapInfo = M.hashMapInfo()

	return
}

// reorgRecords - Reads bucket by bucket from the current table and adds every record to the new table.
// Chains transfer from tail to head so that the relative record order within a chain is preserved.
func (M *MemHashMap) reorgRecords(to ChainManagement) (err error) {
	sp := M.chainManagement.GetStorageParameters()

	var bucket model.Bucket
	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		bucket, err = M.chainManagement.GetBucket(i)
		if err != nil {
			return
		}

		for j := len(bucket.Records) - 1; j >= 0; j-- {
			err = to.Add(bucket.Records[j].Key, bucket.Records[j].Value)
			if err != nil {
				return
			}
		}
	}

	return
}
