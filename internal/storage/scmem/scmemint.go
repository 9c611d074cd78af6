package scmem

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
)

// chainRecord - A node in a bucket chain, holding one record and the link to the next node.
// Chains are nil terminated and new nodes are inserted at the head.
type chainRecord struct {
	record model.Record
	next   *chainRecord
}

// getBucketNo - Returns which bucket number that the given key results in
func (C *ChainTable) getBucketNo(key []byte) (bucketNo int64, err error) {
	bucketNo = C.hashAlgorithm.BucketNumber(key)
	if bucketNo < 0 || bucketNo >= C.numberOfBuckets {
		err = crt.BucketAlgorithm{}
		return
	}

	return
}

// grow - Checks whether the number of records has come to exceed the number of buckets after an
// insertion and if so grows the table to double the number of buckets plus one, capped at
// crt.MaxNumberOfBuckets. The chain length threshold doubles on every trigger, also when the
// table is already at the cap and nothing else happens.
func (C *ChainTable) grow() (err error) {
	if C.records <= C.numberOfBuckets {
		return
	}

	C.chainLengthThreshold *= 2

	if C.numberOfBuckets >= crt.MaxNumberOfBuckets {
		return
	}

	numberOfBuckets := C.numberOfBuckets*2 + 1
	if numberOfBuckets > crt.MaxNumberOfBuckets {
		numberOfBuckets = crt.MaxNumberOfBuckets
	}

	err = C.resize(numberOfBuckets)

	return
}

// resize - Retargets the hash algorithm to the new number of buckets and relinks every chain node
// into a new bucket slice. Nodes are relinked rather than reallocated and the relative order of
// records within a chain is preserved.
// All new bucket numbers are validated before any relinking takes place, so a hash algorithm
// misbehaving on the new table size aborts the resize with the table content untouched.
func (C *ChainTable) resize(numberOfBuckets int64) (err error) {
	C.hashAlgorithm.SetTableSize(numberOfBuckets)
	if tableSize := C.hashAlgorithm.GetTableSize(); tableSize >= crt.MinNumberOfBuckets && tableSize <= crt.MaxNumberOfBuckets {
		numberOfBuckets = tableSize
	}

	// Gather all nodes in bucket order with every chain span reversed, so that prepending
	// them one by one further down restores the original chain order in the new buckets
	nodes := make([]*chainRecord, 0, C.records)
	for _, head := range C.buckets {
		first := len(nodes)
		for node := head; node != nil; node = node.next {
			nodes = append(nodes, node)
		}
		for i, j := first, len(nodes)-1; i < j; i, j = i+1, j-1 {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		}
	}

	bucketNos := make([]int64, len(nodes))
	for i, node := range nodes {
		bucketNo := C.hashAlgorithm.BucketNumber(node.record.Key)
		if bucketNo < 0 || bucketNo >= numberOfBuckets {
			C.hashAlgorithm.SetTableSize(C.numberOfBuckets)
			err = crt.BucketAlgorithm{}
			return
		}
		bucketNos[i] = bucketNo
	}

	buckets := make([]*chainRecord, numberOfBuckets)
	for i, node := range nodes {
		node.next = buckets[bucketNos[i]]
		buckets[bucketNos[i]] = node
	}

	C.buckets = buckets
	C.numberOfBuckets = numberOfBuckets

	return
}
