package memhashmap

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
)

// First - Returns the first record in the hash map according to traversal order, which is bucket
// number ascending and within a bucket from chain head (most recently inserted) to tail.
// The order is deterministic for a table of a given size and content, but it is not a sorted order
// and it does not survive growth or reorganization of the hash map.
//
// It returns:
//   - key is the key of the first record, if the hash map is empty an error of type crt.NoRecordFound is also returned
//   - value is the value of the first record
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (M *MemHashMap) First() (key, value []byte, err error) {
	sp := M.chainManagement.GetStorageParameters()

	key, value, err = M.firstFrom(0, sp.NumberOfBuckets)

	return
}

// Next - Returns the record that follows the given key in traversal order. The position to step
// from is the first record in the key's chain matching the key according to the key comparison
// function, and the successor is the record after it in the chain or, at the end of a chain, the
// head record of the next non empty bucket.
//
// Stepping with a key held in several records anchors at the most recently added of them, and a
// hash map that grows between calls shuffles records over new buckets, in both cases records may
// be skipped or visited twice. For one pass over a stable table the order is complete and each
// record is visited exactly once.
//   - key is the identifier of the record to step from
//
// It returns:
//   - nextKey is the key of the record that follows, if the given key is not found or was globally last an error of type crt.NoRecordFound is also returned
//   - nextValue is the value of the record that follows
//   - err is either of type crt.NoRecordFound or crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) Next(key []byte) (nextKey, nextValue []byte, err error) {
	bucketNo, err := M.chainManagement.GetBucketNo(key)
	if err != nil {
		return
	}

	bucket, err := M.chainManagement.GetBucket(bucketNo)
	if err != nil {
		return
	}

	// The successor of the anchor record is the next record in the chain regardless of its key
	for i, record := range bucket.Records {
		if M.keyEqual(key, record.Key) {
			if i+1 < len(bucket.Records) {
				nextKey = bucket.Records[i+1].Key
				nextValue = bucket.Records[i+1].Value
				return
			}

			sp := M.chainManagement.GetStorageParameters()
			nextKey, nextValue, err = M.firstFrom(bucketNo+1, sp.NumberOfBuckets)
			return
		}
	}

	err = crt.NoRecordFound{}

	return
}

// Iterate - Applies the visit function to every record in the hash map in traversal order, which
// is bucket number ascending and within a bucket from chain head to tail. The visit function must
// not modify the hash map, and as always keys and values handed out are referenced rather than
// copied and must not be modified.
//   - visit is the function to apply to every record
//
// It returns:
//   - err is a standard error, if something went wrong
func (M *MemHashMap) Iterate(visit func(key, value []byte)) (err error) {
	sp := M.chainManagement.GetStorageParameters()

	var bucket model.Bucket
	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		bucket, err = M.chainManagement.GetBucket(i)
		if err != nil {
			return
		}

		for _, record := range bucket.Records {
			visit(record.Key, record.Value)
		}
	}

	return
}

// firstFrom - Returns the head record of the first non empty bucket in the range fromBucketNo up
// to but not including numberOfBuckets. It returns crt.NoRecordFound when all buckets in the
// range are empty.
func (M *MemHashMap) firstFrom(fromBucketNo, numberOfBuckets int64) (key, value []byte, err error) {
	var bucket model.Bucket
	for i := fromBucketNo; i < numberOfBuckets; i++ {
		bucket, err = M.chainManagement.GetBucket(i)
		if err != nil {
			return
		}

		if len(bucket.Records) > 0 {
			key = bucket.Records[0].Key
			value = bucket.Records[0].Value
			return
		}
	}

	err = crt.NoRecordFound{}

	return
}
