package memhashmap

import (
	"github.com/gostonefire/memhashmap/crt"
	"github.com/gostonefire/memhashmap/internal/model"
)

// TableRecords - Is used to iterate over the records of a hash map one by one, in traversal
// order. It works on one bucket snapshot at a time, so records added or removed while iterating
// may be skipped or visited twice. A reorganization does not affect an already created iterator,
// it keeps walking the table it was created over.
type TableRecords struct {
	chainManagement ChainManagement
	numberOfBuckets int64
	bucketNo        int64
	records         []model.Record
	recordNo        int
	err             error
}

// Iterator - Returns a pointer to a new TableRecords struct prepared to iterate over all records
// in the hash map.
func (M *MemHashMap) Iterator() (tableRecords *TableRecords) {
	sp := M.chainManagement.GetStorageParameters()

	tableRecords = &TableRecords{
		chainManagement: M.chainManagement,
		numberOfBuckets: sp.NumberOfBuckets,
	}
	tableRecords.fill()

	return
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (T *TableRecords) HasNext() bool {
	return T.recordNo < len(T.records)
}

// Next - Returns the next record in traversal order.
// It returns:
//   - key is the key of the next record
//   - value is the value of the next record
//   - err is either a standard error or, if there are no more records when calling this function, an error of type crt.NoRecordFound
func (T *TableRecords) Next() (key, value []byte, err error) {
	if T.err != nil {
		err = T.err
		return
	}

	if T.recordNo >= len(T.records) {
		err = crt.NoRecordFound{}
		return
	}

	record := T.records[T.recordNo]
	key = record.Key
	value = record.Value

	T.recordNo++
	if T.recordNo >= len(T.records) {
		T.fill()
	}

	return
}

// fill - Moves the iterator on to the snapshot of the next non empty bucket, if any
func (T *TableRecords) fill() {
	T.records = nil
	T.recordNo = 0

	var bucket model.Bucket
	for T.bucketNo < T.numberOfBuckets {
		bucket, T.err = T.chainManagement.GetBucket(T.bucketNo)
		if T.err != nil {
			return
		}

		T.bucketNo++
		if len(bucket.Records) > 0 {
			T.records = bucket.Records
			return
		}
	}
}
