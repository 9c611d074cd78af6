package memhashmap

// Get - Gets the value of the record that corresponds to the given key according to the key
// comparison function. With more than one record added under the same key it is the most
// recently added one that is returned.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned
//   - err is either of type crt.NoRecordFound or crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) Get(key []byte) (value []byte, err error) {
	value, err = M.chainManagement.Get(key)

	return
}

// GetAll - Gets the values of all records stored under keys structurally equal to the given key,
// regardless of any custom key comparison function. Values come in order from the most recently
// added record to the oldest.
//   - key is the identifier of the records
//
// It returns:
//   - values are the values of all matching records, an empty slice if no record matched
//   - err is of type crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) GetAll(key []byte) (values [][]byte, err error) {
	values, err = M.chainManagement.GetAll(key)

	return
}

// Has - Returns whether a record is stored under a key structurally equal to the given key,
// regardless of any custom key comparison function.
//   - key is the identifier of a record
//
// It returns:
//   - found is true if a record was found
//   - err is of type crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) Has(key []byte) (found bool, err error) {
	found, err = M.chainManagement.Has(key)

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with a
// structurally equal key. An updated record keeps its position in its bucket chain. Adding a
// record may grow the hash map, the record is already in place should the growth fail.
//   - key is the identifier of the record
//   - value is the value to store with the key
//
// It returns:
//   - err is of type crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) Set(key []byte, value []byte) (err error) {
	err = M.chainManagement.Set(key, value)

	return
}

// Add - Adds a record regardless of any existing records under the same key. The most recently
// added record shadows older ones in calls to Get, Pop and Remove, while GetAll returns all of
// them. Adding a record may grow the hash map, the record is already in place should the growth
// fail.
//   - key is the identifier of the record
//   - value is the value to store with the key
//
// It returns:
//   - err is of type crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) Add(key []byte, value []byte) (err error) {
	err = M.chainManagement.Add(key, value)

	return
}

// Remove - Removes the record that corresponds to the given key according to the key comparison
// function. With more than one record added under the same key it is the most recently added one
// that is removed, uncovering the next older record. Removing a key that is not present is a
// silent no-op.
//   - key is the identifier of the record
//
// It returns:
//   - err is of type crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) Remove(key []byte) (err error) {
	err = M.chainManagement.Remove(key)

	return
}

// Pop - Returns the value of the record that corresponds to the given key according to the key
// comparison function and removes the record from the hash map.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found, if not found an error of type crt.NoRecordFound is also returned
//   - err is either of type crt.NoRecordFound or crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) Pop(key []byte) (value []byte, err error) {
	value, err = M.chainManagement.Get(key)
	if err != nil {
		return
	}

	err = M.chainManagement.Remove(key)

	return
}

// Clear - Removes all records from the hash map. The current number of buckets, the hash
// algorithm and the chain length threshold are kept as they are.
func (M *MemHashMap) Clear() {
	M.chainManagement.Clear()
}

// Records - Returns the current number of records in the hash map. The count is kept while
// records come and go, so the call is cheap regardless of hash map size.
func (M *MemHashMap) Records() (records int64) {
	records = M.chainManagement.Records()

	return
}

// GetBucketNo - Returns the bucket number the given key hashes to in the current table. The
// number is stable only until the hash map grows or is reorganized.
//   - key is the identifier of a record
//
// It returns:
//   - bucketNo is the bucket number for the key
//   - err is of type crt.BucketAlgorithm, if something went wrong
func (M *MemHashMap) GetBucketNo(key []byte) (bucketNo int64, err error) {
	bucketNo, err = M.chainManagement.GetBucketNo(key)

	return
}
