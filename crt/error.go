package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// BucketAlgorithm - Custom error to inform that a bucket algorithm returned a bucket
// number outside the permitted range of the current table
type BucketAlgorithm struct {
	msg string
}

// Error - Used to notify that a bucket algorithm misbehaved
func (B BucketAlgorithm) Error() string {
	if B.msg == "" {
		return "bucket number from bucket algorithm is outside permitted range"
	}
	return B.msg
}
