package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/internal/model"
	"github.com/valyala/bytebufferpool"
	"io"
)

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - BucketsInUse is the number of buckets holding at least one record
//   - EmptyBuckets is the number of buckets holding no records
//   - MaxChainLength is the length of the longest bucket chain
//   - ChainLengthThreshold is the current chain length threshold of the hash map
//   - MeanChainLength is the mean length of non empty bucket chains
//   - ChainLengthVariance is the variance of the lengths of non empty bucket chains
//   - BucketDistribution is the number of records stored in each bucket
type HashMapStat struct {
	Records              int64
	BucketsInUse         int64
	EmptyBuckets         int64
	MaxChainLength       int64
	ChainLengthThreshold int64
	MeanChainLength      float64
	ChainLengthVariance  float64
	BucketDistribution   []int64
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
// If the hash map is very big this can take a considerable amount of time, and the
// HashMapStat.BucketDistribution slice can be memory heavy (there will be one entry per bucket).
// Chain length mean and variance cover non empty chains only, hence together with EmptyBuckets they
// tell how well the hash algorithm spreads keys over buckets.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
//
// It returns:
//   - hashMapStat is a pointer to a HashMapStat struct
//   - err is a standard error, if something went wrong
func (M *MemHashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	sp := M.chainManagement.GetStorageParameters()

	var hms HashMapStat
	hms.ChainLengthThreshold = sp.ChainLengthThreshold

	if includeDistribution {
		hms.BucketDistribution = make([]int64, sp.NumberOfBuckets)
	}

	// Iterate over every available bucket
	var bucket model.Bucket
	var chainLengths []int64
	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		bucket, err = M.chainManagement.GetBucket(i)
		if err != nil {
			return
		}

		chainLength := int64(len(bucket.Records))
		hms.Records += chainLength
		if includeDistribution {
			hms.BucketDistribution[i] = chainLength
		}

		if chainLength == 0 {
			hms.EmptyBuckets++
			continue
		}

		hms.BucketsInUse++
		if chainLength > hms.MaxChainLength {
			hms.MaxChainLength = chainLength
		}
		chainLengths = append(chainLengths, chainLength)
	}

	if len(chainLengths) > 0 {
		var sum int64
		for _, chainLength := range chainLengths {
			sum += chainLength
		}
		hms.MeanChainLength = float64(sum) / float64(len(chainLengths))

		var sqSum float64
		for _, chainLength := range chainLengths {
			diff := float64(chainLength) - hms.MeanChainLength
			sqSum += diff * diff
		}
		hms.ChainLengthVariance = sqSum / float64(len(chainLengths))
	}

	hashMapStat = &hms

	return
}

// DumpTableStats - Writes a summary of the hash map state to the given sink, one statistic per line.
// A nil writer makes the call a no-op, which is the way to leave the diagnostics disabled.
//   - w is the sink to write the summary to
//
// It returns:
//   - err is a standard error, if something went wrong
func (M *MemHashMap) DumpTableStats(w io.Writer) (err error) {
	if w == nil {
		return
	}

	hashMapStat, err := M.Stat(false)
	if err != nil {
		return
	}

	sp := M.chainManagement.GetStorageParameters()

	buffer := bytebufferpool.Get()
	defer bytebufferpool.Put(buffer)

	_, _ = fmt.Fprintf(buffer, "records: %d\n", hashMapStat.Records)
	_, _ = fmt.Fprintf(buffer, "number of buckets: %d\n", sp.NumberOfBuckets)
	_, _ = fmt.Fprintf(buffer, "buckets in use: %d\n", hashMapStat.BucketsInUse)
	_, _ = fmt.Fprintf(buffer, "empty buckets: %d\n", hashMapStat.EmptyBuckets)
	_, _ = fmt.Fprintf(buffer, "max chain length: %d\n", hashMapStat.MaxChainLength)
	_, _ = fmt.Fprintf(buffer, "chain length threshold: %d\n", hashMapStat.ChainLengthThreshold)
	_, _ = fmt.Fprintf(buffer, "mean chain length: %.4f\n", hashMapStat.MeanChainLength)
	_, _ = fmt.Fprintf(buffer, "chain length variance: %.4f\n", hashMapStat.ChainLengthVariance)

	_, err = w.Write(buffer.B)
	if err != nil {
		err = fmt.Errorf("error while writing table stats to sink: %s", err)
	}

	return
}

// DumpBuckets - Writes every bucket with its chain of records to the given sink, mainly intended
// for debugging of key distributions on small tables. Keys and values print in hex.
// A nil writer makes the call a no-op, which is the way to leave the diagnostics disabled.
//   - w is the sink to write the buckets to
//
// It returns:
//   - err is a standard error, if something went wrong
func (M *MemHashMap) DumpBuckets(w io.Writer) (err error) {
	if w == nil {
		return
	}

	sp := M.chainManagement.GetStorageParameters()

	buffer := bytebufferpool.Get()
	defer bytebufferpool.Put(buffer)

	var bucket model.Bucket
	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		bucket, err = M.chainManagement.GetBucket(i)
		if err != nil {
			return
		}

		_, _ = fmt.Fprintf(buffer, "bucket %d: %d record(s)\n", i, len(bucket.Records))
		for _, record := range bucket.Records {
			_, _ = fmt.Fprintf(buffer, "  key: %x, value: %x\n", record.Key, record.Value)
		}
	}

	_, err = w.Write(buffer.B)
	if err != nil {
		err = fmt.Errorf("error while writing buckets to sink: %s", err)
	}

	return
}
