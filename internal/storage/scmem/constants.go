package scmem

// initialChainLengthThreshold - The chain length threshold a new table starts out with.
// The threshold doubles on every growth of the table and is surfaced through statistics,
// it takes no part in deciding when to grow.
const initialChainLengthThreshold int64 = 3
