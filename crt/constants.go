package crt

// MinNumberOfBuckets - The smallest table a hash map can be given or shrink to.
// Sizes below this limit are silently clamped rather than rejected.
const MinNumberOfBuckets int64 = 1

// MaxNumberOfBuckets - The largest table a hash map can be given or grow to.
// It keeps bucket numbers addressable also on 32 bit platforms, and any requested or
// calculated size above it is silently clamped rather than rejected.
const MaxNumberOfBuckets int64 = 1 << 30
