// Package arena provides a typed node arena for index construction.
//
// Nodes are addressed by Ref handles instead of pointers, so graph-like
// structures such as tries are plain index-following data with no ownership
// cycles. Storage grows in fixed-size chunks; existing chunks never move, so
// pointers returned by Get stay valid until Reset.
//
// # Features
//
//   - Power-of-two chunks, Ref decoding with a shift and a mask
//   - Ref 0 reserved as Null
//   - Cheap bulk release via Reset
//
// # Concurrency
//
// Alloc and Reset must not run concurrently with anything else. Once
// construction is finished, Get is safe for concurrent readers.
package arena
