// Package value defines the tagged-union node type for mosaic documents.
//
// A Value is exactly one of: null, bool, integer, double, timestamp, string,
// bytes, reference, geo point, array, or map. The shape mirrors the backend
// wire schema one to one: map entries are an insertion-ordered vector of
// (key, value) pairs with unique keys, arrays are ordered value lists, and
// scalars carry a single payload field. Kind selects the active variant.
//
// Values form exclusively owned trees. A nested Value belongs to exactly one
// parent entry; operations that replace or remove an entry displace exactly
// the one old subtree. Use Clone to obtain an independent copy, and the
// constructor functions (FromString, FromInt, FromMap, ...) to build nodes.
//
// The package also provides structural Equals, a total Compare order
// matching the backend's cross-type ranking, deterministic CanonicalID
// strings, 64-bit structural hashing, and recognition of server-timestamp
// sentinel maps (IsServerTimestamp, LocalWriteTime, PreviousValue).
//
// Values are not safe for concurrent mutation; callers keep a single writer
// per tree and hand trees off as effectively immutable snapshots.
package value
