// Package store provides the in-memory catalog store.
//
// MemoryStore is the single owner and writer of the three catalog
// collections:
//   - Courses, in creation order, with store-assigned monotonic IDs
//   - Enrollments, at most one per course ID
//   - Submissions, an append-only log
//
// Every mutation builds replacement collections and swaps them in under the
// write lock, so a Snapshot handed to a reader is never modified afterwards.
// Mutations cannot fail: unknown IDs are ignored and duplicate enrollments
// are dropped.
package store
