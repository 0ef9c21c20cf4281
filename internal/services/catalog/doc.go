// Package catalog is the entry point for every catalog mutation.
//
// It validates drafts before they reach the store, then applies the
// simulated latency of the create-course and submit-assignment forms: the
// call returns a Pending operation at once and the mutation lands when its
// timer fires, moving the operation from Pending to Committed. There is no
// cancellation and no failure branch; once started, a pending mutation
// always commits. Enroll, unenroll and delete apply immediately.
package catalog
