// Package syncrun orchestrates one marketplace synchronization: fetch the
// known SKU set, reconcile it against the vendor feed, partition the
// resulting updates into API-sized batches and submit them sequentially.
//
// The package is marketplace-agnostic. Each integration supplies a Target
// bundling its catalog fetcher, batch submitter and batch size limits.
// Submission is fail-fast: the first batch the marketplace refuses aborts
// the remaining batches of that target, and targets never share state, so
// one marketplace's failure cannot corrupt another's run.
package syncrun
