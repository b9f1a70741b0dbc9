// Package fusion turns staged document extractions into versioned master
// concept records. CreateFromNew and Merge implement the field-level
// fusion rules; Updater drives batch ingestion with bounded optimistic
// retries over a worker pool.
package fusion
