// Package pipeline fans sequence pairs out to worker goroutines and
// delivers results to a single collector in job order, so output is the
// same for any thread count.
//
// The only contract to implement is Aligner. This keeps the pipeline
// swappable and testable.
package pipeline
