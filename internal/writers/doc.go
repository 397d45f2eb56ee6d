// Package writers turns result streams into formatted output. Alignment
// writers run in their own goroutine fed by a channel; tree output is
// dispatched through a format registry.
package writers
