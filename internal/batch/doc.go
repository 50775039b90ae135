// Package batch drives translation jobs over many documents. A job
// shares one global translation memory across all files, optionally
// layered under a per-job dictionary, and persists both when done.
package batch
