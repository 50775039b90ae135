// Package memory implements the translation memory: a table mapping
// source text to its translation and the provenance of every place it
// was seen. Tables can be layered (a per-job table over a global one)
// and persisted to a CSV file or a SQLite database.
package memory
