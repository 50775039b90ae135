// Package richtext models paragraphs of formatted runs and groups
// consecutive runs with the same formatting into translation units
// that can be rewritten without losing formatting boundaries.
package richtext
