// Package processor contains the core translation loop. It segments
// paragraphs into run groups, strips affixes, consults the translation
// memory and rewrites each group, containing failures to the group that
// caused them.
package processor
