// Package affix separates translatable text from the numerals, bullets,
// whitespace and punctuation around it. Affixes are never sent to a
// translation backend; they are reattached verbatim afterwards.
package affix
