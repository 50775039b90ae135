// Package deck reads and writes slide decks stored as YAML and exposes
// them to the processor as translatable documents.
//
// A deck holds slides, slides hold shapes, shapes hold paragraphs and
// paragraphs hold runs. A run is either text, a field or a line break:
//
//	title: Sunday service
//	slides:
//	  - number: 1
//	    shapes:
//	      - name: Title
//	        paragraphs:
//	          - runs:
//	              - text: "Hello "
//	                style: {bold: true}
//	              - break: true
//	              - field: slidenum
//	                text: "1"
package deck
