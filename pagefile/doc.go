// Package pagefile decodes pages and fragments written in YAML.
//
// A file is a mapping with two optional sections, pages and fragments,
// each mapping a name to a list of commands:
//
//	fragments:
//	  button:
//	    - Declare: {name: label, text: OK}
//	    - ElementOpened
//	    - ConfigOpened
//	    - PaddingAll: 8
//	    - Color: "#3060c0"
//	    - ConfigClosed
//	    - TextElementOpened
//	    - TextElementClosed: $label
//	    - ElementClosed
//	pages:
//	  main:
//	    - ElementOpened: root
//	    - UseOpened
//	    - Declare: {name: label, ref: title}
//	    - UseClosed: button
//	    - ElementClosed
//
// A command is either a bare marker or directive name, or a mapping with a
// single key whose value is the operand. Names are those returned by
// bind.ElementKind.String and bind.ConfigKind.String.
//
// String operands starting with "$" are dynamic references; "$$" escapes
// a literal dollar sign. Pairs are written as two-element sequences,
// colors as hex strings or color names, and Clip as either
// {vertical, horizontal} or a two-element sequence. Flag directives
// without an operand are on.
//
// Markers are checked for balance when decoding, so the interpreter never
// sees a file whose scopes do not nest.
package pagefile
