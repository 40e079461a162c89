// Package bind interprets declarative layout commands against a layout
// engine and application data.
//
// # Overview
//
// A page is a flat sequence of Commands: paired Opened/Closed markers,
// Declarations and Config directives. Each redraw, Interpret walks the page
// once, resolves dynamic values through a DataAccess, drives a
// layout.Engine and returns the events the current Input triggered.
// Nothing is retained between passes.
//
// # Quick Start
//
//	cmds := []bind.Command[string]{
//	    bind.Mark[string](bind.ElementOpened),
//	    bind.Mark[string](bind.ConfigOpened),
//	    bind.Configure[string](bind.IDDirective(bind.Static("save"))),
//	    bind.Mark[string](bind.ConfigClosed),
//	    bind.On(bind.LeftClickedOpened, &action),
//	    bind.Mark[string](bind.LeftClickedClosed),
//	    bind.Mark[string](bind.TextElementOpened),
//	    bind.CloseText[string](bind.Dynamic[string]("label")),
//	    bind.Mark[string](bind.ElementClosed),
//	}
//
//	tree := layout.NewTree(nil)
//	tree.BeginLayout(800, 600)
//	res := bind.Interpret(cmds, nil, tree, data, input)
//	render := tree.EndLayout()
//	res.Dispatch(handler)
//
// Pages and fragments are usually loaded with package pagefile and kept in
// a Binder, which allows hot swapping them between passes.
//
// # Resolution
//
// A dynamic name is first looked up in the local scope: the Declarations
// at the start of the page, a list body or a Use, TreeView or TextBox
// body. A local bound to another name is looked up in the data source
// under that name. Anything not found yields the type default: false, 0,
// DefaultText, the zero color, no image or the zero event.
//
// # Control Flow
//
// If, IfNot and the event scopes (hover, focus and mouse buttons) skip
// their body when the condition does not hold. List repeats its body once
// per item with a ListContext. Use splices a registered fragment in place
// and configures the same element as its caller.
//
// # Architecture
//
// The module is organized into:
//   - bind: commands, resolution, the interpreter and Binder
//   - layout: the Engine interface, configurations and a reference Tree
//   - recording: an Engine that records calls for tests and inspection
//   - measure: text measurers for layout.Tree
//   - pagefile: YAML page definitions
//   - datasource: YAML and bbolt backed DataAccess implementations
//   - preview: PNG rendering of layout output
//   - cmd/bindview: a command line previewer
package bind

// Version is the current version of the library.
const Version = "0.1.0"
