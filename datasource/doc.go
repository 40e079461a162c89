// Package datasource provides bind.DataAccess implementations backed by
// YAML documents and bbolt databases.
//
// Both sources hold plain values: booleans, numbers, strings, sequences
// and mappings, as produced by decoding YAML.
//
//	title: Inbox
//	unread: 3
//	accent: "#3060c0"
//	logo: images/logo.png
//	messages:
//	  - subject: Hello
//	    read: false
//	  - subject: Invoice
//	    read: true
//	folders:
//	  kind: root
//	  label: Mail
//	  events: {label_left: open_folder}
//	  items:
//	    - {kind: empty-item, label: Sent}
//
// Inside a list body a name is first looked up in the current item, a
// mapping, and then at the top level. A sequence stored in an item field
// can be iterated by a nested list. Image names resolve to files relative
// to the document, decoded once and cached. Mappings with a kind field
// are tree views; see TreeView for the accepted fields.
package datasource
