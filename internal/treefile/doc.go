// Package treefile reads and writes trees of strings in an HCL file format.
//
// A tree file holds exactly one top-level `node` block, the root. Nested
// `node` blocks are its children, in the order they appear:
//
//	node "10" {
//	  node "20" {}
//	  node "30" {
//	    node "21" {}
//	  }
//	  node "40" {
//	    value = "forty-${var.suffix}"
//	  }
//	}
//
// The block label is the node's value unless an optional `value` attribute
// is present. The attribute is an HCL expression evaluated against the
// variables passed to NewLoader, available as `var.<name>`.
//
// Values must be unique within the file. A repeated value is reported as an
// error wrapping ntree.ErrDuplicateValue together with the source location of
// the offending block.
package treefile
