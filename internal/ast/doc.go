// Package ast models the statement and expression trees of a parsed source
// file. The trees are populated by an external parser; this layer only
// defines the shapes the source-unit model and the signature hash consume.
//
// Statements and expressions are closed sums: a uint8 kind plus a
// kind-specific payload behind a sealed marker interface. Nodes this model
// does not structure are carried as opaque expressions with their raw text,
// so downstream consumers stay total over arbitrary input.
package ast
