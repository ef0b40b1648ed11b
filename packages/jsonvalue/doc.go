// Package jsonvalue holds an order-preserving JSON document tree.
//
// Documents are validated and walked with gjson so that object members keep
// the order they had in the source text. The same tree is printed in two
// forms: Pretty for the console transcript and Compact for the wire.
package jsonvalue
