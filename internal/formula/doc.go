// Package formula tokenizes formulas written in the compact storage syntax.
//
// The grammar is:
//
//	Formula     := (Literal | InternalRef | ExternalRef)*
//	Literal     := any run of characters not starting with '$' or '#'
//	InternalRef := "$" Digits
//	ExternalRef := "#" Digits ["$" Digits]
//
// Tokenize keeps the source text of every token, so concatenating the
// tokens always reproduces the input exactly, malformed references included.
package formula
