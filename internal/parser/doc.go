// Package parser builds expression trees from masked source text.
//
// Parse returns the ordered sequence of top-level expressions; operator
// precedence follows the R language definition. Newlines terminate
// expressions except inside parenthesized or bracketed contexts, and a `=`
// directly inside a call's argument list is a named-argument binding rather
// than an assignment.
package parser
