// Package mask carries comments through the structural parse.
//
// A parser only understands the grammar, so every comment is rewritten into
// a syntactically valid expression holding the comment text as an escaped
// string payload: standalone comments become an invisible() call wrapping a
// sentinel-delimited literal, trailing comments ride along as the right
// operand of a synthetic %...% infix marker. After rendering, Unmask finds
// the known wrapper shapes by pattern matching and restores the originals.
//
// The sentinels are fixed literal strings chosen to be exceedingly unlikely
// in real source. Input that already contains them can corrupt the output;
// this is a documented limitation, not a detected condition.
package mask
