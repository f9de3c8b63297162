// Package parse implements the structural parser: it consumes the raw
// line stream from the token package, classifies each line, and
// produces a
// comment-annotated ir.Node tree, resolving anchors, aliases, and the
// merge key along the way.
//
// # Usage
//
//	node, err := parse.Parse([]byte(text))
//	if err != nil {
//	    return err
//	}
//
// Parse enforces the version preamble gate before returning: a
// document whose root is not a mapping, or whose first key is not the
// preamble, or whose preamble value mismatches, fails with a
// *ir.Error of kind VersionMissing or VersionMismatch.
//
// # Related Packages
//
//   - github.com/naay-lang/naay/ir - tree representation
//   - github.com/naay-lang/naay/token - line splitting and scalar decoding
//   - github.com/naay-lang/naay/encode - serialize a tree back to text
package parse
