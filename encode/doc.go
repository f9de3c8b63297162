// Package encode serializes an ir.Node tree back into the text format
// the parse package reads, deterministically and byte-for-byte
// reproducibly for a given tree.
//
// # Usage
//
//	text, err := encode.Encode(tree)
//
// Pass options to control color output:
//
//	text, err := encode.Encode(tree, encode.WithColors(encode.DefaultColors()))
//
// # Related Packages
//
//   - github.com/naay-lang/naay/ir - tree representation
//   - github.com/naay-lang/naay/parse - the inverse operation
package encode
