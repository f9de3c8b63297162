// Package format selects the CLI's output encoding: the native naay
// text form, or a JSON rendering of the value-only plain projection
// (see package naay's Plain function) for interop with tools that
// don't speak naay directly.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//
// # Related Packages
//
//   - github.com/naay-lang/naay - Loads/Dumps and the plain projection
//   - github.com/naay-lang/naay/encode - Encode IR to native text
package format
