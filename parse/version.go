package parse

import "github.com/naay-lang/naay/ir"

// PreambleKey is the required first key of every document's root
// mapping.
const PreambleKey = "_naay_version"

// RequiredVersion is the only preamble value this loader accepts.
const RequiredVersion = "1.0"

// CheckVersion enforces that root is a mapping whose first entry is the
// version preamble and whose value matches RequiredVersion exactly.
func CheckVersion(root *ir.Node) error {
	if root.Kind != ir.MapKind || len(root.Map) == 0 || root.Map[0].Key != PreambleKey {
		return ir.NewError(ir.VersionMissing, 1, 1, "document must begin with %q", PreambleKey)
	}
	val := root.Map[0].Value
	if val.Kind != ir.StrKind || val.Str != RequiredVersion {
		got := "a non-scalar value"
		if val.Kind == ir.StrKind {
			got = val.Str
		}
		return ir.NewError(ir.VersionMismatch, 1, 1, "expected %s %q, got %q", PreambleKey, RequiredVersion, got)
	}
	return nil
}
