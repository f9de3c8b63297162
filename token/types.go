package token

import "github.com/naay-lang/naay/ir"

// NewErr builds a positioned *ir.Error anchored at p.
func NewErr(kind ir.ErrKind, p Pos, format string, args ...any) *ir.Error {
	return ir.NewError(kind, p.Line, p.Col, format, args...)
}

// ExpectedErr reports that `what` was expected at p but not found.
func ExpectedErr(what string, p Pos) *ir.Error {
	return NewErr(ir.UnexpectedChar, p, "expected %s", what)
}

// UnexpectedErr reports that `what` was found where it is not permitted.
func UnexpectedErr(what string, p Pos) *ir.Error {
	return NewErr(ir.UnexpectedChar, p, "unexpected %s", what)
}
