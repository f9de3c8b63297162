package encode

import "github.com/fatih/color"

// Role identifies what part of a line a span of emitted text plays,
// for the purpose of picking a color.
type Role int

const (
	KeyRole Role = iota
	ScalarRole
	SepRole
	CommentRole
	AnchorRole
	AliasRole
)

// Colors is a role → paint-function palette, applied by Encode when
// WithColors is passed. Nil Colors (the default) disables coloring
// entirely; DefaultColors returns a palette modeled on common terminal
// YAML highlighting.
type Colors struct {
	palette map[Role]func(...any) string
}

// Paint renders s in the color assigned to role, or returns s unchanged
// if role has no entry. Uses Sprint, not Sprintf, so a comment or
// scalar containing a literal '%' is never misinterpreted as a format
// verb.
func (c *Colors) Paint(role Role, s string) string {
	if c == nil {
		return s
	}
	if fn, ok := c.palette[role]; ok {
		return fn(s)
	}
	return s
}

// DefaultColors builds the standard palette: keys in bold cyan, scalars
// in green, separators dimmed, anchors/aliases in magenta, comments in
// blue.
func DefaultColors() *Colors {
	return &Colors{palette: map[Role]func(...any) string{
		KeyRole:     color.New(color.FgCyan, color.Bold).SprintFunc(),
		ScalarRole:  color.New(color.FgGreen).SprintFunc(),
		SepRole:     color.New(color.FgHiBlack).SprintFunc(),
		CommentRole: color.New(color.FgBlue).SprintFunc(),
		AnchorRole:  color.New(color.FgMagenta).SprintFunc(),
		AliasRole:   color.New(color.FgMagenta).SprintFunc(),
	}}
}
