package token

import "fmt"

// Pos is a 1-based line/column position within a single parsed document,
// used to anchor loader error messages.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Col)
}
