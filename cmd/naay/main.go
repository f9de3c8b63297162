// Command naay loads, dumps, diffs, queries, and patches naay
// documents from the shell.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
