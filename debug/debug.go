// Package debug gates verbose, stderr-only tracing behind boolean
// environment variables, one per pipeline stage. It is a development
// aid, not part of the operational logging the CLI does with
// log/slog.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan   bool
	Parse  bool
	Merge  bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("NAAY_DEBUG_SCAN")
	d.Parse = boolEnv("NAAY_DEBUG_PARSE")
	d.Merge = boolEnv("NAAY_DEBUG_MERGE")
	d.Encode = boolEnv("NAAY_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Scan reports whether NAAY_DEBUG_SCAN tracing is enabled (line
// splitting and indentation classification).
func Scan() bool { return d.Scan }

// Parse reports whether NAAY_DEBUG_PARSE tracing is enabled (the
// structural parser's collection and value decisions).
func Parse() bool { return d.Parse }

// Merge reports whether NAAY_DEBUG_MERGE tracing is enabled (anchor,
// alias, and merge-key resolution).
func Merge() bool { return d.Merge }

// Encode reports whether NAAY_DEBUG_ENCODE tracing is enabled (the
// dumper's line-by-line emission).
func Encode() bool { return d.Encode }
