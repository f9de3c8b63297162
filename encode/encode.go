package encode

import (
	"strings"

	"github.com/naay-lang/naay/ir"
	"github.com/naay-lang/naay/parse"
	"github.com/naay-lang/naay/token"
)

type config struct {
	colors *Colors
}

func defaultConfig() config { return config{} }

// Option configures Encode.
type Option func(*config)

// WithColors enables ANSI-colored output using the given palette. A nil
// Colors (the default) produces plain text.
func WithColors(c *Colors) Option {
	return func(cfg *config) { cfg.colors = c }
}

// Encode serializes tree to its textual form. tree's root must be a
// mapping whose first entry is the version preamble with the required
// version; otherwise Encode fails with VersionMissing or
// VersionMismatch, the same gate the parse package applies on read.
func Encode(tree *ir.Node, opts ...Option) ([]byte, error) {
	if tree == nil || tree.Kind != ir.MapKind {
		return nil, ir.NewError(ir.VersionMissing, 1, 1, "root must be a mapping")
	}
	if err := parse.CheckVersion(tree); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	w := &writer{cfg: cfg}
	if err := w.writeMapBody(tree, 0); err != nil {
		return nil, err
	}
	if tree.TrailingComment != nil {
		for _, line := range strings.Split(*tree.TrailingComment, "\n") {
			w.sb.WriteString(w.color(line, CommentRole))
			w.sb.WriteByte('\n')
		}
	}
	return []byte(w.sb.String()), nil
}

// EncodeValue serializes an arbitrary node — scalar, sequence, or
// mapping, not necessarily a version-gated document root — used by
// package debug to pretty-print intermediate parse state.
func EncodeValue(v *ir.Node, opts ...Option) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	w := &writer{cfg: cfg}
	switch v.Kind {
	case ir.MapKind:
		if err := w.writeMapBody(v, 0); err != nil {
			return nil, err
		}
	case ir.SeqKind:
		if err := w.writeSeqBody(v, 0); err != nil {
			return nil, err
		}
	default:
		inline, _, err := w.renderValueInline(v)
		if err != nil {
			return nil, err
		}
		w.sb.WriteString(inline)
		w.sb.WriteByte('\n')
	}
	return []byte(w.sb.String()), nil
}

type writer struct {
	sb  strings.Builder
	cfg config
}

func (w *writer) color(s string, role Role) string {
	if w.cfg.colors == nil || s == "" {
		return s
	}
	return w.cfg.colors.Paint(role, s)
}

func (w *writer) indentBytes(n int) {
	for i := 0; i < n; i++ {
		w.sb.WriteByte(' ')
	}
}

func (w *writer) writeLeading(v *ir.Node, indent int) {
	for _, c := range v.LeadingComments {
		w.indentBytes(indent)
		w.sb.WriteString(w.color(c, CommentRole))
		w.sb.WriteByte('\n')
	}
}

func (w *writer) writeMapBody(node *ir.Node, indent int) error {
	for _, e := range node.Map {
		w.writeLeading(e.Value, indent)
		w.indentBytes(indent)
		w.sb.WriteString(w.color(emitKeyInline(e.Key), KeyRole))
		w.sb.WriteString(w.color(":", SepRole))
		if err := w.writeValueAndTrailing(e.Value, indent); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeSeqBody(node *ir.Node, indent int) error {
	for _, item := range node.Seq {
		w.writeLeading(item, indent)
		w.indentBytes(indent)
		w.sb.WriteString(w.color("-", SepRole))
		if err := w.writeValueAndTrailing(item, indent); err != nil {
			return err
		}
	}
	return nil
}

// writeValueAndTrailing writes the value portion of an entry whose
// "key:" or "-" introducer has already been written, the entry's
// trailing comment, and the line-ending newline, recursing into a
// nested block afterward when the value is a non-empty collection.
func (w *writer) writeValueAndTrailing(v *ir.Node, indent int) error {
	inline, nested, err := w.renderValueInline(v)
	if err != nil {
		return err
	}
	if inline != "" {
		w.sb.WriteString(" ")
		w.sb.WriteString(inline)
	}
	if v.TrailingComment != nil {
		w.sb.WriteString(" ")
		w.sb.WriteString(w.color(*v.TrailingComment, CommentRole))
	}
	w.sb.WriteByte('\n')
	if nested != nil {
		return nested(indent + 2)
	}
	return nil
}

func (w *writer) renderValueInline(v *ir.Node) (inline string, nested func(int) error, err error) {
	if v.AliasOf != nil {
		return w.color("*"+*v.AliasOf, AliasRole), nil, nil
	}
	prefix := ""
	if v.AnchorName != nil {
		prefix = w.color("&"+*v.AnchorName, AnchorRole) + " "
	}

	switch v.Kind {
	case ir.MapKind:
		if len(v.Map) == 0 {
			return prefix + w.color("{}", SepRole), nil, nil
		}
		return strings.TrimRight(prefix, " "), func(ind int) error { return w.writeMapBody(v, ind) }, nil

	case ir.SeqKind:
		if len(v.Seq) == 0 {
			return prefix + w.color("[]", SepRole), nil, nil
		}
		return strings.TrimRight(prefix, " "), func(ind int) error { return w.writeSeqBody(v, ind) }, nil

	default: // StrKind
		if v.Style != ir.PlainStyle || strings.Contains(v.Str, "\n") {
			marker, body := renderBlockLiteral(v)
			return prefix + w.color(marker, SepRole), func(ind int) error {
				w.writeBlockLiteralBody(body, ind)
				return nil
			}, nil
		}
		return prefix + w.color(emitScalarInline(v.Str), ScalarRole), nil, nil
	}
}

// renderBlockLiteral returns the "|" introducer (with its chomping
// indicator) and the de-indented body lines to write beneath it.
func renderBlockLiteral(v *ir.Node) (marker string, lines []string) {
	switch v.Style {
	case ir.LiteralStrip:
		marker = "|-"
		lines = strings.Split(v.Str, "\n")
	case ir.LiteralKeep:
		marker = "|+"
		lines = strings.Split(strings.TrimSuffix(v.Str, "\n"), "\n")
	default:
		marker = "|"
		lines = strings.Split(strings.TrimSuffix(v.Str, "\n"), "\n")
	}
	return marker, lines
}

func (w *writer) writeBlockLiteralBody(lines []string, indent int) {
	for _, l := range lines {
		if l != "" {
			w.indentBytes(indent)
			w.sb.WriteString(w.color(l, ScalarRole))
		}
		w.sb.WriteByte('\n')
	}
}

// emitScalarInline renders s as either a bare token or a double-quoted
// one, quoting whenever token.NeedsQuote reports that a bare rendering
// would not decode back to s.
func emitScalarInline(s string) string {
	if token.NeedsQuote(s) {
		return token.QuoteDouble(s)
	}
	return s
}

// emitKeyInline renders a mapping key, quoting it whenever it contains
// whitespace or any of the reserved characters ": # ?" anywhere in the
// string, mirroring splitMapKey's decode-side bare-key validation
// rather than the value-side leading-character rule: a key is scanned
// up to its first unquoted colon, so a reserved character anywhere in
// a bare key would split or terminate it wrong on re-parse.
func emitKeyInline(s string) string {
	if needsKeyQuote(s) {
		return token.QuoteDouble(s)
	}
	return s
}

func needsKeyQuote(s string) bool {
	if s == "" {
		return false
	}
	return strings.ContainsAny(s, " \t:#?") || strings.Contains(s, "\n")
}
