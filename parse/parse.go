package parse

import (
	"strings"

	"github.com/naay-lang/naay/ir"
	"github.com/naay-lang/naay/token"
)

// Parse parses a UTF-8 text into a comment-annotated ir.Node tree and
// enforces the version preamble gate.
func Parse(text []byte) (*ir.Node, error) {
	lines, err := token.SplitLines(text)
	if err != nil {
		return nil, err
	}
	p := &parser{
		lines:               lines,
		anchors:             map[string]*ir.Node{},
		declared:            map[string]bool{},
		mergeLineNo:         map[*ir.Node][2]int{},
		pendingInlineMapCol: -1,
	}
	p.prescanAnchors(text)

	root, err := p.parseCollection(-1)
	if err != nil {
		return nil, err
	}
	if root == nil {
		root = ir.NewMap()
	}
	if len(p.pending) > 0 {
		c := strings.Join(p.pending, "\n")
		root.TrailingComment = &c
		p.pending = nil
	}
	if err := CheckVersion(root); err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lines   []token.RawLine
	pos     int
	pending []string

	anchors  map[string]*ir.Node
	declared map[string]bool // every anchor name declared anywhere in the document

	// mergeLineNo remembers the source position of each "<<" entry's
	// value, keyed by the containing map node, for error reporting once
	// merges are expanded at the end of that map's parse.
	mergeLineNo map[*ir.Node][2]int

	// pendingInlineMapCol is the column a continuation line must match
	// to be recognized as a second key folded into the single-entry
	// inline mapping produced by the immediately preceding "- key:"
	// sequence item; -1 when the preceding item was not such a mapping.
	pendingInlineMapCol int
}

func (p *parser) atEOF() bool { return p.pos >= len(p.lines) }

// parseCollection parses a block mapping or block sequence whose first
// content line is indented strictly more than parentIndent. It returns
// (nil, nil) if no such line follows (the caller treats the value slot
// as an empty string instead).
func (p *parser) parseCollection(parentIndent int) (*ir.Node, error) {
	target := -1
	node := &ir.Node{}

	for !p.atEOF() {
		line := p.lines[p.pos]
		indent, rest := token.IndentOf(line.Text)
		pos := token.Pos{Line: line.No, Col: indent + 1}

		if token.IsBlank(rest) {
			p.pos++
			continue
		}
		if token.IsFullLineComment(rest) {
			p.pending = append(p.pending, rest)
			p.pos++
			continue
		}

		if target == -1 {
			if indent <= parentIndent {
				return nil, nil
			}
			if err := token.CheckEvenIndent(indent, line.No); err != nil {
				return nil, err
			}
			target = indent
			if rest == "-" || strings.HasPrefix(rest, "- ") {
				node.Kind = ir.SeqKind
				node.Seq = []*ir.Node{}
			} else {
				node.Kind = ir.MapKind
				node.Map = []ir.Entry{}
			}
		}

		if indent < target {
			break
		}
		if indent > target {
			isDash := rest == "-" || strings.HasPrefix(rest, "- ")
			if node.Kind == ir.SeqKind && p.pendingInlineMapCol == indent && !isDash {
				return nil, ir.NewError(ir.FlowMappingMulti, line.No, indent+1, "multi-key inline mapping after \"- key:\" is not supported")
			}
			return nil, ir.NewError(ir.IndentMix, line.No, indent+1, "sibling item indented inconsistently (expected column %d)", target+1)
		}

		leading := p.pending
		p.pending = nil

		payload, comment, hasComment := token.SplitInlineComment(rest)
		p.pos++

		var (
			value *ir.Node
			err   error
		)
		if node.Kind == ir.SeqKind {
			value, err = p.parseSeqItemPayload(payload, target, line.No)
		} else {
			value, err = p.parseMapItemPayload(node, payload, target, line.No, pos)
		}
		if err != nil {
			return nil, err
		}
		if value == nil {
			// Merge-key entries are folded directly into node.Map and
			// have no standalone value node to attach comments to.
			continue
		}
		value.LeadingComments = leading
		if hasComment {
			c := comment
			value.TrailingComment = &c
		}
		if node.Kind == ir.SeqKind {
			node.Seq = append(node.Seq, value)
		}
	}

	if target == -1 {
		return nil, nil
	}
	if node.Kind == ir.MapKind {
		if err := p.expandMerge(node); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// parseSeqItemPayload parses the text following "- " (or the bare "-"
// with nothing following) on a sequence item's introducing line.
func (p *parser) parseSeqItemPayload(payload string, indent int, lineNo int) (*ir.Node, error) {
	p.pendingInlineMapCol = -1

	var rest string
	switch {
	case payload == "-":
		rest = ""
	case strings.HasPrefix(payload, "- "):
		rest = strings.TrimLeft(payload[2:], " ")
	default:
		return nil, ir.NewError(ir.UnexpectedChar, lineNo, indent+1, "expected sequence item introducer %q", "- ")
	}

	pos := token.Pos{Line: lineNo, Col: indent + 3}
	if key, valueRest, ok, err := splitMapKey(rest, pos); err != nil {
		return nil, err
	} else if ok {
		valNode, err := p.resolveValue(valueRest, indent, lineNo)
		if err != nil {
			return nil, err
		}
		m := ir.NewMap()
		m.Set(key, valNode)
		// A continuation line at this column would be a second key
		// folded into this single-entry inline mapping; parseCollection
		// rejects that as FlowMappingMulti rather than IndentMix.
		p.pendingInlineMapCol = indent + 2
		return m, nil
	}
	return p.resolveValue(rest, indent, lineNo)
}

// parseMapItemPayload parses one "key: value?" line of a block mapping
// and inserts it into node, folding a merge-key ("<<") entry in place
// for later expansion. Returns nil with no error for a merge-key entry
// (it has already been appended to node.Map).
func (p *parser) parseMapItemPayload(node *ir.Node, payload string, indent int, lineNo int, pos token.Pos) (*ir.Node, error) {
	key, valueRest, ok, err := splitMapKey(payload, pos)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ir.NewError(ir.UnexpectedChar, lineNo, indent+1, "expected mapping entry %q", "key: value")
	}
	if node.Has(key) {
		return nil, ir.NewError(ir.DuplicateKey, lineNo, indent+1, "duplicate key %q", key)
	}
	value, err := p.resolveValue(valueRest, indent, lineNo)
	if err != nil {
		return nil, err
	}
	node.Map = append(node.Map, ir.Entry{Key: key, Value: value})
	if key == "<<" {
		p.mergeLineNo[node] = [2]int{lineNo, indent + 1}
		return nil, nil
	}
	return value, nil
}

// resolveValue decodes whatever follows a mapping-entry colon or
// sequence-item dash: an anchor declaration, an alias, an empty
// collection literal, a pipe block literal, a bare/quoted scalar, or
// (when valueRest is empty) a nested block read from subsequent lines.
func (p *parser) resolveValue(valueRest string, parentIndent int, lineNo int) (*ir.Node, error) {
	pos := token.Pos{Line: lineNo, Col: parentIndent + 1}

	var anchorName string
	hasAnchor := false
	if strings.HasPrefix(valueRest, "&") {
		name, rem, err := splitAnchorName(valueRest)
		if err != nil {
			return nil, ir.NewError(ir.UnexpectedChar, lineNo, parentIndent+1, "%s", err.Error())
		}
		anchorName, hasAnchor = name, true
		valueRest = rem
	}

	switch {
	case valueRest == "":
		child, err := p.parseCollection(parentIndent)
		if err != nil {
			return nil, err
		}
		if child == nil {
			if hasAnchor {
				return nil, ir.NewError(ir.AnchorOnScalar, lineNo, parentIndent+1, "anchor %q applied to a bare scalar", anchorName)
			}
			return ir.NewStr(""), nil
		}
		if hasAnchor {
			child.AnchorName = &anchorName
			p.anchors[anchorName] = child
		}
		return child, nil

	case valueRest == "[]":
		n := ir.NewSeq(nil)
		if hasAnchor {
			n.AnchorName = &anchorName
			p.anchors[anchorName] = n
		}
		return n, nil

	case valueRest == "{}":
		n := ir.NewMap()
		if hasAnchor {
			n.AnchorName = &anchorName
			p.anchors[anchorName] = n
		}
		return n, nil

	case strings.HasPrefix(valueRest, "*"):
		if hasAnchor {
			return nil, ir.NewError(ir.UnexpectedChar, lineNo, parentIndent+1, "an anchor cannot be declared on an alias")
		}
		return p.resolveAlias(valueRest[1:], lineNo, parentIndent+1)

	case strings.HasPrefix(valueRest, "|"):
		if hasAnchor {
			return nil, ir.NewError(ir.AnchorOnScalar, lineNo, parentIndent+1, "anchor %q applied to a bare scalar", anchorName)
		}
		chomp, err := token.ParseChompIndicator(valueRest[1:], pos)
		if err != nil {
			return nil, err
		}
		return p.readBlockLiteral(parentIndent, chomp, lineNo)

	case strings.HasPrefix(valueRest, ">"):
		return nil, ir.NewError(ir.FoldedUnsupported, lineNo, parentIndent+1, "folded scalars are not supported")

	case strings.HasPrefix(valueRest, "[") && valueRest != "[]":
		return nil, ir.NewError(ir.FlowUnsupported, lineNo, parentIndent+1, "inline flow sequences are not supported")

	case strings.HasPrefix(valueRest, "{") && valueRest != "{}":
		n, err := handleInlineBraceMap(valueRest, lineNo, parentIndent+1)
		if err != nil {
			return nil, err
		}
		if hasAnchor {
			n.AnchorName = &anchorName
			p.anchors[anchorName] = n
		}
		return n, nil

	default:
		s, err := token.DecodeScalarPayload(valueRest, pos)
		if err != nil {
			return nil, err
		}
		if hasAnchor {
			return nil, ir.NewError(ir.AnchorOnScalar, lineNo, parentIndent+1, "anchor %q applied to a bare scalar", anchorName)
		}
		return ir.NewStr(s), nil
	}
}

// readBlockLiteral consumes the pipe block literal body that follows
// the introducing "key: |" (or "- |") line.
func (p *parser) readBlockLiteral(parentIndent int, chomp token.Chomp, introLineNo int) (*ir.Node, error) {
	var raws []string
	firstLineNo := introLineNo + 1
	for !p.atEOF() {
		line := p.lines[p.pos]
		ind, rest := token.IndentOf(line.Text)
		if rest == "" {
			raws = append(raws, "")
			p.pos++
			continue
		}
		if ind <= parentIndent {
			break
		}
		raws = append(raws, line.Text)
		p.pos++
	}
	val, err := token.DecodeBlockLiteral(raws, parentIndent, chomp, firstLineNo)
	if err != nil {
		return nil, err
	}
	n := ir.NewStr(val)
	switch chomp {
	case token.StripChomp:
		n.Style = ir.LiteralStrip
	case token.KeepChomp:
		n.Style = ir.LiteralKeep
	default:
		n.Style = ir.LiteralClip
	}
	return n, nil
}

// splitMapKey attempts to split payload as a mapping entry "key: rest".
// ok is false (with a nil error) when payload does not have that shape
// at all, letting the sequence-item parser fall back to treating it as
// a plain value instead of a hard parse error.
func splitMapKey(payload string, pos token.Pos) (key string, valueRest string, ok bool, err error) {
	if payload == "" {
		return "", "", false, nil
	}
	if payload[0] == '"' || payload[0] == '\'' {
		kv, afterQuote, derr := token.DecodeQuotedPrefix(payload, pos)
		if derr != nil {
			return "", "", false, derr
		}
		if afterQuote == "" || afterQuote[0] != ':' {
			return "", "", false, nil
		}
		rest := afterQuote[1:]
		if rest != "" && rest[0] != ' ' {
			return "", "", false, nil
		}
		return kv, strings.TrimLeft(rest, " "), true, nil
	}
	idx := strings.IndexByte(payload, ':')
	if idx <= 0 {
		return "", "", false, nil
	}
	key = payload[:idx]
	if strings.ContainsAny(key, " \t#?:") {
		return "", "", false, nil
	}
	rest := payload[idx+1:]
	if rest != "" && rest[0] != ' ' {
		return "", "", false, nil
	}
	return key, strings.TrimLeft(rest, " "), true, nil
}

func splitAnchorName(v string) (string, string, error) {
	i := 1
	for i < len(v) && isNameChar(v[i]) {
		i++
	}
	if i == 1 {
		return "", "", ir.NewError(ir.UnexpectedChar, 0, 0, "anchor declaration is missing a name")
	}
	return v[1:i], strings.TrimLeft(v[i:], " "), nil
}

func isNameChar(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// handleInlineBraceMap rejects a non-empty inline flow mapping with a
// precise diagnostic: a comma-separated "{k1: v1, k2: v2}" is
// FlowMappingMulti, and any other shape, including a single
// "{key: value}" pair, is FlowUnsupported. It never returns a node.
func handleInlineBraceMap(valueRest string, lineNo, col int) (*ir.Node, error) {
	if !strings.HasSuffix(valueRest, "}") {
		return nil, ir.NewError(ir.FlowUnsupported, lineNo, col, "unterminated inline flow mapping")
	}
	inner := valueRest[1 : len(valueRest)-1]
	parts := strings.Split(inner, ",")
	if len(parts) > 1 {
		return nil, ir.NewError(ir.FlowMappingMulti, lineNo, col, "multi-key inline mapping is not supported")
	}
	return nil, ir.NewError(ir.FlowUnsupported, lineNo, col, "inline flow mappings are not supported")
}
