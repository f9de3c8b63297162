package parse

import (
	"regexp"

	"github.com/naay-lang/naay/ir"
)

// anchorDeclPattern approximates an anchor declaration: an "&name" token
// preceded by the start of the value slot (whitespace, a dash, or a
// colon). It is deliberately permissive rather than a full re-parse of
// every line; a "&name"-shaped literal glued inside a quoted scalar is
// an edge case this prescan does not need to get exactly right, since
// its only job is distinguishing AliasForward from AliasUnresolved.
var anchorDeclPattern = regexp.MustCompile(`(?:^|[\s:\-])&([A-Za-z_][A-Za-z0-9_-]*)`)

// prescanAnchors records every anchor name declared anywhere in the
// document, independent of parse order, so that an alias encountered
// before its target has been parsed can be reported as AliasForward
// rather than the unconditional AliasUnresolved.
func (p *parser) prescanAnchors(text []byte) {
	for _, m := range anchorDeclPattern.FindAllSubmatch(text, -1) {
		p.declared[string(m[1])] = true
	}
}

// resolveAlias decodes a "*name" reference. The resolved node is a
// fresh value-only clone of the anchor's target: an alias never shares
// identity with the node it points to.
func (p *parser) resolveAlias(rest string, lineNo, col int) (*ir.Node, error) {
	name, tail := scanAnchorRef(rest)
	if name == "" {
		return nil, ir.NewError(ir.UnexpectedChar, lineNo, col, "alias is missing a name")
	}
	if tail != "" {
		return nil, ir.NewError(ir.UnexpectedChar, lineNo, col, "unexpected content %q after alias", tail)
	}
	target, ok := p.anchors[name]
	if ok {
		v := target.CloneValue()
		alias := name
		v.AliasOf = &alias
		return v, nil
	}
	if p.declared[name] {
		return nil, ir.NewError(ir.AliasForward, lineNo, col, "alias %q refers to an anchor declared later in the document", name)
	}
	return nil, ir.NewError(ir.AliasUnresolved, lineNo, col, "alias %q does not refer to any anchor", name)
}

func scanAnchorRef(s string) (name, rest string) {
	i := 0
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	return s[:i], trimLeftSpace(s[i:])
}

func trimLeftSpace(s string) string {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[i:]
}

// expandMerge resolves a "<<" merge-key entry of node, if present,
// folding the merge source's keys in at the "<<" entry's original
// position. Explicit keys declared anywhere else in node always win
// over merge-contributed keys, regardless of whether they appear
// before or after "<<" in the source text. Among the merge sources
// themselves (a single mapping, or a sequence of mappings merged left
// to right) the first source to contribute a given key wins.
func (p *parser) expandMerge(node *ir.Node) error {
	idx := -1
	for i, e := range node.Map {
		if e.Key == "<<" {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	mergeVal := node.Map[idx].Value
	loc := p.mergeLineNo[node]

	var sources []*ir.Node
	switch mergeVal.Kind {
	case ir.MapKind:
		sources = []*ir.Node{mergeVal}
	case ir.SeqKind:
		for _, item := range mergeVal.Seq {
			if item.Kind != ir.MapKind {
				return ir.NewError(ir.MergeTargetNotMap, loc[0], loc[1], "merge key source must be a mapping or a sequence of mappings")
			}
			sources = append(sources, item)
		}
	default:
		return ir.NewError(ir.MergeTargetNotMap, loc[0], loc[1], "merge key source must be a mapping or a sequence of mappings")
	}

	explicit := map[string]bool{}
	for _, e := range node.Map {
		if e.Key != "<<" {
			explicit[e.Key] = true
		}
	}

	var additions []ir.Entry
	added := map[string]bool{}
	for _, src := range sources {
		for _, e := range src.Map {
			if explicit[e.Key] || added[e.Key] {
				continue
			}
			added[e.Key] = true
			additions = append(additions, ir.Entry{Key: e.Key, Value: e.Value.CloneValue()})
		}
	}

	result := make([]ir.Entry, 0, len(node.Map)-1+len(additions))
	for i, e := range node.Map {
		if i == idx {
			result = append(result, additions...)
			continue
		}
		result = append(result, e)
	}
	node.Map = result
	return nil
}
