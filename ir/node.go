// Package ir defines the tree representation shared by the parser and
// the encoder: a tagged Value union plus the comment/anchor metadata
// needed for faithful round-tripping.
package ir

// Kind identifies the shape of a Node's Value.
type Kind int

const (
	// StrKind holds a UTF-8 string.
	StrKind Kind = iota
	// SeqKind holds an ordered sequence of Nodes.
	SeqKind
	// MapKind holds an insertion-ordered mapping from string keys to Nodes.
	MapKind
)

func (k Kind) String() string {
	switch k {
	case StrKind:
		return "Str"
	case SeqKind:
		return "Seq"
	case MapKind:
		return "Map"
	default:
		return "Unknown"
	}
}

// Entry is one key/value pair of a Map node, kept in insertion order.
type Entry struct {
	Key   string
	Value *Node
}

// BlockStyle records how a Str value should round-trip when dumped.
type BlockStyle int

const (
	// PlainStyle is bare or quoted, decided by the encoder from content.
	PlainStyle BlockStyle = iota
	// LiteralClip is a pipe block scalar with clip chomping (default).
	LiteralClip
	// LiteralStrip is a pipe block scalar with strip chomping ("|-").
	LiteralStrip
	// LiteralKeep is a pipe block scalar with keep chomping ("|+").
	LiteralKeep
)

// Node wraps a Value with the metadata needed to round-trip comments and
// anchors. Exactly one of the Str/Seq/Map fields is meaningful, selected
// by Kind.
type Node struct {
	Kind Kind

	Str   string
	Style BlockStyle // meaningful only when Kind == StrKind

	Seq []*Node
	Map []Entry

	LeadingComments []string
	TrailingComment *string

	AnchorName *string
	AliasOf    *string
}

// NewStr builds a plain Str node.
func NewStr(s string) *Node {
	return &Node{Kind: StrKind, Str: s}
}

// NewSeq builds a Seq node from the given elements (no copy).
func NewSeq(elems []*Node) *Node {
	if elems == nil {
		elems = []*Node{}
	}
	return &Node{Kind: SeqKind, Seq: elems}
}

// NewMap builds an empty Map node.
func NewMap() *Node {
	return &Node{Kind: MapKind, Map: []Entry{}}
}

// Get returns the value for key and whether it was present.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != MapKind {
		return nil, false
	}
	for _, e := range n.Map {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present in a Map node.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Set inserts key=val if absent, or overwrites the value in place
// (preserving its original position) if already present. Returns true
// if the key was newly inserted.
func (n *Node) Set(key string, val *Node) bool {
	for i, e := range n.Map {
		if e.Key == key {
			n.Map[i].Value = val
			return false
		}
	}
	n.Map = append(n.Map, Entry{Key: key, Value: val})
	return true
}

// Keys returns the map's keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.Map))
	for i, e := range n.Map {
		keys[i] = e.Key
	}
	return keys
}

// Clone deep-copies a Node, including metadata but not anchor table
// bindings (anchor_name/alias_of are copied as plain string pointers).
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Kind:  n.Kind,
		Str:   n.Str,
		Style: n.Style,
	}
	if n.LeadingComments != nil {
		c.LeadingComments = append([]string(nil), n.LeadingComments...)
	}
	if n.TrailingComment != nil {
		v := *n.TrailingComment
		c.TrailingComment = &v
	}
	if n.AnchorName != nil {
		v := *n.AnchorName
		c.AnchorName = &v
	}
	if n.AliasOf != nil {
		v := *n.AliasOf
		c.AliasOf = &v
	}
	switch n.Kind {
	case SeqKind:
		c.Seq = make([]*Node, len(n.Seq))
		for i, e := range n.Seq {
			c.Seq[i] = e.Clone()
		}
	case MapKind:
		c.Map = make([]Entry, len(n.Map))
		for i, e := range n.Map {
			c.Map[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
		}
	}
	return c
}

// CloneValue deep-copies only the Value (no comments, no anchor/alias
// metadata). Used when an alias is resolved for a consumer-facing
// snapshot: identity must not be shared between the aliased node and
// its alias reference.
func (n *Node) CloneValue() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Str: n.Str, Style: n.Style}
	switch n.Kind {
	case SeqKind:
		c.Seq = make([]*Node, len(n.Seq))
		for i, e := range n.Seq {
			c.Seq[i] = e.CloneValue()
		}
	case MapKind:
		c.Map = make([]Entry, len(n.Map))
		for i, e := range n.Map {
			c.Map[i] = Entry{Key: e.Key, Value: e.Value.CloneValue()}
		}
	}
	return c
}

// Equal reports whether two nodes have equal Values, ignoring comment
// and anchor/alias metadata. Map comparison respects insertion order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case StrKind:
		return a.Str == b.Str
	case SeqKind:
		if len(a.Seq) != len(b.Seq) {
			return false
		}
		for i := range a.Seq {
			if !Equal(a.Seq[i], b.Seq[i]) {
				return false
			}
		}
		return true
	case MapKind:
		if len(a.Map) != len(b.Map) {
			return false
		}
		for i := range a.Map {
			if a.Map[i].Key != b.Map[i].Key || !Equal(a.Map[i].Value, b.Map[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
