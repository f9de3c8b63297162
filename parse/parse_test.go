package parse

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/naay-lang/naay/ir"
)

func mustParse(t *testing.T, text string) *ir.Node {
	t.Helper()
	n, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", text, err)
	}
	return n
}

func kindErr(t *testing.T, err error) ir.ErrKind {
	t.Helper()
	e, ok := err.(*ir.Error)
	if !ok {
		t.Fatalf("error %v is not *ir.Error", err)
	}
	return e.Kind
}

func str(s string) *ir.Node { return ir.NewStr(s) }

func mapOf(pairs ...any) *ir.Node {
	n := ir.NewMap()
	for i := 0; i < len(pairs); i += 2 {
		n.Map = append(n.Map, ir.Entry{Key: pairs[i].(string), Value: pairs[i+1].(*ir.Node)})
	}
	return n
}

func seqOf(items ...*ir.Node) *ir.Node {
	return ir.NewSeq(items)
}

// valueOnly strips comment and anchor/alias metadata for comparison
// against hand-built expected trees, mirroring the plain projection's
// value-only semantics.
func valueOnly(n *ir.Node) *ir.Node { return n.CloneValue() }

func TestS1Minimal(t *testing.T) {
	root := mustParse(t, "_naay_version: \"1.0\"\n")
	want := mapOf(PreambleKey, str(RequiredVersion))
	if diff := cmp.Diff(want, valueOnly(root)); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestS2NestedMappingWithComment(t *testing.T) {
	text := "_naay_version: \"1.0\"\n# top\nserver:\n  host: example.com\n  port: \"8080\"\n"
	root := mustParse(t, text)
	want := mapOf(
		PreambleKey, str(RequiredVersion),
		"server", mapOf("host", str("example.com"), "port", str("8080")),
	)
	if diff := cmp.Diff(want, valueOnly(root)); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
	server, _ := root.Get("server")
	if len(server.LeadingComments) != 1 || server.LeadingComments[0] != "# top" {
		t.Errorf("server.LeadingComments = %v, want [\"# top\"]", server.LeadingComments)
	}
}

func TestS3BlockLiteral(t *testing.T) {
	text := "_naay_version: \"1.0\"\nbanner: |\n  line one\n  line two\n"
	root := mustParse(t, text)
	banner, ok := root.Get("banner")
	if !ok {
		t.Fatal("missing banner key")
	}
	if banner.Str != "line one\nline two\n" {
		t.Errorf("banner.Str = %q, want %q", banner.Str, "line one\nline two\n")
	}
	if banner.Style != ir.LiteralClip {
		t.Errorf("banner.Style = %v, want LiteralClip", banner.Style)
	}
}

func TestS4AnchorAliasMerge(t *testing.T) {
	text := strings.Join([]string{
		`_naay_version: "1.0"`,
		`defaults: &d`,
		`  retries: "3"`,
		`  timeout: "30"`,
		`service:`,
		`  <<: *d`,
		`  timeout: "60"`,
		``,
	}, "\n")
	root := mustParse(t, text)
	service, ok := root.Get("service")
	if !ok {
		t.Fatal("missing service key")
	}
	want := mapOf("retries", str("3"), "timeout", str("60"))
	if diff := cmp.Diff(want, valueOnly(service)); diff != "" {
		t.Errorf("unexpected service value (-want +got):\n%s", diff)
	}
	if got := service.Keys(); len(got) != 2 || got[0] != "retries" || got[1] != "timeout" {
		t.Errorf("service.Keys() = %v, want [retries timeout]", got)
	}
}

func TestS5EmptyCollections(t *testing.T) {
	text := "_naay_version: \"1.0\"\nitems: []\nmeta: {}\n"
	root := mustParse(t, text)
	items, _ := root.Get("items")
	meta, _ := root.Get("meta")
	if items.Kind != ir.SeqKind || len(items.Seq) != 0 {
		t.Errorf("items = %+v, want empty Seq", items)
	}
	if meta.Kind != ir.MapKind || len(meta.Map) != 0 {
		t.Errorf("meta = %+v, want empty Map", meta)
	}
}

func TestS6TabRejection(t *testing.T) {
	_, err := Parse([]byte("_naay_version: \"1.0\"\n\titems: []\n"))
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	e := err.(*ir.Error)
	if e.Kind != ir.IndentTabs {
		t.Errorf("Kind = %v, want IndentTabs", e.Kind)
	}
	if e.Line != 2 || e.Col != 1 {
		t.Errorf("position = line %d col %d, want line 2 col 1", e.Line, e.Col)
	}
}

func TestNoNumericCoercion(t *testing.T) {
	for _, v := range []string{"42", "true", "false", "null", "3.14"} {
		v := v
		t.Run(v, func(t *testing.T) {
			root := mustParse(t, "_naay_version: \"1.0\"\nv: "+v+"\n")
			got, _ := root.Get("v")
			if got.Kind != ir.StrKind || got.Str != v {
				t.Errorf("v = %+v, want Str(%q)", got, v)
			}
		})
	}
}

// TestErrorKinds pins one minimal input for each of a set of error
// kinds raised by the structural parser, resolver, and version gate.
func TestErrorKinds(t *testing.T) {
	cases := []struct {
		name string
		text string
		want ir.ErrKind
	}{
		{"VersionMissing", "foo: bar\n", ir.VersionMissing},
		{"VersionMismatch", "_naay_version: \"2.0\"\n", ir.VersionMismatch},
		{"DuplicateKey", "_naay_version: \"1.0\"\na: \"1\"\na: \"2\"\n", ir.DuplicateKey},
		{"IndentOdd", "_naay_version: \"1.0\"\na:\n   b: \"1\"\n", ir.IndentOdd},
		{"AliasUnresolved", "_naay_version: \"1.0\"\na: *missing\n", ir.AliasUnresolved},
		{"AliasForward", "_naay_version: \"1.0\"\na: *later\nlater: &later\n  x: \"1\"\n", ir.AliasForward},
		{"AnchorOnScalar", "_naay_version: \"1.0\"\na: &x \"1\"\n", ir.AnchorOnScalar},
		{"FlowMappingMultiBrace", "_naay_version: \"1.0\"\na: {x: \"1\", y: \"2\"}\n", ir.FlowMappingMulti},
		{
			"FlowMappingMultiContinuation",
			"_naay_version: \"1.0\"\nitems:\n  - name: a\n    age: \"30\"\n",
			ir.FlowMappingMulti,
		},
		{"MergeTargetNotMap", "_naay_version: \"1.0\"\na: &x\n  - \"1\"\nb:\n  <<: *x\n", ir.MergeTargetNotMap},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.text))
			if kindErr(t, err) != c.want {
				t.Errorf("want %v, got %v", c.want, err)
			}
		})
	}
}

func TestSequenceOfAliasesMerge(t *testing.T) {
	text := strings.Join([]string{
		`_naay_version: "1.0"`,
		`a: &a`,
		`  x: "1"`,
		`  y: "1"`,
		`b: &b`,
		`  y: "2"`,
		`  z: "2"`,
		`c:`,
		`  <<:`,
		`    - *a`,
		`    - *b`,
		`  z: "3"`,
		``,
	}, "\n")
	root := mustParse(t, text)
	c, ok := root.Get("c")
	if !ok {
		t.Fatal("missing c key")
	}
	want := mapOf("x", str("1"), "y", str("1"), "z", str("3"))
	if diff := cmp.Diff(want, valueOnly(c)); diff != "" {
		t.Errorf("unexpected c value (-want +got):\n%s", diff)
	}
}

func TestInlineMapAfterDash(t *testing.T) {
	text := "_naay_version: \"1.0\"\nitems:\n  - name: a\n  - name: b\n"
	root := mustParse(t, text)
	items, _ := root.Get("items")
	if items.Kind != ir.SeqKind || len(items.Seq) != 2 {
		t.Fatalf("items = %+v, want a 2-element Seq", items)
	}
	for i, want := range []string{"a", "b"} {
		got, ok := items.Seq[i].Get("name")
		if !ok || got.Str != want {
			t.Errorf("items[%d].name = %+v, want %q", i, got, want)
		}
	}
}
