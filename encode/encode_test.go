package encode

import (
	"testing"

	"github.com/naay-lang/naay/ir"
)

func mapOf(pairs ...any) *ir.Node {
	n := ir.NewMap()
	for i := 0; i < len(pairs); i += 2 {
		n.Map = append(n.Map, ir.Entry{Key: pairs[i].(string), Value: pairs[i+1].(*ir.Node)})
	}
	return n
}

func TestEncodeMinimal(t *testing.T) {
	tree := mapOf("_naay_version", ir.NewStr("1.0"))
	got, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := "_naay_version: 1.0\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeEmptyCollections(t *testing.T) {
	tree := mapOf(
		"_naay_version", ir.NewStr("1.0"),
		"items", ir.NewSeq(nil),
		"meta", ir.NewMap(),
	)
	got, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := "_naay_version: 1.0\nitems: []\nmeta: {}\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeNestedMapping(t *testing.T) {
	tree := mapOf(
		"_naay_version", ir.NewStr("1.0"),
		"server", mapOf("host", ir.NewStr("example.com"), "port", ir.NewStr("8080")),
	)
	got, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := "_naay_version: 1.0\nserver:\n  host: example.com\n  port: 8080\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeBlockLiteral(t *testing.T) {
	banner := ir.NewStr("line one\nline two\n")
	banner.Style = ir.LiteralClip
	tree := mapOf("_naay_version", ir.NewStr("1.0"), "banner", banner)
	got, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := "_naay_version: 1.0\nbanner: |\n  line one\n  line two\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeAnchorAndAlias(t *testing.T) {
	anchorName := "d"
	target := mapOf("retries", ir.NewStr("3"))
	target.AnchorName = &anchorName
	alias := target.CloneValue()
	alias.AliasOf = &anchorName

	tree := mapOf(
		"_naay_version", ir.NewStr("1.0"),
		"defaults", target,
		"service", alias,
	)
	got, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	want := "_naay_version: 1.0\ndefaults: &d\n  retries: 3\nservice: *d\n"
	if string(got) != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestEncodeRejectsNonMapRoot(t *testing.T) {
	if _, err := Encode(ir.NewStr("x")); err == nil {
		t.Fatal("expected an error for a non-mapping root")
	}
}

func TestEncodeQuotesReservedKeys(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"a b", `"a b"`},
		{"a:b", `"a:b"`},
		{"a#b", `"a#b"`},
		{"a?b", `"a?b"`},
		{"plain", "plain"},
	}
	for _, c := range cases {
		tree := mapOf("_naay_version", ir.NewStr("1.0"), c.key, ir.NewStr("v"))
		got, err := Encode(tree)
		if err != nil {
			t.Fatal(err)
		}
		want := "_naay_version: 1.0\n" + c.want + ": v\n"
		if string(got) != want {
			t.Errorf("Encode(key=%q) = %q, want %q", c.key, got, want)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	tree := mapOf("_naay_version", ir.NewStr("1.0"), "a", ir.NewStr("b"))
	g1, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}
	if string(g1) != string(g2) {
		t.Errorf("Encode is not deterministic: %q != %q", g1, g2)
	}
}
