package naay

import (
	"errors"
	"testing"

	"github.com/naay-lang/naay/ir"
)

const s4 = `_naay_version: "1.0"
defaults: &d
  retries: "3"
  timeout: "30"
service:
  <<: *d
  timeout: "60"
`

func TestLoadsDumpsRoundTrip(t *testing.T) {
	tree, err := Loads([]byte(s4))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Dumps(tree)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := Loads(out)
	if err != nil {
		t.Fatalf("re-parsing dumped output: %v", err)
	}
	if !ir.Equal(tree, reparsed) {
		t.Error("round trip changed the tree's value")
	}
	out2, err := Dumps(tree)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != string(out2) {
		t.Error("Dumps is not deterministic")
	}
}

func TestRoundTripReservedKey(t *testing.T) {
	text := "_naay_version: \"1.0\"\n\"a b\":\n  \"x:y\": v\n"
	tree, err := Loads([]byte(text))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Dumps(tree)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := Loads(out)
	if err != nil {
		t.Fatalf("re-parsing a key with embedded whitespace/colon: %v", err)
	}
	if !ir.Equal(tree, reparsed) {
		t.Error("round trip changed the tree's value for a reserved-character key")
	}
}

func TestPlainProjection(t *testing.T) {
	tree, err := Loads([]byte(s4))
	if err != nil {
		t.Fatal(err)
	}
	plain, err := Plain(tree)
	if err != nil {
		t.Fatal(err)
	}
	root, ok := plain.(*Map)
	if !ok {
		t.Fatalf("plain projection root is %T, want *Map", plain)
	}
	service, ok := root.Get("service")
	if !ok {
		t.Fatal("missing service key")
	}
	serviceMap, ok := service.(*Map)
	if !ok {
		t.Fatalf("service is %T, want *Map", service)
	}
	if got := serviceMap.Keys(); len(got) != 2 || got[0] != "retries" || got[1] != "timeout" {
		t.Errorf("service.Keys() = %v, want [retries timeout]", got)
	}
	timeout, _ := serviceMap.Get("timeout")
	if timeout != "60" {
		t.Errorf("service.timeout = %v, want \"60\"", timeout)
	}
}

func TestLoadsVersionMismatch(t *testing.T) {
	_, err := Loads([]byte("_naay_version: \"9.9\"\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not a *naay.Error", err)
	}
	if e.Kind != ir.VersionMismatch {
		t.Errorf("Kind = %v, want VersionMismatch", e.Kind)
	}
}
