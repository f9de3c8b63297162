package token

import "testing"

func TestSplitLinesNormalizesCRLF(t *testing.T) {
	lines, err := SplitLines([]byte("a\r\nb\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0].Text != "a" || lines[1].Text != "b" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestSplitLinesRejectsTabIndent(t *testing.T) {
	_, err := SplitLines([]byte("a:\n\tb: 1\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestSplitLinesRejectsNonUTF8(t *testing.T) {
	_, err := SplitLines([]byte{0xff, 0xfe})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestSplitInlineCommentIgnoresHashInQuotes(t *testing.T) {
	payload, comment, has := SplitInlineComment(`key: "a # b" # real`)
	if !has {
		t.Fatal("expected an inline comment")
	}
	if payload != `key: "a # b"` {
		t.Errorf("payload = %q", payload)
	}
	if comment != "# real" {
		t.Errorf("comment = %q", comment)
	}
}

func TestSplitInlineCommentRequiresLeadingSpace(t *testing.T) {
	_, _, has := SplitInlineComment(`key: a#not-a-comment`)
	if has {
		t.Error("a '#' glued to content must not start a comment")
	}
}

func TestIndentOf(t *testing.T) {
	n, rest := IndentOf("    key: 1")
	if n != 4 || rest != "key: 1" {
		t.Errorf("IndentOf = %d, %q", n, rest)
	}
}

func TestCheckEvenIndent(t *testing.T) {
	if err := CheckEvenIndent(4, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckEvenIndent(3, 1); err == nil {
		t.Error("expected an error for odd indent")
	}
}
