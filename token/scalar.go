package token

import (
	"strings"

	"github.com/naay-lang/naay/ir"
)

// reservedLeading is the set of first characters that force a value to
// be quoted rather than bare.
const reservedLeading = "-[]{}&*!|>#'\"%@`"

// Chomp is the trailing-newline policy of a pipe block literal.
type Chomp int

const (
	ClipChomp Chomp = iota
	StripChomp
	KeepChomp
)

// ParseChompIndicator parses the optional chomping marker that follows
// the pipe indicator ("", "-", or "+").
func ParseChompIndicator(marker string, p Pos) (Chomp, error) {
	switch marker {
	case "":
		return ClipChomp, nil
	case "-":
		return StripChomp, nil
	case "+":
		return KeepChomp, nil
	default:
		return ClipChomp, NewErr(ir.UnexpectedChar, p, "invalid block literal chomping indicator %q", marker)
	}
}

// NeedsQuote reports whether a bare rendering of s would be ambiguous
// with the subset's reserved leading characters, or contains a
// character that cannot appear unescaped (a newline forces block
// literal form, handled by the caller, not here), or would not decode
// back to s: leading or trailing whitespace is trimmed from a bare
// value, and a '#' after whitespace starts an inline comment.
func NeedsQuote(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsAny(s[:1], reservedLeading) {
		return true
	}
	if strings.Contains(s, "\n") {
		return true
	}
	if strings.TrimSpace(s) != s || strings.Contains(s, " #") || strings.Contains(s, "\t#") {
		return true
	}
	return false
}

// DecodeBareValue validates and trims a bare scalar value. The leading
// character must not be one of the reserved sigil characters.
func DecodeBareValue(payload string, p Pos) (string, error) {
	trimmed := strings.TrimRight(payload, " \t")
	if trimmed != "" && strings.ContainsAny(trimmed[:1], reservedLeading) {
		return "", NewErr(ir.UnexpectedChar, p, "bare scalar cannot start with %q; quote it", trimmed[0])
	}
	return trimmed, nil
}

// DecodeScalarPayload decodes a single-line scalar value: double-quoted,
// single-quoted, or bare. payload is the value-slot text with leading
// whitespace already stripped and any trailing inline comment already
// removed, but trailing whitespace not yet trimmed.
func DecodeScalarPayload(payload string, p Pos) (string, error) {
	if payload == "" {
		return "", nil
	}
	switch payload[0] {
	case '"':
		return decodeDoubleQuoted(payload, p)
	case '\'':
		return decodeSingleQuoted(payload, p)
	default:
		return DecodeBareValue(payload, p)
	}
}

func decodeDoubleQuoted(payload string, p Pos) (string, error) {
	s, n, err := scanDoubleQuoted(payload, p)
	if err != nil {
		return "", err
	}
	if rest := strings.TrimRight(payload[n:], " \t"); rest != "" {
		return "", NewErr(ir.UnexpectedChar, p, "unexpected content %q after closing quote", rest)
	}
	return s, nil
}

func decodeSingleQuoted(payload string, p Pos) (string, error) {
	s, n, err := scanSingleQuoted(payload, p)
	if err != nil {
		return "", err
	}
	if rest := strings.TrimRight(payload[n:], " \t"); rest != "" {
		return "", NewErr(ir.UnexpectedChar, p, "unexpected content %q after closing quote", rest)
	}
	return s, nil
}

// DecodeQuotedPrefix decodes a leading quoted scalar (double- or
// single-quoted) from the start of payload and returns the decoded
// value plus whatever text follows the closing quote, unconsumed. Used
// by the structural parser to split a quoted mapping key from the rest
// of the line.
func DecodeQuotedPrefix(payload string, p Pos) (value string, rest string, err error) {
	if payload == "" {
		return "", "", NewErr(ir.UnterminatedQuote, p, "expected quoted scalar")
	}
	switch payload[0] {
	case '"':
		v, n, err := scanDoubleQuoted(payload, p)
		if err != nil {
			return "", "", err
		}
		return v, payload[n:], nil
	case '\'':
		v, n, err := scanSingleQuoted(payload, p)
		if err != nil {
			return "", "", err
		}
		return v, payload[n:], nil
	default:
		return "", "", NewErr(ir.UnexpectedChar, p, "expected quoted scalar")
	}
}

// scanDoubleQuoted decodes a double-quoted scalar starting at index 0 of
// payload and returns the decoded value plus the number of bytes of
// payload consumed, including both quote characters.
func scanDoubleQuoted(payload string, p Pos) (string, int, error) {
	n := len(payload)
	var sb strings.Builder
	i := 1
	closed := false
	for i < n {
		c := payload[i]
		if c == '"' {
			closed = true
			i++
			break
		}
		if c == '\\' {
			if i+1 >= n {
				return "", 0, NewErr(ir.UnterminatedQuote, p, "unterminated escape in double-quoted scalar")
			}
			esc := payload[i+1]
			switch esc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case '/':
				sb.WriteByte('/')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				if i+5 >= n {
					return "", 0, NewErr(ir.BadEscape, p, "truncated \\u escape")
				}
				r, err := decodeUnicodeEscape(payload[i+2 : i+6])
				if err != nil {
					return "", 0, NewErr(ir.BadEscape, p, "%s", err.Error())
				}
				sb.WriteRune(r)
				i += 6
				continue
			default:
				return "", 0, NewErr(ir.BadEscape, p, "invalid escape \\%c", esc)
			}
			i += 2
			continue
		}
		sb.WriteByte(c)
		i++
	}
	if !closed {
		return "", 0, NewErr(ir.UnterminatedQuote, p, "unterminated double-quoted scalar")
	}
	return sb.String(), i, nil
}

// scanSingleQuoted decodes a single-quoted scalar starting at index 0
// of payload and returns the decoded value plus the number of bytes of
// payload consumed, including both quote characters.
func scanSingleQuoted(payload string, p Pos) (string, int, error) {
	n := len(payload)
	var sb strings.Builder
	i := 1
	closed := false
	for i < n {
		c := payload[i]
		if c == '\'' {
			if i+1 < n && payload[i+1] == '\'' {
				sb.WriteByte('\'')
				i += 2
				continue
			}
			closed = true
			i++
			break
		}
		sb.WriteByte(c)
		i++
	}
	if !closed {
		return "", 0, NewErr(ir.UnterminatedQuote, p, "unterminated single-quoted scalar")
	}
	return sb.String(), i, nil
}

func decodeUnicodeEscape(hex string) (rune, error) {
	var r rune
	for _, c := range hex {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, ir.NewError(ir.BadEscape, 0, 0, "invalid hex digit %q in \\u escape", c)
		}
	}
	return r, nil
}

// QuoteDouble renders s as a double-quoted scalar, escaping the
// characters the decoder above understands.
func QuoteDouble(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(`\u`)
				const hex = "0123456789abcdef"
				sb.WriteByte(hex[(r>>12)&0xf])
				sb.WriteByte(hex[(r>>8)&0xf])
				sb.WriteByte(hex[(r>>4)&0xf])
				sb.WriteByte(hex[r&0xf])
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// DecodeBlockLiteral joins de-indented pipe block literal body lines
// according to chomp. lines are the raw body lines (indentation still
// attached); blank lines are represented as "".
func DecodeBlockLiteral(lines []string, parentIndent int, chomp Chomp, firstLineNo int) (string, error) {
	common := -1
	for _, l := range lines {
		if strings.TrimRight(l, " ") == "" {
			continue
		}
		ind, _ := IndentOf(l)
		if common == -1 || ind < common {
			common = ind
		}
	}
	if common == -1 {
		return "", nil
	}
	if common < parentIndent+2 {
		return "", ir.NewError(ir.BlockLiteralIndent, firstLineNo, common+1,
			"block literal body indent %d is less than parent indent + 2 (%d)", common, parentIndent+2)
	}
	content := make([]string, len(lines))
	for i, l := range lines {
		if len(l) <= common {
			content[i] = ""
		} else {
			content[i] = l[common:]
		}
	}
	last := -1
	for i, l := range content {
		if l != "" {
			last = i
		}
	}
	switch chomp {
	case StripChomp:
		if last == -1 {
			return "", nil
		}
		return strings.Join(content[:last+1], "\n"), nil
	case KeepChomp:
		if len(content) == 0 {
			return "", nil
		}
		return strings.Join(content, "\n") + "\n", nil
	default:
		if last == -1 {
			return "", nil
		}
		return strings.Join(content[:last+1], "\n") + "\n", nil
	}
}
