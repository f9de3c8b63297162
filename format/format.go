package format

import (
	"errors"
	"fmt"
)

// Format is an output encoding the CLI knows how to produce.
type Format int

const (
	NaayFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// ParseFormat accepts either a full name or its one-letter shorthand.
func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"n":    NaayFormat,
		"naay": NaayFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case NaayFormat:
		return []byte("naay"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsNaay() bool { return f == NaayFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case NaayFormat:
		return ".naay"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{NaayFormat, JSONFormat}
}
