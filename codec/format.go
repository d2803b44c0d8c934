package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Format is structured text serialization format.
// Names are case insensitive when parsed.
type Format int

const (
	FormatJson Format = iota
	FormatYaml
	FormatIon
)

var ErrUnknownFormat = errors.New("unknown serialization format")

var formatNames = []string{
	FormatJson: "json",
	FormatYaml: "yaml",
	FormatIon:  "ion",
}

// FormatNames returns list of possible format names.
func FormatNames() []string {
	tmp := make([]string, len(formatNames))
	copy(tmp, formatNames)
	return tmp
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", f)
}

// IsValid reports whether f is one of the known formats.
func (f Format) IsValid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

// ParseFormat converts case insensitive name to Format.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return Format(-1), fmt.Errorf("%w: %q is not one of %s", ErrUnknownFormat, name, strings.Join(formatNames, ", "))
}

// MarshalText implements encoding.TextMarshaler so format can be used in
// configuration files directly.
func (f Format) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
