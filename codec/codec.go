// Package codec converts values to and from structured text.
//
// Decoding never runs constructors: text is parsed into a generic value
// first and the requested type is then populated field by field using its
// struct tags.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/go-viper/mapstructure/v2"
	yaml "gopkg.in/yaml.v3"
)

type options struct {
	indent int
}

// Option changes how values are serialized.
type Option func(*options)

// WithIndent requests multi-line output indented by n spaces. Zero keeps
// output compact (for yaml the library default indentation is used).
func WithIndent(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.indent = n
		}
	}
}

// Marshal returns JSON representation of v. HTML sensitive characters are
// not escaped.
func Marshal(v any, opts ...Option) (string, error) {
	return MarshalAs(v, FormatJson, opts...)
}

// Unmarshal parses JSON text and returns it as value of type T.
func Unmarshal[T any](data string) (T, error) {
	return UnmarshalAs[T](data, FormatJson)
}

// UnmarshalLike is Unmarshal with the target type given by example value.
// Content of proto is not used.
func UnmarshalLike[T any](_ T, data string) (T, error) {
	return Unmarshal[T](data)
}

// MarshalAs serializes v using requested format.
func MarshalAs(v any, f Format, opts ...Option) (string, error) {
	o := &options{}
	for _, setOpt := range opts {
		setOpt(o)
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch f {
	case FormatJson:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if o.indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", o.indent))
		}
		err = enc.Encode(v)
	case FormatYaml:
		enc := yaml.NewEncoder(&buf)
		if o.indent > 0 {
			enc.SetIndent(o.indent)
		}
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case FormatIon:
		var w ion.Writer
		if o.indent > 0 {
			w = ion.NewTextWriterOpts(&buf, ion.TextWriterPretty)
		} else {
			w = ion.NewTextWriter(&buf)
		}
		if err = ion.MarshalTo(w, v); err == nil {
			err = w.Finish()
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return "", fmt.Errorf("unable to marshal as %s: %w", f, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// UnmarshalAs parses data in requested format and returns it as value of
// type T.
func UnmarshalAs[T any](data string, f Format) (T, error) {
	var (
		result  T
		generic any
		tag     string
		err     error
	)

	switch f {
	case FormatJson:
		tag = "json"
		generic, err = parseJSON(data)
	case FormatYaml:
		tag = "yaml"
		err = yaml.Unmarshal([]byte(data), &generic)
	case FormatIon:
		// Ion decimals and big integers do not map onto generic Go values
		// cleanly, so Ion is decoded straight into the target using its tags.
		if err = ion.Unmarshal([]byte(data), &result); err != nil {
			return result, fmt.Errorf("unable to parse %s: %w", f, err)
		}
		return result, nil
	default:
		return result, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return result, fmt.Errorf("unable to parse %s: %w", f, err)
	}

	if err := populate(generic, tag, &result); err != nil {
		return result, fmt.Errorf("unable to build %T from %s: %w", result, f, err)
	}
	return result, nil
}

// parseJSON keeps numbers as json.Number so integers of any size reach
// typed fields intact.
func parseJSON(data string) (any, error) {
	var generic any

	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return generic, nil
}

// plainNumbers replaces json.Number inside values stored into untyped
// destinations. Integers become int64, everything else float64.
func plainNumbers(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Interface {
		return data, nil
	}
	return denumber(data), nil
}

func denumber(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = denumber(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = denumber(e)
		}
		return out
	}
	return v
}

// populate copies generic parsed value into typed destination. Embedded
// structs are flattened the same way encoders flatten them.
func populate(src any, tag string, dst any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			plainNumbers,
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
		),
		TagName:    tag,
		Result:     dst,
		Squash:     true,
		ZeroFields: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(src)
}
