package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"objkit/selector"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	// handles "0"
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Rule is a rendered selector with its declarations.
type Rule struct {
	Selector   string
	Properties map[string]Value
}

// NewRule renders sel and attaches properties to it. Selector build errors
// are returned as is.
func NewRule(sel selector.Selector, props map[string]Value) (Rule, error) {
	text, err := selector.Render(sel)
	if err != nil {
		return Rule{}, err
	}
	if props == nil {
		props = make(map[string]Value)
	}
	return Rule{Selector: text, Properties: props}, nil
}

// GetProperty returns the value for a property, or empty Value if not found.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules []Rule
}

// Add appends rule built from sel and props.
func (s *Stylesheet) Add(sel selector.Selector, props map[string]Value) error {
	rule, err := NewRule(sel, props)
	if err != nil {
		return err
	}
	s.Rules = append(s.Rules, rule)
	return nil
}

// RulesBySelector returns all rules with given selector text.
func (s *Stylesheet) RulesBySelector(sel string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == sel {
			matches = append(matches, r)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in insertion order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}

		// blank line between rules
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}

	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, rule.Properties[name].Raw)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
