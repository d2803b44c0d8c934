package selector

import (
	"go.uber.org/multierr"
)

// Common combinators. Combine accepts any string.
const (
	Descendant = " "
	Child      = ">"
	Adjacent   = "+"
	Sibling    = "~"
)

// Combined joins two selectors with a combinator. It is never modified after
// creation.
type Combined struct {
	first      Selector
	combinator string
	second     Selector
}

// Combine returns selector rendering as "first combinator second". Operands
// keep their own ordering rules, nothing is checked across them.
func Combine(first Selector, combinator string, second Selector) *Combined {
	return &Combined{first: first, combinator: combinator, second: second}
}

func (c *Combined) String() string {
	return c.first.String() + " " + c.combinator + " " + c.second.String()
}

// Err returns errors of both operands combined.
func (c *Combined) Err() error {
	return multierr.Append(c.first.Err(), c.second.Err())
}

// Operands returns both sides and the combinator.
func (c *Combined) Operands() (Selector, string, Selector) {
	return c.first, c.combinator, c.second
}

// Render returns selector text or the error recorded while it was built.
func Render(s Selector) (string, error) {
	if err := s.Err(); err != nil {
		return "", err
	}
	return s.String(), nil
}

// Must is like Render but panics on error. Intended for selectors known to be
// valid at compile time.
func Must(s Selector) string {
	str, err := Render(s)
	if err != nil {
		panic(err)
	}
	return str
}

// Element starts new selector with type selector.
func Element(value string) *Builder { return New().Element(value) }

// ID starts new selector with id.
func ID(value string) *Builder { return New().ID(value) }

// Class starts new selector with class.
func Class(value string) *Builder { return New().Class(value) }

// Attr starts new selector with attribute.
func Attr(value string) *Builder { return New().Attr(value) }

// PseudoClass starts new selector with pseudo-class.
func PseudoClass(value string) *Builder { return New().PseudoClass(value) }

// PseudoElement starts new selector with pseudo-element.
func PseudoElement(value string) *Builder { return New().PseudoElement(value) }
