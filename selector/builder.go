// Package selector builds CSS selector strings from ordered fragments.
//
//	element#id.class[attr]:pseudoClass::pseudoElement
//	          \----/\----/\----------/
//	          may occur several times
//
// Compound selectors are produced by Builder, which enforces fragment order and
// uniqueness. Any two selectors can be joined with a combinator using Combine.
package selector

import (
	"fmt"
	"strings"
)

// Selector is anything that renders to CSS selector text.
type Selector interface {
	fmt.Stringer
	// Err returns the first error recorded while the selector was built.
	Err() error
}

// Builder accumulates fragments of a single compound selector. Methods
// return the receiver so calls can be chained. The first ordering or
// duplication violation is remembered and all following calls become no-ops.
// The error is available from Err and Render.
//
// Repeating element, id or pseudo-element is reported as duplicate even when
// it is also out of order.
//
// NOTE: Builder is not safe for concurrent use.
type Builder struct {
	element       string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasPseudoElement bool

	rank Rank
	err  error
}

// New returns empty builder.
func New() *Builder {
	return &Builder{}
}

// advance checks that fragment of rank r may follow what has been added so far.
func (b *Builder) advance(r Rank, value string) bool {
	if b.err != nil {
		return false
	}
	if r < b.rank {
		b.err = fmt.Errorf("%w: %s %q after %s", ErrOrder, r, value, b.rank)
		return false
	}
	b.rank = r
	return true
}

func (b *Builder) duplicate(r Rank, value string) *Builder {
	b.err = fmt.Errorf("%w: second %s %q", ErrDuplicate, r, value)
	return b
}

// Element sets type selector.
func (b *Builder) Element(value string) *Builder {
	if b.err == nil && b.hasElement {
		return b.duplicate(RankElement, value)
	}
	if !b.advance(RankElement, value) {
		return b
	}
	b.element, b.hasElement = value, true
	return b
}

// ID sets id selector, rendered as #value.
func (b *Builder) ID(value string) *Builder {
	if b.err == nil && b.hasID {
		return b.duplicate(RankID, value)
	}
	if !b.advance(RankID, value) {
		return b
	}
	b.id, b.hasID = value, true
	return b
}

// Class appends class selector, rendered as .value. Repeats are allowed.
func (b *Builder) Class(value string) *Builder {
	if b.advance(RankClass, value) {
		b.classes = append(b.classes, value)
	}
	return b
}

// Attr appends attribute selector, rendered as [value]. Value is taken
// verbatim, e.g. `href$=".png"`.
func (b *Builder) Attr(value string) *Builder {
	if b.advance(RankAttribute, value) {
		b.attrs = append(b.attrs, value)
	}
	return b
}

// PseudoClass appends pseudo-class, rendered as :value.
func (b *Builder) PseudoClass(value string) *Builder {
	if b.advance(RankPseudoClass, value) {
		b.pseudoClasses = append(b.pseudoClasses, value)
	}
	return b
}

// PseudoElement sets pseudo-element, rendered as ::value.
func (b *Builder) PseudoElement(value string) *Builder {
	if b.err == nil && b.hasPseudoElement {
		return b.duplicate(RankPseudoElement, value)
	}
	if !b.advance(RankPseudoElement, value) {
		return b
	}
	b.pseudoElement, b.hasPseudoElement = value, true
	return b
}

// Err returns first recorded error or nil.
func (b *Builder) Err() error {
	return b.err
}

// String renders accepted fragments in fixed category order without any
// separators. It does not look at recorded error.
func (b *Builder) String() string {
	var sb strings.Builder
	sb.WriteString(b.element)
	if b.hasID {
		sb.WriteByte('#')
		sb.WriteString(b.id)
	}
	for _, c := range b.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	for _, a := range b.attrs {
		sb.WriteByte('[')
		sb.WriteString(a)
		sb.WriteByte(']')
	}
	for _, p := range b.pseudoClasses {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	if b.hasPseudoElement {
		sb.WriteString("::")
		sb.WriteString(b.pseudoElement)
	}
	return sb.String()
}

// Parts returns copy of accepted fragments keyed by rank. Multi-valued
// categories keep insertion order.
func (b *Builder) Parts() map[Rank][]string {
	parts := make(map[Rank][]string)
	if b.hasElement {
		parts[RankElement] = []string{b.element}
	}
	if b.hasID {
		parts[RankID] = []string{b.id}
	}
	if len(b.classes) > 0 {
		parts[RankClass] = append([]string(nil), b.classes...)
	}
	if len(b.attrs) > 0 {
		parts[RankAttribute] = append([]string(nil), b.attrs...)
	}
	if len(b.pseudoClasses) > 0 {
		parts[RankPseudoClass] = append([]string(nil), b.pseudoClasses...)
	}
	if b.hasPseudoElement {
		parts[RankPseudoElement] = []string{b.pseudoElement}
	}
	return parts
}
