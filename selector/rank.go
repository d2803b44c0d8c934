package selector

import "errors"

// Rank is fixed position of a fragment category inside compound selector.
type Rank int

const (
	RankNone          Rank = iota // nothing added yet
	RankElement                   // type selector
	RankID                        // #id
	RankClass                     // .class
	RankAttribute                 // [attr]
	RankPseudoClass               // :pseudo-class
	RankPseudoElement             // ::pseudo-element
)

var rankNames = [...]string{
	RankNone:          "none",
	RankElement:       "element",
	RankID:            "id",
	RankClass:         "class",
	RankAttribute:     "attribute",
	RankPseudoClass:   "pseudo-class",
	RankPseudoElement: "pseudo-element",
}

func (r Rank) String() string {
	if r < 0 || int(r) >= len(rankNames) {
		return "unknown"
	}
	return rankNames[r]
}

// Error texts are compared literally by existing fixtures, keep them verbatim.
var (
	ErrOrder     = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element") //nolint:staticcheck
	ErrDuplicate = errors.New("Element, id and pseudo-element should not occur more then one time inside the selector")                                  //nolint:staticcheck
)
