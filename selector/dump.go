package selector

import (
	"objkit/utils/debug"
)

// Dump returns indented tree representation of selector expression.
func Dump(s Selector) string {
	tw := debug.NewTreeWriter()
	dumpNode(tw, 0, s)
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, s Selector) {
	switch n := s.(type) {
	case *Combined:
		first, combinator, second := n.Operands()
		tw.Field(depth, "Combined", combinator)
		dumpNode(tw, depth+1, first)
		dumpNode(tw, depth+1, second)
	case *Builder:
		tw.Field(depth, "Compound", n.String())
		parts := n.Parts()
		for r := RankElement; r <= RankPseudoElement; r++ {
			for _, v := range parts[r] {
				tw.Field(depth+1, r.String(), v)
			}
		}
		if err := n.Err(); err != nil {
			tw.Field(depth+1, "error", err.Error())
		}
	default:
		tw.Field(depth, "Selector", s.String())
	}
}
