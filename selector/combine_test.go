package selector_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"objkit/selector"
)

func TestCombine_Render(t *testing.T) {
	a := selector.Element("div").ID("main")
	b := selector.Class("item")

	for _, comb := range []string{selector.Descendant, selector.Child, selector.Adjacent, selector.Sibling, "||"} {
		got := selector.Combine(a, comb, b).String()
		want := a.String() + " " + comb + " " + b.String()
		if got != want {
			t.Errorf("Combine(%q) = %q, want %q", comb, got, want)
		}
	}
}

func TestCombine_Nested(t *testing.T) {
	a, b, c := selector.Element("ul"), selector.Element("li"), selector.Class("note")

	got := selector.Combine(selector.Combine(a, ">", b), "~", c).String()
	want := (a.String() + " > " + b.String()) + " ~ " + c.String()
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCombine_DeepTree(t *testing.T) {
	sel := selector.Combine(
		selector.Element("div").ID("main").Class("container").Class("draggable"),
		"+",
		selector.Combine(
			selector.Element("table").ID("data"),
			"~",
			selector.Combine(
				selector.Element("tr").PseudoClass("nth-of-type(even)"),
				" ",
				selector.Element("td").PseudoClass("nth-of-type(even)"),
			),
		),
	)

	want := "div#main.container.draggable + table#data ~ tr:nth-of-type(even)   td:nth-of-type(even)"
	got, err := selector.Render(sel)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCombine_Err(t *testing.T) {
	good := selector.Element("p")
	badOrder := selector.Class("x").Element("p")
	badDup := selector.ID("a").ID("b")

	if err := selector.Combine(good, ">", good).Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}

	err := selector.Combine(badOrder, "+", selector.Combine(good, "~", badDup)).Err()
	if !errors.Is(err, selector.ErrOrder) {
		t.Errorf("Err() = %v, want ErrOrder in chain", err)
	}
	if !errors.Is(err, selector.ErrDuplicate) {
		t.Errorf("Err() = %v, want ErrDuplicate in chain", err)
	}
	if _, rerr := selector.Render(selector.Combine(good, ">", badDup)); rerr == nil {
		t.Error("Render() expected error")
	}
}

func TestCombine_OperandsIndependent(t *testing.T) {
	// each operand has its own ordering, a pseudo-element on the left does
	// not restrict element on the right
	sel := selector.Combine(selector.PseudoClass("hover"), ">", selector.Element("span"))
	if err := sel.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got := sel.String(); got != ":hover > span" {
		t.Errorf("String() = %q", got)
	}
}

const testDocument = `<html><body>
<div id="main" class="container draggable">
  <ul class="menu"><li class="first">one</li><li class="second">two</li></ul>
  <a href="pic.png" class="thumb">pic</a>
</div>
<p class="note">after</p>
</body></html>`

// Rendered selectors must be accepted by a real selector engine and match
// the intended nodes.
func TestRender_MatchesDocument(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(testDocument))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}

	tests := []struct {
		name string
		sel  selector.Selector
		text string
	}{
		{
			name: "compound",
			sel:  selector.Element("div").ID("main").Class("container").Class("draggable"),
			text: "one",
		},
		{
			name: "attribute",
			sel:  selector.Element("a").Attr(`href$=".png"`),
			text: "pic",
		},
		{
			name: "child",
			sel:  selector.Combine(selector.Element("ul").Class("menu"), selector.Child, selector.Element("li").Class("second")),
			text: "two",
		},
		{
			name: "adjacent",
			sel:  selector.Combine(selector.Element("li").Class("first"), selector.Adjacent, selector.Element("li")),
			text: "two",
		},
		{
			name: "sibling of descendant",
			sel: selector.Combine(
				selector.Combine(selector.Element("body"), selector.Descendant, selector.ID("main")),
				selector.Sibling,
				selector.Element("p").Class("note"),
			),
			text: "after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			str := selector.Must(tt.sel)
			m, err := cascadia.Compile(str)
			if err != nil {
				t.Fatalf("cascadia.Compile(%q) error = %v", str, err)
			}
			node := m.MatchFirst(doc)
			if node == nil {
				t.Fatalf("selector %q matched nothing", str)
			}
			if got := firstText(node); got != tt.text {
				t.Errorf("selector %q matched %q, want %q", str, got, tt.text)
			}
		})
	}
}

func firstText(n *html.Node) string {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			return s
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if s := firstText(c); s != "" {
			return s
		}
	}
	return ""
}

func TestDump(t *testing.T) {
	sel := selector.Combine(
		selector.Element("a").Class("x"),
		">",
		selector.ID("y").ID("z"),
	)

	got := selector.Dump(sel)
	for _, want := range []string{
		"Combined: \">\"\n",
		"  Compound: \"a.x\"\n",
		"    element: \"a\"\n",
		"    class: \"x\"\n",
		"  Compound: \"#y\"\n",
		"    id: \"y\"\n",
		"    error: ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Dump() missing %q in:\n%s", want, got)
		}
	}
}
