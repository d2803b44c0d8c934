package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"objkit/selector"
	"objkit/state"
)

func TestBuildSelector(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"single compound", []string{"id=main", "class=container", "class=editable"}, "#main.container.editable"},
		{"attribute with equals", []string{"el=a", `attr=href$=".png"`, "pc=focus"}, `a[href$=".png"]:focus`},
		{"long kinds", []string{"element=p", "pseudo-class=hover", "pseudo-element=after"}, "p:hover::after"},
		{"child", []string{"el=ul", ">", "el=li"}, "ul > li"},
		{"descendant", []string{"el=tr", "_", "el=td"}, "tr   td"},
		{"left to right", []string{"el=a", ">", "el=b", "~", "class=c"}, "a > b ~ .c"},
		{"kind is case insensitive", []string{"EL=div"}, "div"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := buildSelector(tt.parts)
			if err != nil {
				t.Fatalf("buildSelector() error = %v", err)
			}
			got, err := selector.Render(sel)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSelector_Errors(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
	}{
		{"empty", nil},
		{"leading combinator", []string{">", "el=a"}},
		{"trailing combinator", []string{"el=a", "+"}},
		{"double combinator", []string{"el=a", "+", "~", "el=b"}},
		{"no value", []string{"element"}},
		{"unknown kind", []string{"tag=a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildSelector(tt.parts); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := buildSelector(nil); !errors.Is(err, errNoParts) {
		t.Errorf("buildSelector(nil) error = %v, want errNoParts", err)
	}
}

func TestBuildSelector_ContractViolation(t *testing.T) {
	sel, err := buildSelector([]string{"id=x", "el=y"})
	if err != nil {
		t.Fatalf("buildSelector() error = %v", err)
	}
	if !errors.Is(sel.Err(), selector.ErrOrder) {
		t.Errorf("Err() = %v, want ErrOrder", sel.Err())
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("version: 1\nlogging:\n  console:\n    level: none\n"), 0644); err != nil {
		t.Fatalf("unable to write config: %v", err)
	}

	ctx := state.ContextWithEnv(context.Background())
	err := app.Run(ctx, append([]string{"objkit", "--config", cfg}, args...))
	return out.String(), err
}

func TestApp_Selector(t *testing.T) {
	out, err := run(t, "", "selector", "el=div", "id=main", ">", "el=a", `attr=href$=".png"`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := "div#main > a[href$=\".png\"]\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestApp_SelectorOrderError(t *testing.T) {
	_, err := run(t, "", "selector", "id=x", "el=y")
	if !errors.Is(err, selector.ErrOrder) {
		t.Errorf("Run() error = %v, want ErrOrder", err)
	}
}

func TestApp_SelectorTree(t *testing.T) {
	out, err := run(t, "", "selector", "--tree", "el=a", "+", "class=b")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasPrefix(out, "Combined: \"+\"\n") {
		t.Errorf("unexpected tree output:\n%s", out)
	}
}

func TestApp_SelectorRule(t *testing.T) {
	out, err := run(t, "", "selector", "--decl", "margin: 0; color: red", "el=p", "class=lead")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := "p.lead {\n  color: red;\n  margin: 0;\n}\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestApp_Rect(t *testing.T) {
	out, err := run(t, "", "rect", "10", "20")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := "{\"width\":10,\"height\":20}\narea: 200\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	out, err = run(t, "", "rect", "--to", "yaml", "1.5", "2")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "width: 1.5") || !strings.HasSuffix(out, "area: 3\n") {
		t.Errorf("unexpected yaml output:\n%s", out)
	}

	if _, err = run(t, "", "rect", "10"); err == nil {
		t.Error("expected error for missing height")
	}
	if _, err = run(t, "", "rect", "ten", "20"); err == nil {
		t.Error("expected error for bad width")
	}
}

func TestApp_Decode(t *testing.T) {
	out, err := run(t, `{"width":3,"height":4}`, "decode")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := "{\"width\":3,\"height\":4,\"area\":12}\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	src := filepath.Join(t.TempDir(), "rect.yaml")
	if err := os.WriteFile(src, []byte("width: 2\nheight: 5\n"), 0644); err != nil {
		t.Fatalf("unable to write source: %v", err)
	}
	out, err = run(t, "", "decode", "--from", "yaml", src)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if want := "{\"width\":2,\"height\":5,\"area\":10}\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	if _, err = run(t, "", "decode", "--from", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestApp_DumpConfig(t *testing.T) {
	out, err := run(t, "", "dumpconfig", "--default")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "version: 1") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
