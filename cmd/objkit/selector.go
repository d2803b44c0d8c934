package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/css"
	"objkit/selector"
	"objkit/state"
)

var errNoParts = errors.New("no selector parts specified")

// combinators maps command line tokens to combinators, "_" stands for
// descendant since bare space is hard to pass from shell.
var combinators = map[string]string{
	">": selector.Child,
	"+": selector.Adjacent,
	"~": selector.Sibling,
	"_": selector.Descendant,
}

var adders = map[string]func(*selector.Builder, string) *selector.Builder{
	"element":        (*selector.Builder).Element,
	"el":             (*selector.Builder).Element,
	"id":             (*selector.Builder).ID,
	"class":          (*selector.Builder).Class,
	"attr":           (*selector.Builder).Attr,
	"pseudo-class":   (*selector.Builder).PseudoClass,
	"pc":             (*selector.Builder).PseudoClass,
	"pseudo-element": (*selector.Builder).PseudoElement,
	"pe":             (*selector.Builder).PseudoElement,
}

// buildSelector assembles selector expression from command line parts.
// Combinators are applied left to right: "a > b + c" is ((a > b) + c).
func buildSelector(parts []string) (selector.Selector, error) {
	if len(parts) == 0 {
		return nil, errNoParts
	}

	var (
		result     selector.Selector
		current    *selector.Builder
		combinator string
	)

	flush := func() {
		if result == nil {
			result = current
		} else {
			result = selector.Combine(result, combinator, current)
		}
		current = nil
	}

	for i, part := range parts {
		if c, ok := combinators[part]; ok {
			if current == nil {
				return nil, fmt.Errorf("combinator %q at position %d does not follow selector", part, i+1)
			}
			flush()
			combinator = c
			continue
		}

		kind, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("malformed selector part %q at position %d, expected KIND=VALUE", part, i+1)
		}
		add, ok := adders[strings.ToLower(kind)]
		if !ok {
			return nil, fmt.Errorf("unknown selector part kind %q at position %d", kind, i+1)
		}
		if current == nil {
			current = selector.New()
		}
		add(current, value)
	}
	if current == nil {
		return nil, fmt.Errorf("selector cannot end with combinator %q", parts[len(parts)-1])
	}
	flush()
	return result, nil
}

func runSelector(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	out := cmd.Root().Writer

	sel, err := buildSelector(cmd.Args().Slice())
	if err != nil {
		return err
	}

	if cmd.Bool("tree") {
		_, err = fmt.Fprint(out, selector.Dump(sel))
		return err
	}

	text, err := selector.Render(sel)
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}
	env.Log.Debug("Selector built", zap.String("selector", text))

	if !cmd.IsSet("decl") {
		_, err = fmt.Fprintln(out, text)
		return err
	}

	var sheet css.Stylesheet
	if err := sheet.Add(sel, env.CSS.ParseDeclarations([]byte(cmd.String("decl")))); err != nil {
		return fmt.Errorf("unable to build rule: %w", err)
	}
	_, err = sheet.WriteTo(out)
	return err
}
