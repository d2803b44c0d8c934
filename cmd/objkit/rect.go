package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/codec"
	"objkit/shape"
	"objkit/state"
)

// rectReport is what decode outputs.
type rectReport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Area   float64 `json:"area"`
}

func runRect(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected WIDTH and HEIGHT, got %d argument(s)", cmd.Args().Len())
	}
	var sides [2]float64
	for i := range sides {
		v, err := strconv.ParseFloat(cmd.Args().Get(i), 64)
		if err != nil {
			return fmt.Errorf("unable to parse side %q: %w", cmd.Args().Get(i), err)
		}
		sides[i] = v
	}

	format, opts, err := env.Output(cmd.String("to"))
	if err != nil {
		return err
	}

	r := shape.NewRectangle(sides[0], sides[1])
	text, err := codec.MarshalAs(r, format, opts...)
	if err != nil {
		return err
	}
	env.Log.Debug("Rectangle created", zap.Float64("width", r.Width), zap.Float64("height", r.Height), zap.Stringer("format", format))

	_, err = fmt.Fprintf(cmd.Root().Writer, "%s\narea: %s\n", text, strconv.FormatFloat(r.Area(), 'g', -1, 64))
	return err
}

func runDecode(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	format, _, err := env.Output(cmd.String("from"))
	if err != nil {
		return err
	}

	var (
		data  []byte
		fname = cmd.Args().Get(0)
	)
	if len(fname) == 0 || fname == "-" {
		fname = "STDIN"
		data, err = io.ReadAll(cmd.Root().Reader)
	} else {
		data, err = os.ReadFile(fname)
	}
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", fname, err)
	}

	r, err := codec.UnmarshalAs[shape.Rectangle](string(data), format)
	if err != nil {
		return fmt.Errorf("unable to decode '%s': %w", fname, err)
	}
	env.Log.Debug("Rectangle decoded", zap.String("source", fname), zap.Stringer("format", format))

	text, err := codec.Marshal(rectReport{Width: r.Width, Height: r.Height, Area: r.Area()})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, text)
	return err
}
