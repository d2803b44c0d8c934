package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"objkit/codec"
	"objkit/config"
	"objkit/misc"
	"objkit/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	var err error
	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.Cfg.Logging.ConsoleLogger.Level = "debug"
	}
	log, logFile, err := env.Cfg.Logging.Prepare()
	if err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.SetLogger(log)
	env.LogFile = logFile
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(logFile) > 0 {
		env.Log.Debug("Logging to file", zap.String("location", logFile))
	}
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))

	// close logging, errors must be reported directly to stderr from now on
	env.RestoreStdLog()
	return nil
}

// Ignore urfave/cli default error handling - regular errors are returned
// from subcommands.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Cfg != nil && env.Cfg.Logging.ConsoleLogger.Level != "none" {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

func newApp() *cli.Command {
	formats := strings.Join(codec.FormatNames(), ", ")

	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "small object helpers: css selector builder, rectangle, structured text codec",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug messages to console"},
		},
		Commands: []*cli.Command{
			{
				Name:         "selector",
				Usage:        "Builds CSS selector from parts",
				OnUsageError: usageErrorHandler,
				Action:       runSelector,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "tree", Usage: "output selector expression tree instead of text"},
					&cli.StringFlag{Name: "decl", Usage: "wrap selector into CSS rule with `DECLARATIONS` (\"color: red; margin: 0\")"},
				},
				ArgsUsage: "PART...",
				CustomHelpTemplate: fmt.Sprintf(`%s
PART:
    either selector fragment KIND=VALUE or combinator
        KIND: element (el), id, class, attr, pseudo-class (pc), pseudo-element (pe)
        combinator: ">", "+", "~" or "_" for descendant

    Fragments of every compound selector must be given in order: element, id,
    class, attribute, pseudo-class, pseudo-element. Element, id and
    pseudo-element may occur only once.

EXAMPLE:
    selector el=div id=main class=container ">" el=a 'attr=href$=".png"' pc=focus
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "rect",
				Usage:        "Creates rectangle and outputs it with its area",
				OnUsageError: usageErrorHandler,
				Action:       runRect,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "output `FORMAT` (" + formats + "), overrides configuration"},
				},
				ArgsUsage: "WIDTH HEIGHT",
			},
			{
				Name:         "decode",
				Usage:        "Reads rectangle document and outputs it as JSON with its area",
				OnUsageError: usageErrorHandler,
				Action:       runDecode,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "input `FORMAT` (" + formats + "), overrides configuration"},
				},
				ArgsUsage: "[SOURCE]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    file to read, if absent or "-" - STDIN
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {

	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := cmd.Root().Writer
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Debug("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
