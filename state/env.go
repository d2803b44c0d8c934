// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"objkit/codec"
	"objkit/config"
	"objkit/css"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg     *config.Config
	Log     *zap.Logger
	LogFile string

	// declaration parser shared by subcommands, uses Log
	CSS *css.Parser

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// SetLogger replaces program logger and everything which depends on it.
func (e *LocalEnv) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	e.Log = log
	e.CSS = css.NewParser(log)
}

// Output returns serialization format and options requested by
// configuration, name overrides configured format when not empty.
func (e *LocalEnv) Output(name string) (codec.Format, []codec.Option, error) {
	format := codec.FormatJson
	var opts []codec.Option
	if e.Cfg != nil {
		format = e.Cfg.Output.Format
		opts = append(opts, codec.WithIndent(e.Cfg.Output.Indent))
	}
	if len(name) > 0 {
		f, err := codec.ParseFormat(name)
		if err != nil {
			return format, nil, err
		}
		format = f
	}
	return format, opts, nil
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
