package state

import (
	"time"
)

// newLocalEnv creates a new LocalEnv instance with default values, logger
// discards everything until configuration is loaded.
func newLocalEnv() *LocalEnv {
	env := &LocalEnv{start: time.Now()}
	env.SetLogger(nil)
	return env
}
