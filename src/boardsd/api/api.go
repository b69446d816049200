// Package api wires the boardsd HTTP handlers to their routes.
package api

import (
	"github.com/bitswalk/boardlist/src/boardsd/api/base"
	"github.com/bitswalk/boardlist/src/boardsd/api/boardslist"
	"github.com/bitswalk/boardlist/src/common/logs"
	"github.com/bitswalk/boardlist/src/common/version"
)

// SetLogger sets the logger for the api package and subpackages
func SetLogger(l *logs.Logger) {
	boardslist.SetLogger(l)
}

// SetVersionInfo sets the version info for the api package and subpackages
func SetVersionInfo(v *version.Info) {
	base.SetVersionInfo(v)
}

// New creates a new API instance with all subpackage handlers
func New(cfg Config) *API {
	a := &API{
		Base: base.NewHandler(),

		BoardsList: boardslist.NewHandler(boardslist.Config{
			Options: cfg.Options,
		}),
	}
	if cfg.RateLimit.Enabled {
		a.rateLimiter = NewRateLimiter(cfg.RateLimit)
	}
	return a
}

// Close releases the background resources of the API
func (a *API) Close() {
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
}
