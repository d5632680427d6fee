// Package api provides the HTTP surface of uamd: routes, middleware and
// request handlers over the auth repository and JWT service.
package api

import (
	"github.com/bitswalk/uam/src/common/logs"
	"github.com/bitswalk/uam/src/common/version"
	"github.com/bitswalk/uam/src/uamd/api/base"
)

// Package-level logger, must be initialized via SetLogger
var log *logs.Logger

// SetLogger sets the logger for the api package
func SetLogger(l *logs.Logger) {
	log = l
}

// SetVersionInfo sets the version info for the api package and subpackages
func SetVersionInfo(v *version.Info) {
	base.SetVersionInfo(v)
}

// New creates a new API instance
func New(cfg Config) *API {
	return &API{
		Base:       base.NewHandler(),
		repo:       cfg.Repository,
		jwtService: cfg.JWTService,
	}
}
