package api

import (
	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boardsd/api/base"
	"github.com/bitswalk/boardlist/src/boardsd/api/boardslist"
	"github.com/bitswalk/boardlist/src/boardsd/api/common"
)

// ErrorResponse is an alias to common.ErrorResponse
type ErrorResponse = common.ErrorResponse

// API holds all handler instances and dependencies
type API struct {
	// Subpackage handlers
	Base       *base.Handler
	BoardsList *boardslist.Handler

	// Direct dependencies for middleware
	rateLimiter *RateLimiter
}

// Config contains API configuration options
type Config struct {
	// Options are the list options every boards list is built with
	Options boards.Options
	// RateLimit limits the boards list endpoints per client
	RateLimit RateLimitConfig
}
