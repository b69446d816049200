package boardslist

import (
	"github.com/bitswalk/boardlist/src/boards"
)

// Handler builds boards lists from posted inputs
type Handler struct {
	builder *boards.Builder
}

// Config contains configuration options for the Handler
type Config struct {
	// Options are the list options every request is built with
	Options boards.Options
}

// PortsQuery is the query of the ports endpoint
type PortsQuery struct {
	Protocol string `form:"protocol"`
	Grouped  bool   `form:"grouped"`
}
