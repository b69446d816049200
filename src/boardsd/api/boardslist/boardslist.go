// Package boardslist serves the boards list endpoints.
package boardslist

import (
	"net/http"
	"strings"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boards/snapshot"
	"github.com/bitswalk/boardlist/src/boardsd/api/common"
	"github.com/bitswalk/boardlist/src/common/errors"
	"github.com/bitswalk/boardlist/src/common/logs"
	"github.com/gin-gonic/gin"
)

var log = logs.Discard()

// SetLogger sets the logger for the boardslist package
func SetLogger(l *logs.Logger) {
	if l != nil {
		log = l
	}
}

// NewHandler creates a new boards list handler
func NewHandler(cfg Config) *Handler {
	return &Handler{
		builder: boards.NewBuilder(cfg.Options),
	}
}

// HandleBoardsList builds the list of the posted input
//
// The body is {detectedPorts, boardsConfig, history} as JSON, or as YAML
// with a YAML content type. The response is the plain-data list.
func (h *Handler) HandleBoardsList(c *gin.Context) {
	list, ok := h.build(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, list.View())
}

// HandlePorts returns the detected ports of the posted input in list order,
// filtered by ?protocol= or partitioned by protocol with ?grouped=true
func (h *Handler) HandlePorts(c *gin.Context) {
	var query PortsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		common.BadRequest(c, "grouped", "grouped must be a boolean")
		return
	}
	if query.Grouped && query.Protocol != "" {
		common.Error(c, errors.ErrValidationFailed.WithField("protocol").
			WithMessage("protocol and grouped cannot be combined"))
		return
	}

	list, ok := h.build(c)
	if !ok {
		return
	}

	if query.Grouped {
		c.JSON(http.StatusOK, list.PortsGroupedByProtocol())
		return
	}
	var predicate func(boards.DetectedPort) bool
	if query.Protocol != "" {
		predicate = boards.ProtocolPredicate(query.Protocol)
	}
	c.JSON(http.StatusOK, list.Ports(predicate))
}

// build decodes and validates the request body and builds its list. It
// answers the request itself on failure.
func (h *Handler) build(c *gin.Context) (*boards.List, bool) {
	in, err := bindInput(c)
	if err != nil {
		common.Error(c, err)
		return nil, false
	}

	list, err := in.Build(h.builder)
	if err != nil {
		log.Debug("Rejected boards list input", "error", err)
		common.Error(c, err)
		return nil, false
	}

	log.Debug("Built boards list",
		"input", in.String(),
		"items", len(list.Items),
		"selected_index", list.SelectedIndex,
	)
	return list, true
}

func bindInput(c *gin.Context) (snapshot.Input, error) {
	if isYAML(c.ContentType()) {
		return snapshot.DecodeInput(c.Request.Body)
	}

	var in snapshot.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		return snapshot.Input{}, errors.ErrInvalidJSON.WithCause(err)
	}
	return in, nil
}

func isYAML(contentType string) bool {
	return strings.HasSuffix(contentType, "/yaml") || strings.HasSuffix(contentType, "/x-yaml")
}
