// Package scope holds the client-side state for each loaded view: the board
// list, one board with its cards, and one card's comments. A scope is Live
// when its data came from the API and Degraded when the API failed and the
// data was generated locally. The mode only changes on the next Load.
package scope

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/gateway"
	"github.com/kudosboard/kudos-board/internal/placeholder"
)

// Status is the lifecycle state of a scope.
type Status int

const (
	Uninitialized Status = iota
	Loading
	Live
	Degraded
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Live:
		return "live"
	case Degraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Ready reports whether mutations may be routed against the scope.
func (s Status) Ready() bool {
	return s == Live || s == Degraded
}

// Notices shown by the comments scope when it degrades.
const (
	NoticeDemoCard          = "This is a demo card, comments are simulated."
	NoticeServerUnreachable = "Server unreachable, using simulated comments."
)

// Controller creates scopes and remembers how each of them last loaded.
// It is not safe for concurrent use.
type Controller struct {
	api gateway.API
	gen *placeholder.Generator
	log zerolog.Logger

	modes map[string]Status
}

// NewController wires a controller to the API and the placeholder generator.
func NewController(api gateway.API, gen *placeholder.Generator, log zerolog.Logger) *Controller {
	if gen == nil {
		gen = placeholder.New()
	}
	return &Controller{
		api:   api,
		gen:   gen,
		log:   log.With().Str("component", "scope").Logger(),
		modes: make(map[string]Status),
	}
}

// API returns the gateway scopes load from.
func (c *Controller) API() gateway.API {
	return c.api
}

// Generator returns the placeholder generator shared by all scopes.
func (c *Controller) Generator() *placeholder.Generator {
	return c.gen
}

// Degraded reports whether any scope's latest load ended degraded.
func (c *Controller) Degraded() bool {
	for _, s := range c.modes {
		if s == Degraded {
			return true
		}
	}
	return false
}

func (c *Controller) record(key string, s Status) {
	c.modes[key] = s
}

// BoardList creates the board list scope.
func (c *Controller) BoardList() *BoardList {
	return &BoardList{ctrl: c}
}

// BoardDetail creates the scope for target and its cards. Only ID and
// Origin of target are required; an empty origin is taken as server-issued.
func (c *Controller) BoardDetail(target domain.Board) *BoardDetail {
	if target.Origin == "" {
		target.Origin = domain.OriginServer
	}
	return &BoardDetail{ctrl: c, target: target}
}

// CardComments creates the comments scope for target. Only ID and Origin
// of target are required; an empty origin is taken as server-issued.
func (c *Controller) CardComments(target domain.Card) *CardComments {
	if target.Origin == "" {
		target.Origin = domain.OriginServer
	}
	return &CardComments{ctrl: c, target: target}
}

// canceled reports whether the caller went away while a load was pending.
func canceled(ctx context.Context) bool {
	return ctx.Err() != nil
}
