// Package mutation applies user actions to loaded scopes. Route decides
// where an action goes; Router carries it out against the API or in memory.
package mutation

import (
	"github.com/kudosboard/kudos-board/internal/domain"
	"github.com/kudosboard/kudos-board/internal/scope"
)

// Action is a user action on a board, card or comment.
type Action int

const (
	CreateBoard Action = iota
	DeleteBoard
	LikeBoard
	CreateCard
	DeleteCard
	UpvoteCard
	LikeCard
	CreateComment
	DeleteComment
)

var actionNames = map[Action]string{
	CreateBoard:   "create board",
	DeleteBoard:   "delete board",
	LikeBoard:     "like board",
	CreateCard:    "create card",
	DeleteCard:    "delete card",
	UpvoteCard:    "upvote card",
	LikeCard:      "like card",
	CreateComment: "add comment",
	DeleteComment: "delete comment",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown action"
}

// IsCreate reports whether the action has no target entity yet.
func (a Action) IsCreate() bool {
	return a == CreateBoard || a == CreateCard || a == CreateComment
}

// Decision is where an action is sent.
type Decision int

const (
	Rejected Decision = iota
	Remote
	Local
)

func (d Decision) String() string {
	switch d {
	case Remote:
		return "remote"
	case Local:
		return "local"
	default:
		return "rejected"
	}
}

// Route decides how action is applied in a scope with status. origin is
// the target's origin, or for create actions the origin of the parent
// (board for a card, card for a comment); an empty origin counts as
// server-issued. Route performs no I/O.
func Route(status scope.Status, origin domain.Origin, action Action) Decision {
	if !status.Ready() {
		return Rejected
	}
	if origin == domain.OriginSynthetic && readOnlyDemo(action) {
		return Rejected
	}
	if status == scope.Degraded {
		return Local
	}
	if origin == "" || origin == domain.OriginServer {
		return Remote
	}
	return Local
}

// readOnlyDemo lists the actions disabled on generated entities.
func readOnlyDemo(action Action) bool {
	switch action {
	case UpvoteCard, DeleteCard, DeleteComment:
		return true
	}
	return false
}
