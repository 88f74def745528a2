package undo

import (
	"errors"
	"fmt"
)

// ErrIllegalState is the base error for undoing or redoing an action which is
// not in the right state for it. Use errors.Is to match.
var ErrIllegalState = errors.New("illegal state")

var (
	ErrNothingToUndo = fmt.Errorf("%w: nothing to undo", ErrIllegalState)
	ErrNothingToRedo = fmt.Errorf("%w: nothing to redo", ErrIllegalState)
)

// ErrInvalidLimit is returned when constructing a bounded Manager with a
// non-positive limit.
var ErrInvalidLimit = errors.New("history limit must be positive")

// Action is a reversible unit of work. Undo and Redo mutate external state
// which the action references; they must be exact inverses of each other.
// Implementations capture whatever snapshot data they need at construction
// time in order to compute their inverse later.
type Action interface {
	// Undo reverts the action's effect, leaving external state as if the
	// action never happened.
	Undo() error

	// Redo (re)applies the action's effect.
	Redo() error

	CanUndo() bool
	CanRedo() bool

	// Description is a human-readable summary of the action for UIs and logs.
	Description() string
	UndoDescription() string
	RedoDescription() string
}

// Base provides the default Action behavior: always available, with undo and
// redo descriptions derived from a fixed description. Embed it and implement
// Undo and Redo to get a complete Action.
type Base struct {
	Desc string
}

func NewBase(description string) Base {
	return Base{Desc: description}
}

func (b Base) CanUndo() bool { return true }

func (b Base) CanRedo() bool { return true }

func (b Base) Description() string { return b.Desc }

func (b Base) UndoDescription() string { return "Undo " + b.Desc }

func (b Base) RedoDescription() string { return "Redo " + b.Desc }
