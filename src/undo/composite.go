package undo

import "fmt"

// EmptyComposite is reported by all description getters of a Composite with
// no members.
const EmptyComposite = "empty composite"

// Composite groups an ordered sequence of actions so that they undo and redo
// together as a single atomic unit. A Composite is itself an Action, so
// composites may nest.
//
// A non-empty Composite starts out in the applied state: its members describe
// changes which were already made by the caller before the composite was
// registered. Undo is only legal from the applied state, Redo only from the
// reverted state.
type Composite struct {
	actions []Action
	undone  bool
}

func NewComposite(actions ...Action) *Composite {
	return &Composite{actions: actions}
}

// Add appends an action to the group. Members must be added in the order
// their changes were applied; they may depend on each other's effects.
func (c *Composite) Add(a Action) {
	c.actions = append(c.actions, a)
}

func (c *Composite) Len() int {
	return len(c.actions)
}

func (c *Composite) CanUndo() bool {
	return len(c.actions) > 0 && !c.undone
}

func (c *Composite) CanRedo() bool {
	return len(c.actions) > 0 && c.undone
}

// Undo reverts all member actions in reverse insertion order.
func (c *Composite) Undo() error {
	if !c.CanUndo() {
		return ErrNothingToUndo
	}
	for i := len(c.actions) - 1; i >= 0; i-- {
		if err := c.actions[i].Undo(); err != nil {
			return fmt.Errorf("undo composite member %d: %w", i, err)
		}
	}
	c.undone = true
	return nil
}

// Redo re-applies all member actions in forward insertion order.
func (c *Composite) Redo() error {
	if !c.CanRedo() {
		return ErrNothingToRedo
	}
	for i, action := range c.actions {
		if err := action.Redo(); err != nil {
			return fmt.Errorf("redo composite member %d: %w", i, err)
		}
	}
	c.undone = false
	return nil
}

// Description delegates to the last added member.
func (c *Composite) Description() string {
	if len(c.actions) == 0 {
		return EmptyComposite
	}
	return c.actions[len(c.actions)-1].Description()
}

func (c *Composite) UndoDescription() string {
	if len(c.actions) == 0 {
		return EmptyComposite
	}
	return c.actions[len(c.actions)-1].UndoDescription()
}

func (c *Composite) RedoDescription() string {
	if len(c.actions) == 0 {
		return EmptyComposite
	}
	return c.actions[len(c.actions)-1].RedoDescription()
}
