package undo

import (
	"fmt"

	"rewind/src/util"
)

// NothingDone is reported by the Manager's description getters when the
// history is empty or fully rewound.
const NothingDone = "empty or rewound"

// Subscriber is notified after every mutation of a Manager, with the acting
// Manager as argument. Subscribers are invoked synchronously, in registration
// order.
type Subscriber func(*Manager)

type subscription struct {
	key string
	fn  Subscriber
}

// Manager is an ordered, size-bounded sequence of actions with a cursor
// separating done from undone entries. It is the undo/redo engine: callers
// perform a state mutation and register a matching action in the same logical
// step; Undo and Redo then walk the cursor, invoking the actions' inverse and
// forward methods.
//
// A Manager satisfies the Action contract itself.
//
// A Manager is not safe for concurrent use; callers sharing one across
// goroutines must serialize access externally.
type Manager struct {
	actions []Action
	// index points at the most recently applied action, or -1 if the history
	// is empty or fully undone
	index int
	// limit is the maximum number of entries, 0 meaning unbounded
	limit int
	subs  []subscription
}

// NewManager creates a Manager with unbounded history.
func NewManager() *Manager {
	return &Manager{index: -1}
}

// NewBounded creates a Manager which keeps at most limit entries, evicting
// the oldest ones when the bound is exceeded. The limit must be positive.
func NewBounded(limit int) (*Manager, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLimit, limit)
	}
	return &Manager{index: -1, limit: limit}, nil
}

// Add registers an action as the most recent step. The caller must already
// have performed the forward mutation the action describes; Add never calls
// Redo. Any entries beyond the cursor (the redo branch) are discarded, then
// the oldest entries are evicted as needed to honor the limit.
func (m *Manager) Add(a Action) {
	m.actions = append(m.actions[:util.Min(m.index+1, len(m.actions))], a)
	if m.limit > 0 && len(m.actions) > m.limit {
		excess := len(m.actions) - m.limit
		m.actions = m.actions[excess:]
	}
	m.index = len(m.actions) - 1
	m.notify()
}

// Do applies an action by calling its Redo, then registers it with Add. It is
// a convenience for simple actions whose forward application is legal
// immediately after construction; composites built from already-applied
// members must be registered with Add instead.
func (m *Manager) Do(a Action) error {
	if err := a.Redo(); err != nil {
		return err
	}
	m.Add(a)
	return nil
}

// Undo reverts the action at the cursor and moves the cursor back.
func (m *Manager) Undo() error {
	if !m.CanUndo() {
		return ErrNothingToUndo
	}
	if err := m.actions[m.index].Undo(); err != nil {
		return err
	}
	m.index--
	m.notify()
	return nil
}

// Redo moves the cursor forward and re-applies the action there.
func (m *Manager) Redo() error {
	if !m.CanRedo() {
		return ErrNothingToRedo
	}
	if err := m.actions[m.index+1].Redo(); err != nil {
		return err
	}
	m.index++
	m.notify()
	return nil
}

func (m *Manager) CanUndo() bool {
	return m.index >= 0 && m.actions[m.index].CanUndo()
}

func (m *Manager) CanRedo() bool {
	return m.index < len(m.actions)-1 && m.actions[m.index+1].CanRedo()
}

// Clear discards all entries and resets the cursor.
func (m *Manager) Clear() {
	m.actions = nil
	m.index = -1
	m.notify()
}

// Description reports the most recently applied action, or NothingDone.
func (m *Manager) Description() string {
	if m.index < 0 {
		return NothingDone
	}
	return m.actions[m.index].Description()
}

// UndoDescription labels what Undo would revert, or NothingDone.
func (m *Manager) UndoDescription() string {
	if !m.CanUndo() {
		return NothingDone
	}
	return m.actions[m.index].UndoDescription()
}

// RedoDescription labels what Redo would re-apply, or NothingDone.
func (m *Manager) RedoDescription() string {
	if !m.CanRedo() {
		return NothingDone
	}
	return m.actions[m.index+1].RedoDescription()
}

// Len returns the number of entries currently held.
func (m *Manager) Len() int {
	return len(m.actions)
}

// Limit returns the capacity bound, 0 meaning unbounded.
func (m *Manager) Limit() int {
	return m.limit
}

// Entries returns a snapshot of the current entries, oldest first, for
// diagnostics. The returned slice is a copy; the actions themselves must not
// be undone or redone outside the Manager.
func (m *Manager) Entries() []Action {
	entries := make([]Action, len(m.actions))
	copy(entries, m.actions)
	return entries
}

// Subscribe registers a callback under the given key. Re-subscribing an
// existing key replaces its callback, keeping the original position in the
// notification order.
func (m *Manager) Subscribe(key string, fn Subscriber) {
	for i, sub := range m.subs {
		if sub.key == key {
			m.subs[i].fn = fn
			return
		}
	}
	m.subs = append(m.subs, subscription{key: key, fn: fn})
}

// Unsubscribe removes the callback registered under key, if any.
func (m *Manager) Unsubscribe(key string) {
	for i, sub := range m.subs {
		if sub.key == key {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			return
		}
	}
}

func (m *Manager) notify() {
	for _, sub := range m.subs {
		sub.fn(m)
	}
}
