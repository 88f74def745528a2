package textbuf

import (
	"fmt"
	"unicode/utf8"

	"rewind/src/undo"
)

// The action types below record reversible edits against a Buffer. Each
// constructor snapshots whatever the inverse needs from the buffer's current,
// pre-change state; the forward change itself is applied by Redo (usually via
// Manager.Do) or by the caller before registering the action.

// AppendAction appends text to the end of the buffer.
type AppendAction struct {
	undo.Base
	buf  *Buffer
	text string
}

func NewAppend(buf *Buffer, text string) *AppendAction {
	return &AppendAction{
		Base: undo.NewBase(fmt.Sprintf("Append %s", excerpt(text))),
		buf:  buf,
		text: text,
	}
}

func (a *AppendAction) Redo() error {
	a.buf.Append(a.text)
	return nil
}

func (a *AppendAction) Undo() error {
	return a.buf.Delete(a.buf.Len()-len(a.text), a.buf.Len())
}

// InsertAction inserts text at a fixed byte offset.
type InsertAction struct {
	undo.Base
	buf  *Buffer
	pos  int
	text string
}

func NewInsert(buf *Buffer, pos int, text string) *InsertAction {
	return &InsertAction{
		Base: undo.NewBase(fmt.Sprintf("Insert %s at %d", excerpt(text), pos)),
		buf:  buf,
		pos:  pos,
		text: text,
	}
}

func (a *InsertAction) Redo() error {
	return a.buf.Insert(a.pos, a.text)
}

func (a *InsertAction) Undo() error {
	return a.buf.Delete(a.pos, a.pos+len(a.text))
}

// DeleteAction removes the text in [start, end), remembering it so the
// deletion can be undone.
type DeleteAction struct {
	undo.Base
	buf     *Buffer
	start   int
	deleted string
}

func NewDelete(buf *Buffer, start, end int) (*DeleteAction, error) {
	deleted, err := buf.Slice(start, end)
	if err != nil {
		return nil, err
	}
	return &DeleteAction{
		Base:    undo.NewBase(fmt.Sprintf("Delete %s", excerpt(deleted))),
		buf:     buf,
		start:   start,
		deleted: deleted,
	}, nil
}

func (a *DeleteAction) Redo() error {
	return a.buf.Delete(a.start, a.start+len(a.deleted))
}

func (a *DeleteAction) Undo() error {
	return a.buf.Insert(a.start, a.deleted)
}

// ClearAction empties the buffer, remembering the full previous content.
type ClearAction struct {
	undo.Base
	buf   *Buffer
	saved string
}

func NewClear(buf *Buffer) *ClearAction {
	return &ClearAction{
		Base:  undo.NewBase("Clear buffer"),
		buf:   buf,
		saved: buf.String(),
	}
}

func (a *ClearAction) Redo() error {
	a.buf.Clear()
	return nil
}

func (a *ClearAction) Undo() error {
	a.buf.Set(a.saved)
	return nil
}

// ReplaceAction substitutes the text in [start, end) with new text.
type ReplaceAction struct {
	undo.Base
	buf   *Buffer
	start int
	old   string
	text  string
}

func NewReplace(buf *Buffer, start, end int, text string) (*ReplaceAction, error) {
	old, err := buf.Slice(start, end)
	if err != nil {
		return nil, err
	}
	return &ReplaceAction{
		Base:  undo.NewBase(fmt.Sprintf("Replace %s with %s", excerpt(old), excerpt(text))),
		buf:   buf,
		start: start,
		old:   old,
		text:  text,
	}, nil
}

func (a *ReplaceAction) Redo() error {
	_, err := a.buf.Replace(a.start, a.start+len(a.old), a.text)
	return err
}

func (a *ReplaceAction) Undo() error {
	_, err := a.buf.Replace(a.start, a.start+len(a.text), a.old)
	return err
}

// excerpt shortens long text for action descriptions.
func excerpt(text string) string {
	if utf8.RuneCountInString(text) <= 24 {
		return fmt.Sprintf("%q", text)
	}
	return fmt.Sprintf("%d characters", utf8.RuneCountInString(text))
}
