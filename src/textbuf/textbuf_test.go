package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rewind/src/undo"
)

const (
	lorem     = "Lorem ipsum"
	loremFull = "Lorem ipsum, consectetur adipiscing elit."
)

func TestAppendUndoRedo(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer("")
	history := undo.NewManager()

	assert.NoError(history.Do(NewAppend(buf, lorem)))
	assert.Equal(lorem, buf.String())

	assert.NoError(history.Undo())
	assert.Equal("", buf.String())

	assert.NoError(history.Redo())
	assert.Equal(lorem, buf.String())

	assert.NoError(history.Do(NewAppend(buf, ", consectetur adipiscing elit.")))
	assert.Equal(loremFull, buf.String())

	assert.NoError(history.Undo())
	assert.Equal(lorem, buf.String())
	assert.NoError(history.Undo())
	assert.Equal("", buf.String())

	assert.NoError(history.Redo())
	assert.Equal(lorem, buf.String())
	assert.NoError(history.Redo())
	assert.Equal(loremFull, buf.String())
}

func TestClearRestoresExactContent(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(loremFull)
	history := undo.NewManager()

	// Register the clear before the buffer is emptied, so the action can
	// snapshot the content it has to bring back
	action := NewClear(buf)
	buf.Clear()
	history.Add(action)
	assert.Equal("", buf.String())

	assert.NoError(history.Undo())
	assert.Equal(loremFull, buf.String())
}

func TestInsertAtOffset(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(loremFull)
	history := undo.NewManager()

	assert.NoError(history.Do(NewInsert(buf, 12, "FOO BAR")))
	assert.Equal("Lorem ipsum,FOO BAR consectetur adipiscing elit.", buf.String())

	assert.NoError(history.Undo())
	assert.Equal(loremFull, buf.String())

	assert.NoError(history.Redo())
	assert.Equal("Lorem ipsum,FOO BAR consectetur adipiscing elit.", buf.String())
}

func TestInsertUndoRemovesOnlyInsertedText(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(loremFull)
	action := NewInsert(buf, 12, "FOO BAR")
	assert.NoError(action.Redo())

	// A later edit at another position does not disturb the inverse
	buf.Append(" The end.")

	assert.NoError(action.Undo())
	assert.Equal(loremFull+" The end.", buf.String())
}

func TestDeleteUndoRedo(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer("hello world")
	history := undo.NewManager()

	action, err := NewDelete(buf, 5, 11)
	assert.NoError(err)
	assert.NoError(history.Do(action))
	assert.Equal("hello", buf.String())

	assert.NoError(history.Undo())
	assert.Equal("hello world", buf.String())
	assert.NoError(history.Redo())
	assert.Equal("hello", buf.String())
}

func TestReplaceUndoRedo(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer("hello world")
	history := undo.NewManager()

	action, err := NewReplace(buf, 0, 5, "goodbye")
	assert.NoError(err)
	assert.NoError(history.Do(action))
	assert.Equal("goodbye world", buf.String())

	assert.NoError(history.Undo())
	assert.Equal("hello world", buf.String())
	assert.NoError(history.Redo())
	assert.Equal("goodbye world", buf.String())
}

func TestCompositeClearThenAppend(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer(lorem)
	history := undo.NewManager()

	// Replace-all recorded as one atomic unit: the clear must be undone
	// after the append is undone
	group := undo.NewComposite()
	clear := NewClear(buf)
	assert.NoError(clear.Redo())
	group.Add(clear)
	appendAction := NewAppend(buf, "Dolor sit amet")
	assert.NoError(appendAction.Redo())
	group.Add(appendAction)
	history.Add(group)

	assert.Equal("Dolor sit amet", buf.String())

	assert.NoError(history.Undo())
	assert.Equal(lorem, buf.String())

	assert.NoError(history.Redo())
	assert.Equal("Dolor sit amet", buf.String())
}

func TestBufferRangeChecks(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer("short")
	assert.Error(buf.Insert(-1, "x"))
	assert.Error(buf.Insert(6, "x"))
	assert.Error(buf.Delete(3, 2))
	assert.Error(buf.Delete(0, 6))

	_, err := buf.Slice(0, 99)
	assert.Error(err)

	_, err = NewDelete(buf, 2, 42)
	assert.Error(err)
}

func TestActionDescriptions(t *testing.T) {
	assert := assert.New(t)

	buf := NewBuffer("")
	appendAction := NewAppend(buf, "hi")
	assert.Equal(`Append "hi"`, appendAction.Description())
	assert.Equal(`Undo Append "hi"`, appendAction.UndoDescription())
	assert.Equal(`Redo Append "hi"`, appendAction.RedoDescription())

	long := NewAppend(buf, "a very long string that exceeds the excerpt limit")
	assert.Equal("Append 49 characters", long.Description())

	insert := NewInsert(buf, 3, "x")
	assert.Equal(`Insert "x" at 3`, insert.Description())
}
