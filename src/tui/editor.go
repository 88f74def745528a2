package tui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rewind/src/textbuf"
	"rewind/src/undo"
	"rewind/src/util"
)

const (
	HISTORY_LIMIT   = 1000
	DEFAULT_MESSAGE = "Ready."
)

var (
	boxStyle = lipgloss.NewStyle().
			Width(60).
			Padding(1, 2, 1).
			BorderStyle(lipgloss.NormalBorder())
	statusStyle = lipgloss.NewStyle().Reverse(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// statusLine is shared by pointer between the Editor model and the history
// subscriber, so that notifications survive bubbletea's model copying
type statusLine struct {
	message string
}

// Editor is a minimal text editor driving an undo history. Every edit is
// registered with the history manager; undo and redo walk it back and forth.
type Editor struct {
	buffer  *textbuf.Buffer
	history *undo.Manager
	status  *statusLine
	prompt  Prompt
	cursor  int

	clipboardOK bool

	windowWidth  int
	windowHeight int
}

func NewEditor(initial string) Editor {
	buffer := textbuf.NewBuffer(initial)
	history, err := undo.NewBounded(HISTORY_LIMIT)
	if err != nil {
		panic(err)
	}
	status := &statusLine{message: DEFAULT_MESSAGE}
	history.Subscribe("statusline", func(h *undo.Manager) {
		status.message = fmt.Sprintf("%s (%d in history)", h.Description(), h.Len())
	})
	return Editor{
		buffer:      buffer,
		history:     history,
		status:      status,
		prompt:      NewPrompt(),
		cursor:      len(initial),
		clipboardOK: initClipboard() == nil,
	}
}

func (e Editor) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.windowWidth = msg.Width
		e.windowHeight = msg.Height
		return e, nil
	case tea.KeyMsg:
		if e.prompt.Active() {
			return e.updatePrompt(msg)
		}
		return e.handleKey(msg)
	}
	return e, nil
}

func (e Editor) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		e.prompt.End()
		return e, nil
	case "enter":
		e.submitPrompt()
		return e, nil
	}
	var cmd tea.Cmd
	e.prompt, cmd = e.prompt.Update(msg)
	return e, cmd
}

func (e Editor) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return e, tea.Quit
	case "u":
		if err := e.history.Undo(); err != nil {
			e.status.message = err.Error()
		}
		e.clampCursor()
	case "r", "ctrl+r":
		if err := e.history.Redo(); err != nil {
			e.status.message = err.Error()
		}
		e.clampCursor()
	case "a":
		e.prompt.Begin(promptAppend, "Text to append")
	case "i":
		e.prompt.Begin(promptInsert, fmt.Sprintf("Text to insert at %d", e.cursor))
	case "R":
		e.prompt.Begin(promptReplace, "Replace entire buffer with")
	case "x":
		if e.cursor > 0 {
			action, err := textbuf.NewDelete(e.buffer, e.cursor-1, e.cursor)
			if err != nil {
				log.Printf("ERROR: %s", err)
				return e, nil
			}
			e.apply(action)
			e.cursor--
		}
	case "D":
		e.apply(textbuf.NewClear(e.buffer))
		e.cursor = 0
	case "y":
		if !e.clipboardOK {
			e.status.message = "Clipboard not available"
			return e, nil
		}
		writeClipboard(e.buffer.String())
		e.status.message = "Copied buffer to clipboard."
	case "p":
		if !e.clipboardOK {
			e.status.message = "Clipboard not available"
			return e, nil
		}
		if text := readClipboard(); len(text) > 0 {
			e.apply(textbuf.NewInsert(e.buffer, e.cursor, text))
			e.cursor += len(text)
		}
	case "left", "h":
		e.cursor = util.Max(0, e.cursor-1)
	case "right", "l":
		e.cursor = util.Min(e.buffer.Len(), e.cursor+1)
	}
	return e, nil
}

func (e *Editor) submitPrompt() {
	text := e.prompt.input.Value()
	mode := e.prompt.mode
	e.prompt.End()
	if len(text) == 0 {
		return
	}
	switch mode {
	case promptAppend:
		e.apply(textbuf.NewAppend(e.buffer, text))
		e.cursor = e.buffer.Len()
	case promptInsert:
		e.apply(textbuf.NewInsert(e.buffer, e.cursor, text))
		e.cursor += len(text)
	case promptReplace:
		e.replaceAll(text)
	}
}

// apply performs the action and registers it as the most recent step
func (e *Editor) apply(action undo.Action) {
	if err := e.history.Do(action); err != nil {
		e.status.message = err.Error()
	}
}

// replaceAll records a clear followed by an append as one atomic undo unit
func (e *Editor) replaceAll(text string) {
	group := undo.NewComposite()

	clear := textbuf.NewClear(e.buffer)
	if err := clear.Redo(); err != nil {
		e.status.message = err.Error()
		return
	}
	group.Add(clear)

	appendAction := textbuf.NewAppend(e.buffer, text)
	if err := appendAction.Redo(); err != nil {
		e.status.message = err.Error()
		return
	}
	group.Add(appendAction)

	e.history.Add(group)
	e.cursor = e.buffer.Len()
}

// Undoing or redoing may shrink the buffer below the cursor position
func (e *Editor) clampCursor() {
	e.cursor = util.Clamp(e.cursor, 0, e.buffer.Len())
}

func (e Editor) View() string {
	content := e.buffer.String()
	cursor := util.Clamp(e.cursor, 0, len(content))
	text := content[:cursor] + "|" + content[cursor:]

	box := boxStyle
	if e.windowWidth > 0 {
		box = box.Copy().Width(util.Min(e.windowWidth-2, 100))
	}

	status := statusStyle.Render(fmt.Sprintf(" %s ", e.status.message))
	hints := hintStyle.Render(fmt.Sprintf(
		"[u] %s  [r] %s",
		e.history.UndoDescription(),
		e.history.RedoDescription(),
	))

	var bottom string
	if e.prompt.Active() {
		bottom = e.prompt.View()
	} else {
		bottom = hintStyle.Render("a append  i insert  R replace all  x delete  D clear  y yank  p paste  q quit")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		box.Render(text),
		status,
		hints,
		bottom,
	)
}
