package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptMode int

const (
	promptNone promptMode = iota
	promptAppend
	promptInsert
	promptReplace
)

// Prompt is the single-line text input at the bottom of the screen, used to
// collect the text for append, insert and replace edits.
type Prompt struct {
	input textinput.Model
	mode  promptMode
}

func NewPrompt() Prompt {
	input := textinput.New()
	input.Prompt = "> "
	return Prompt{
		input: input,
		mode:  promptNone,
	}
}

func (p Prompt) Active() bool {
	return p.mode != promptNone
}

func (p *Prompt) Begin(mode promptMode, placeholder string) {
	p.mode = mode
	p.input.Placeholder = placeholder
	p.input.SetValue("")
	p.input.Focus()
}

func (p *Prompt) End() {
	p.mode = promptNone
	p.input.Blur()
	p.input.SetValue("")
}

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	return p.input.View()
}
