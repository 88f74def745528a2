package textbuf

import (
	"fmt"
)

// Buffer is a simple in-memory text buffer. It knows nothing about undo;
// reversible edits over it are recorded with the action types in this
// package.
type Buffer struct {
	content string
}

func NewBuffer(content string) *Buffer {
	return &Buffer{content: content}
}

func (b *Buffer) String() string {
	return b.content
}

func (b *Buffer) Len() int {
	return len(b.content)
}

// Slice returns the text in [start, end).
func (b *Buffer) Slice(start, end int) (string, error) {
	if err := b.checkRange(start, end); err != nil {
		return "", err
	}
	return b.content[start:end], nil
}

func (b *Buffer) Append(text string) {
	b.content += text
}

func (b *Buffer) Insert(pos int, text string) error {
	if err := b.checkRange(pos, pos); err != nil {
		return err
	}
	b.content = b.content[:pos] + text + b.content[pos:]
	return nil
}

func (b *Buffer) Delete(start, end int) error {
	if err := b.checkRange(start, end); err != nil {
		return err
	}
	b.content = b.content[:start] + b.content[end:]
	return nil
}

// Replace substitutes the text in [start, end) and returns what was there.
func (b *Buffer) Replace(start, end int, text string) (string, error) {
	old, err := b.Slice(start, end)
	if err != nil {
		return "", err
	}
	b.content = b.content[:start] + text + b.content[end:]
	return old, nil
}

func (b *Buffer) Clear() {
	b.content = ""
}

func (b *Buffer) Set(content string) {
	b.content = content
}

func (b *Buffer) checkRange(start, end int) error {
	if start < 0 || end < start || end > len(b.content) {
		return fmt.Errorf("range [%d, %d) out of bounds for buffer of length %d", start, end, len(b.content))
	}
	return nil
}
