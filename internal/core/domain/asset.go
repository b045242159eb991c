package domain

import (
	"bytes"
	"errors"
)

// Template fragments for the generated source. The output must match these
// byte for byte; the downstream compiler expects a symbol named ui_text.
const (
	Preamble = `const char *ui_text = R"(`
	Closing  = `)";`

	// Delimiter terminates a raw string literal in the consuming compiler.
	Delimiter = `)"`
)

var (
	// ErrInput marks failures reading the asset (missing, unreadable, a directory)
	ErrInput = errors.New("input error")

	// ErrOutput marks failures writing the generated source
	ErrOutput = errors.New("output error")
)

// Payload is the asset content held in memory for a single generation
type Payload struct {
	Source  string // Path the content was read from
	Content []byte // Opaque; never inspected or rewritten
}

// NewPayload wraps raw asset bytes read from source
func NewPayload(source string, content []byte) *Payload {
	return &Payload{
		Source:  source,
		Content: content,
	}
}

// Render returns the generated source fragment.
// Output is Preamble, newline, content, newline, Closing, newline, with the
// two newlines around the content always present.
func (p *Payload) Render() []byte {
	var buf bytes.Buffer
	buf.Grow(len(Preamble) + len(p.Content) + len(Closing) + 3)

	buf.WriteString(Preamble)
	buf.WriteByte('\n')
	buf.Write(p.Content)
	buf.WriteByte('\n')
	buf.WriteString(Closing)
	buf.WriteByte('\n')

	return buf.Bytes()
}

// HasDelimiter reports whether the content would close the raw literal early.
// The content is still embedded as-is; this is informational only.
func (p *Payload) HasDelimiter() bool {
	return bytes.Contains(p.Content, []byte(Delimiter))
}

// Size returns the payload length in bytes
func (p *Payload) Size() int {
	return len(p.Content)
}
