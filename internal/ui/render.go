package ui

import (
	"fmt"
	"io"

	"github.com/mbastida/mailfind/internal/store"
)

// Renderer writes message listings and full message views to a writer.
// It serves the non-interactive CLI commands and pipes.
type Renderer struct {
	out    io.Writer
	styles Styles
	// maxResults caps listing length; 0 means unlimited.
	maxResults int
}

// NewRenderer creates a renderer with the given styles.
func NewRenderer(out io.Writer, styles Styles, maxResults int) *Renderer {
	return &Renderer{out: out, styles: styles, maxResults: maxResults}
}

// Heading writes a section heading.
func (r *Renderer) Heading(title string) {
	fmt.Fprintf(r.out, "%s\n\n", r.styles.Header.Render("[ "+title+" ]"))
}

// Line writes one listing row: id, sender, subject, date.
func (r *Renderer) Line(m *store.Message) {
	fmt.Fprintf(r.out, "%s  %s  %s  %s\n",
		r.styles.ID.Render(fmt.Sprintf("%d", m.ID)),
		r.styles.Sender.Render(m.Sender),
		r.styles.Subject.Render(m.Subject),
		r.styles.Date.Render(m.DateKey))
}

// List writes a listing of messages, truncated to maxResults when set.
// Returns the number of rows written.
func (r *Renderer) List(msgs []*store.Message) int {
	n := 0
	for _, m := range msgs {
		if r.maxResults > 0 && n >= r.maxResults {
			fmt.Fprintf(r.out, "%s\n", r.styles.Dim.Render(
				fmt.Sprintf("... %d more", len(msgs)-n)))
			break
		}
		r.Line(m)
		n++
	}
	return n
}

// Message writes a full message view.
func (r *Renderer) Message(m *store.Message) {
	s := r.styles
	fmt.Fprintf(r.out, "%s\n\n", s.Header.Render("[ READING MESSAGE ]"))
	fmt.Fprintf(r.out, "%s %d\n", s.Label.Render("ID:"), m.ID)
	fmt.Fprintf(r.out, "%s %s\n", s.Label.Render("From:"), s.Sender.Render(m.Sender))
	fmt.Fprintf(r.out, "%s %s\n", s.Label.Render("Subject:"), s.Subject.Render(m.Subject))
	fmt.Fprintf(r.out, "%s %s\n\n", s.Label.Render("Date:"), s.Date.Render(m.DateKey))
	fmt.Fprintf(r.out, "%s\n", s.Body.Render(m.Body))
}

// Empty writes a no-results notice.
func (r *Renderer) Empty(what string) {
	fmt.Fprintf(r.out, "%s\n", r.styles.Error.Render("No "+what+" found."))
}
