package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// how long a reload or copy notice stays up
const noticeDuration = 2 * time.Second

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarning
	noticeError
)

func (k noticeKind) icon() string {
	switch k {
	case noticeSuccess:
		return "✓"
	case noticeWarning:
		return "⚠"
	case noticeError:
		return "×"
	}
	return "•"
}

type notice struct {
	text string
	kind noticeKind
}

// clearNoticeMsg expires the notice with the same sequence number
type clearNoticeMsg struct{ seq int }

// StatusLine is the row under the article. It always reports the article
// watch state and briefly shows the outcome of reloads and copies on top.
type StatusLine struct {
	watch  *notice
	flash  *notice
	seq    int
	expiry time.Duration
}

func NewStatusLine() *StatusLine {
	return &StatusLine{expiry: noticeDuration}
}

// Watching records that path is reloaded on change
func (s *StatusLine) Watching(path string) {
	s.watch = &notice{text: "Watching " + path, kind: noticeInfo}
}

// WatchDisabled records that live reload could not start
func (s *StatusLine) WatchDisabled(err error) {
	s.watch = &notice{text: fmt.Sprintf("Live reload off: %v", err), kind: noticeWarning}
}

func (s *StatusLine) Reloaded() tea.Cmd { return s.show("Article reloaded", noticeSuccess) }
func (s *StatusLine) Copied() tea.Cmd   { return s.show("Copied applied options", noticeSuccess) }

func (s *StatusLine) ReloadFailed(err error) tea.Cmd {
	return s.show(fmt.Sprintf("Reload failed: %v", err), noticeError)
}

func (s *StatusLine) CopyFailed(err error) tea.Cmd {
	return s.show(fmt.Sprintf("Failed to copy: %v", err), noticeError)
}

func (s *StatusLine) show(text string, kind noticeKind) tea.Cmd {
	s.seq++
	s.flash = &notice{text: text, kind: kind}
	seq := s.seq
	return tea.Tick(s.expiry, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// expire drops the flash notice unless a newer one replaced it
func (s *StatusLine) expire(msg clearNoticeMsg) {
	if msg.seq == s.seq {
		s.flash = nil
	}
}

func (s *StatusLine) current() *notice {
	if s.flash != nil {
		return s.flash
	}
	return s.watch
}

// Text returns the plain status text
func (s *StatusLine) Text() (string, bool) {
	n := s.current()
	if n == nil {
		return "", false
	}
	return n.kind.icon() + " " + n.text, true
}

func (s *StatusLine) View() string {
	text, ok := s.Text()
	if !ok {
		return ""
	}
	style := StatusBarStyle
	switch s.current().kind {
	case noticeWarning:
		style = style.Foreground(lipgloss.Color(ColorWarning))
	case noticeError:
		style = style.Foreground(lipgloss.Color(ColorDanger))
	}
	return style.Render(text)
}
