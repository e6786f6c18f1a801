package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WatchEventMsg is sent when a new contract event is decoded during polling.
type WatchEventMsg struct {
	Toast  Toast
	Name   string
	Block  uint64
	TxHash string
}

// WatchStatusMsg updates the polling status bar.
type WatchStatusMsg struct {
	BlockNum uint64
	Fetching bool
	ErrMsg   string
}

// WatchModel is the Bubble Tea model for the live event stream.
type WatchModel struct {
	Contract string
	Chain    string
	Rows     []WatchEventMsg
	Status   WatchStatusMsg
	Frame    int
	Quitting bool
}

type watchTickMsg struct{}

func watchSpinTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(time.Time) tea.Msg {
		return watchTickMsg{}
	})
}

func (m WatchModel) Init() tea.Cmd { return watchSpinTick() }

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		}

	case watchTickMsg:
		m.Frame = (m.Frame + 1) % len(spinnerFrames)
		return m, watchSpinTick()

	case WatchEventMsg:
		// New events prepend so latest is at top.
		m.Rows = append([]WatchEventMsg{msg}, m.Rows...)
		// Cap at 200 rows.
		if len(m.Rows) > 200 {
			m.Rows = m.Rows[:200]
		}

	case WatchStatusMsg:
		m.Status = msg
	}

	return m, nil
}

func (m WatchModel) View() string {
	if m.Quitting {
		return ""
	}

	var sb strings.Builder
	spin := spinnerFrames[m.Frame]

	title := fmt.Sprintf("👁  Live Vault Events  ·  %s  ·  %s", m.Contract, m.Chain)
	sb.WriteString(StyleTitle.Render(title) + "\n")

	if m.Status.ErrMsg != "" {
		sb.WriteString(StyleError.Render("✗ "+m.Status.ErrMsg) + "\n\n")
	} else if m.Status.Fetching {
		sb.WriteString(StyleInfo.Render(fmt.Sprintf("%s polling block #%d…", spin, m.Status.BlockNum)) + "\n\n")
	} else if m.Status.BlockNum > 0 {
		sb.WriteString(StyleMeta.Render(fmt.Sprintf("  last checked: block #%d", m.Status.BlockNum)) + "\n\n")
	} else {
		sb.WriteString(StyleMeta.Render("  connecting…") + "\n\n")
	}

	if len(m.Rows) == 0 {
		sb.WriteString(StyleMeta.Render("  Waiting for events…") + "\n")
	} else {
		for _, row := range m.Rows {
			blk := StyleMeta.Render(fmt.Sprintf("#%-9d", row.Block))
			tx := StyleAddress.Render(shortHash(row.TxHash))
			sb.WriteString("  " + blk + "  " + tx + "  " + RenderToast(row.Toast) + "\n")
		}
		sb.WriteString("\n" + StyleMeta.Render(fmt.Sprintf("  %d event(s) seen", len(m.Rows))) + "\n")
	}

	sb.WriteString("\n" + StyleMeta.Render("  [ q ] quit") + "\n")
	return sb.String()
}

func shortHash(h string) string {
	if len(h) <= 14 {
		return h
	}
	return h[:10] + "…" + h[len(h)-4:]
}

func padR(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}
