package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// VaultStats holds one refresh of the contract's live state, pre-formatted.
type VaultStats struct {
	Balance    string // ETH
	MinDeposit string // ETH; empty until the read resolves
	FeeBps     uint64
	Paused     bool
	Owner      string
	Treasury   string
	Block      uint64
}

// DashboardInfo is the static chrome around the stats: connected wallet,
// role, contract, chain.
type DashboardInfo struct {
	Wallet   string // sidebar display form; empty when disconnected
	Role     string
	Contract string // footer display form
	Chain    string
}

// ToastMsg delivers a notification into a running dashboard (via Send).
type ToastMsg Toast

// dashboardModel is the Bubble Tea model for the live vault dashboard.
type dashboardModel struct {
	info       DashboardInfo
	stats      VaultStats
	loaded     bool
	toasts     []Toast
	lastUpdate time.Time
	interval   time.Duration
	fetcher    func() (VaultStats, error)
	err        string
	quitting   bool
}

type tickMsg time.Time
type statsFetchedMsg VaultStats
type statsErrorMsg string

const maxToasts = 8

// NewDashboard creates a Bubble Tea program for the live vault dashboard.
func NewDashboard(info DashboardInfo, interval time.Duration, fetcher func() (VaultStats, error)) *tea.Program {
	m := dashboardModel{
		info:     info,
		interval: interval,
		fetcher:  fetcher,
	}
	return tea.NewProgram(m)
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), tick(m.interval))
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		return m, tea.Batch(m.fetchCmd(), tick(m.interval))

	case statsFetchedMsg:
		m.stats = VaultStats(msg)
		m.loaded = true
		m.lastUpdate = time.Now()
		m.err = ""

	case statsErrorMsg:
		m.err = string(msg)

	case ToastMsg:
		// Latest on top.
		m.toasts = append([]Toast{Toast(msg)}, m.toasts...)
		if len(m.toasts) > maxToasts {
			m.toasts = m.toasts[:maxToasts]
		}
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(StyleTitle.Render("⚡ POSVault Dashboard · "+m.info.Chain) + "\n")

	// Connection line.
	if m.info.Wallet == "" {
		sb.WriteString(StyleMeta.Render("  not connected") + "\n")
	} else {
		sb.WriteString("  " + Addr(m.info.Wallet) + "  " + roleBadge(m.info.Role) + "\n")
	}

	if m.loaded {
		if m.stats.Paused {
			sb.WriteString("  " + Badge("PAUSED", StyleError) + "\n")
		} else {
			sb.WriteString("  " + Badge("LIVE", StyleSuccess) + "\n")
		}
	}
	sb.WriteString("\n")

	if m.err != "" {
		sb.WriteString(Err(m.err) + "\n\n")
	}

	if !m.loaded {
		sb.WriteString(StyleMeta.Render("  Loading...") + "\n")
	} else {
		var box strings.Builder
		box.WriteString(statLine("Vault Balance", Val(m.stats.Balance)+" ETH"))
		if m.stats.MinDeposit == "" {
			box.WriteString(statLine("Min Deposit", StyleMeta.Render("unavailable — deposits disabled")))
		} else {
			box.WriteString(statLine("Min Deposit", Val(m.stats.MinDeposit)+" ETH"))
		}
		box.WriteString(statLine("Withdrawal Fee", Val(fmt.Sprintf("%.2f%%", float64(m.stats.FeeBps)/100))))
		box.WriteString(statLine("Owner", Addr(m.stats.Owner)))
		box.WriteString(statLine("Treasury", Addr(m.stats.Treasury)))
		box.WriteString(statLine("Block", StyleMeta.Render(fmt.Sprintf("#%d", m.stats.Block))))
		sb.WriteString(StyleBorder.Render(strings.TrimRight(box.String(), "\n")) + "\n")
	}

	// Toast stream.
	sb.WriteString("\n" + StyleDim.Render("  EVENTS") + "\n")
	if len(m.toasts) == 0 {
		sb.WriteString(StyleMeta.Render("  no events yet") + "\n")
	} else {
		for _, t := range m.toasts {
			sb.WriteString("  " + RenderToast(t) + "\n")
		}
	}

	// Available actions, gated by role.
	sb.WriteString("\n" + StyleDim.Render("  ACTIONS") + "\n")
	sb.WriteString(StyleMeta.Render("  "+actionsForRole(m.info.Role)) + "\n")

	// Footer.
	sb.WriteString("\n")
	sb.WriteString(StyleMeta.Render(fmt.Sprintf("  contract %s · updated %s · q to quit",
		m.info.Contract, m.lastUpdate.Format("15:04:05"))) + "\n")

	return sb.String()
}

func (m dashboardModel) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.fetcher()
		if err != nil {
			return statsErrorMsg(err.Error())
		}
		return statsFetchedMsg(stats)
	}
}

// actionsForRole lists what the connected account can do. Owner sees all
// panels; merchants additionally withdraw; everyone can deposit.
func actionsForRole(role string) string {
	switch role {
	case "owner":
		return "deposit · withdraw · merchant add/remove · pause/unpause · emergency-withdraw · ownership"
	case "merchant":
		return "deposit · withdraw"
	default:
		return "deposit"
	}
}

func roleBadge(role string) string {
	switch role {
	case "owner":
		return Badge("OWNER", StyleAccent)
	case "merchant":
		return Badge("MERCHANT", StyleSuccess)
	default:
		return Badge("USER", StyleMeta)
	}
}

func statLine(label, value string) string {
	return padR(StyleDim.Render(label), 18) + value + "\n"
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
