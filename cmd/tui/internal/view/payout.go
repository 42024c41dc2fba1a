package view

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/clubshop/internal/payout"
)

type payoutState int

const (
	payoutStateStatus payoutState = iota
	payoutStateEmail
)

// PayoutModel shows whether the club can receive payments and hands out
// onboarding and dashboard links.
type PayoutModel struct {
	CommonModel
	payoutService *payout.Service
	clubName      string

	state   payoutState
	form    *huh.Form
	email   *string
	account payout.Account
	link    string
	loading bool
	err     error
}

func NewPayoutModel(svc *payout.Service, clubName, email string) PayoutModel {
	return PayoutModel{
		payoutService: svc,
		clubName:      clubName,
		email:         new(email),
		loading:       true,
	}
}

func (m PayoutModel) Title() string { return "Club Payouts" }

func (m PayoutModel) ShortHelp() string {
	if m.state == payoutStateEmail {
		return "Esc: cancel | Enter: confirm"
	}

	if m.account.Connected() {
		return "Esc: back | l: dashboard link | r: refresh"
	}

	return "Esc: back | c: connect | r: refresh"
}

func (m PayoutModel) Init() tea.Cmd {
	return m.statusCmd()
}

func (m PayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case payoutStatusMsg:
		m.loading = false
		m.account = msg.account
		m.err = msg.err

		return m, nil

	case payoutLinkMsg:
		m.loading = false
		m.link = msg.url
		m.err = msg.err

		return m, nil
	}

	if m.state == payoutStateEmail {
		return m.updateEmail(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loading {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "r":
		m.loading = true
		m.link = ""

		return m, m.statusCmd()
	case "c":
		if m.account.Connected() {
			return m, nil
		}

		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Account email").
					Description("Used by the payment processor for onboarding").
					Value(m.email),
			),
		).WithWidth(50).WithShowHelp(false)
		m.state = payoutStateEmail

		return m, m.form.Init()
	case "l":
		if !m.account.Connected() {
			return m, nil
		}

		m.loading = true

		return m, m.loginCmd()
	}

	return m, nil
}

func (m PayoutModel) updateEmail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = payoutStateStatus
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = payoutStateStatus
	m.loading = true

	return m, m.connectCmd(*m.email)
}

func (m PayoutModel) View() string {
	if m.state == payoutStateEmail {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Contacting payment processor...")
	}

	var status string
	switch {
	case errors.Is(m.err, payout.ErrNotConnected):
		status = errorStyle("Not connected")
	case m.err != nil:
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)) + "\n\n(r to retry, Esc to go back)")
	case m.account.Connected():
		status = okStyle("Connected") + " (" + m.account.AccountID + ")"
	default:
		status = errorStyle("Not connected")
	}

	body := fmt.Sprintf("Club: %s\nStatus: %s", activeStyle(m.clubName), status)
	if m.link != "" {
		body += "\n\nOpen this link in your browser:\n" + activeStyle(m.link)
	}

	return lipgloss.NewStyle().Padding(2).Render(body)
}

// Messages

type payoutStatusMsg struct {
	account payout.Account
	err     error
}

type payoutLinkMsg struct {
	url string
	err error
}

func (m PayoutModel) statusCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := RemoteCtx()
		defer cancel()

		account, err := m.payoutService.Status(ctx, m.clubName)

		return payoutStatusMsg{account: account, err: err}
	}
}

func (m PayoutModel) connectCmd(email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := RemoteCtx()
		defer cancel()

		url, err := m.payoutService.Connect(ctx, m.clubName, email)

		return payoutLinkMsg{url: url, err: err}
	}
}

func (m PayoutModel) loginCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := RemoteCtx()
		defer cancel()

		url, err := m.payoutService.LoginLink(ctx, m.clubName)

		return payoutLinkMsg{url: url, err: err}
	}
}
