package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	"github.com/MrJamesThe3rd/clubshop/internal/checkout"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

type cartState int

const (
	cartStateBrowse cartState = iota
	cartStateCheckingOut
	cartStateAwaitingReturn
)

// outcomePending leaves the cart alone while the buyer is still paying.
const outcomePending = "pending"

type CartModel struct {
	CommonModel
	cartStore       *cart.Store
	checkoutService *checkout.Service
	scope           club.Scope

	state cartState
	table table.Model
	lines []cart.Line

	checkoutURL string
	form        *huh.Form
	outcome     *string // bound to the outcome form, shared by model copies

	err    error
	status string
}

func NewCartModel(store *cart.Store, svc *checkout.Service, scope club.Scope) CartModel {
	columns := []table.Column{
		{Title: "Product", Width: 30},
		{Title: "Unit", Width: 10},
		{Title: "Qty", Width: 5},
		{Title: "Total", Width: 10},
	}

	m := CartModel{
		cartStore:       store,
		checkoutService: svc,
		scope:           scope,
		table:           newTable(columns, 12),
	}
	m.setLines(store.Lines())

	return m
}

func (m CartModel) Title() string { return "Cart" }

func (m CartModel) ShortHelp() string {
	switch m.state {
	case cartStateAwaitingReturn:
		return "Choose how checkout ended | Esc: back"
	case cartStateCheckingOut:
		return "Creating checkout session..."
	}

	return "Esc: back | +/-: quantity | x: remove | c: clear | Enter: checkout"
}

func (m CartModel) Init() tea.Cmd {
	return nil
}

func (m CartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkoutResultMsg:
		if msg.err != nil {
			m.state = cartStateBrowse
			m.err = msg.err

			return m, nil
		}

		m.checkoutURL = msg.url
		m.form = m.buildOutcomeForm()
		m.state = cartStateAwaitingReturn

		return m, m.form.Init()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case cartStateBrowse:
		return m.updateBrowse(msg)
	case cartStateAwaitingReturn:
		return m.updateAwaitingReturn(msg)
	}

	return m, nil
}

func (m CartModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	idx := m.table.Cursor()
	selected := idx >= 0 && idx < len(m.lines)

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "+", "=":
		if selected {
			m.setLines(m.cartStore.Add(m.lines[idx].Product))
		}

		return m, nil
	case "-":
		if selected {
			m.setLines(m.cartStore.Remove(m.lines[idx].Product.ID))
		}

		return m, nil
	case "x":
		if selected {
			m.setLines(m.cartStore.RemoveAll(m.lines[idx].Product.ID))
		}

		return m, nil
	case "c":
		m.cartStore.Clear()
		m.setLines(nil)
		m.status = "Cart cleared."

		return m, nil
	case "enter":
		m.err = nil
		m.status = ""
		m.state = cartStateCheckingOut

		return m, m.checkoutCmd()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CartModel) updateAwaitingReturn(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = cartStateBrowse
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = cartStateBrowse
	m.form = nil

	if *m.outcome == outcomePending {
		m.status = "Cart kept. Reopen checkout with Enter."
		return m, nil
	}

	outcome, err := checkout.ParseOutcome(*m.outcome)
	if err != nil {
		m.err = err
		return m, nil
	}

	checkout.Resolve(outcome, m.cartStore)
	m.setLines(m.cartStore.Lines())

	if outcome == checkout.OutcomeSuccess {
		m.status = "Thanks for your purchase."
	} else {
		m.status = "Checkout cancelled. Cart cleared."
	}

	return m, nil
}

func (m *CartModel) buildOutcomeForm() *huh.Form {
	m.outcome = new(outcomePending)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How did checkout end?").
				Options(
					huh.NewOption("Payment completed", string(checkout.OutcomeSuccess)),
					huh.NewOption("Payment cancelled", string(checkout.OutcomeCancel)),
					huh.NewOption("Still paying", outcomePending),
				).
				Value(m.outcome),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m CartModel) View() string {
	if m.state == cartStateCheckingOut {
		return lipgloss.NewStyle().Padding(2).Render("Creating checkout session...")
	}

	if m.state == cartStateAwaitingReturn && m.form != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf(
			"Open this link to pay:\n\n%s\n\n%s",
			activeStyle(m.checkoutURL),
			m.form.View(),
		))
	}

	if len(m.lines) == 0 {
		content := "Your cart is empty."
		if m.status != "" {
			content = m.status + "\n\n" + content
		}

		return lipgloss.NewStyle().Padding(2).Render(content)
	}

	total := fmt.Sprintf("Items: %d | Total: %s",
		m.cartStore.TotalItems(), activeStyle(FormatAmount(cart.Total(m.lines))))

	content := lipgloss.JoinVertical(lipgloss.Left,
		boxed(m.table.View()),
		lipgloss.NewStyle().PaddingTop(1).Render(total),
	)

	if m.err != nil {
		content = errorStyle(fmt.Sprintf("Error: %v", m.err)) + "\n" + content
	} else if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CartModel) setLines(lines []cart.Line) {
	m.lines = lines

	rows := make([]table.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, table.Row{
			l.Product.ID,
			FormatAmount(l.Product.BasePrice),
			fmt.Sprintf("%d", l.Quantity),
			FormatAmount(l.Product.BasePrice.Mul(decimal.NewFromInt(int64(l.Quantity)))),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type checkoutResultMsg struct {
	url string
	err error
}

func (m CartModel) checkoutCmd() tea.Cmd {
	lines := m.lines
	scope := m.scope

	return func() tea.Msg {
		ctx, cancel := RemoteCtx()
		defer cancel()

		url, err := m.checkoutService.Checkout(ctx, lines, scope)

		return checkoutResultMsg{url: url, err: err}
	}
}
