package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/clubshop/internal/report"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateTimeframe
	txStateSearch
)

var statusFilters = []string{
	transaction.StatusAll,
	string(transaction.StatusCompleted),
	string(transaction.StatusPending),
	string(transaction.StatusFailed),
}

type TransactionsModel struct {
	CommonModel
	txService *transaction.Service
	query     transaction.Query

	state           txState
	timeframePicker TimeframePicker
	search          textinput.Model
	table           table.Model

	txs       []*transaction.Transaction
	criteria  report.Criteria
	view      report.View
	statusIdx int
	category  int // index into categories, 0 for all
	timeframe string

	loading bool
	err     error
}

func NewTransactionsModel(txSvc *transaction.Service, query transaction.Query) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Amount", Width: 10},
		{Title: "Items", Width: 50},
	}

	si := textinput.New()
	si.Placeholder = "name, category or price"
	si.Prompt = "Search: "
	si.Width = 30

	return TransactionsModel{
		txService:       txSvc,
		query:           query,
		timeframePicker: NewTimeframePicker(),
		search:          si,
		table:           newTable(columns, 12),
		timeframe:       TimeframeAll.String(),
		loading:         true,
	}
}

func (m TransactionsModel) Title() string { return "Purchase History" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case txStateTimeframe:
		return "Esc: back | Enter: select"
	case txStateSearch:
		return "Enter: apply | Esc: cancel"
	}

	return "Esc: back | /: search | s: status | c: category | t: timeframe | r: refresh"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case txLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.txs = msg.txs
		m.rebuild()

		return m, nil

	case TimeframeSelectedMsg:
		m.criteria.StartDate = msg.Start
		m.criteria.EndDate = msg.End
		m.timeframe = msg.Label
		m.state = txStateBrowse
		m.timeframePicker.Reset()
		m.rebuild()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 16)
		return m, nil
	}

	switch m.state {
	case txStateTimeframe:
		return m.updateTimeframe(msg)
	case txStateSearch:
		return m.updateSearch(msg)
	}

	return m.updateBrowse(msg)
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
			m.rebuild()

			return m, nil
		case "c":
			m.category = (m.category + 1) % (len(m.view.ByCategory) + 1)
			m.rebuild()

			return m, nil
		case "t":
			m.state = txStateTimeframe
			return m, nil
		case "/":
			m.state = txStateSearch
			m.search.SetValue(m.criteria.Search)
			m.search.Focus()

			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) updateTimeframe(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
		m.state = txStateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.timeframePicker, cmd = m.timeframePicker.Update(msg)

	return m, cmd
}

func (m TransactionsModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.criteria.Search = m.search.Value()
			m.search.Blur()
			m.state = txStateBrowse
			m.rebuild()

			return m, nil
		case tea.KeyEsc:
			m.search.Blur()
			m.state = txStateBrowse

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

// selectedCategory is the category whose spend is totalled.
func (m TransactionsModel) selectedCategory() string {
	if m.category == 0 || m.category > len(m.view.ByCategory) {
		return transaction.CategoryAll
	}

	return m.view.ByCategory[m.category-1].Category
}

func (m *TransactionsModel) rebuild() {
	category := m.selectedCategory()

	m.criteria.Status = statusFilters[m.statusIdx]
	m.criteria.Category = category
	m.view = report.Build(m.txs, m.criteria)

	// The category list can shrink when filters change.
	if m.selectedCategory() != category {
		m.category = 0
		m.criteria.Category = transaction.CategoryAll
		m.view = report.Build(m.txs, m.criteria)
	}

	rows := make([]table.Row, 0, len(m.view.Transactions))
	for _, tx := range m.view.Transactions {
		names := make([]string, 0, len(tx.Items))
		for _, it := range tx.Items {
			names = append(names, fmt.Sprintf("%dx %s", it.Quantity, it.ProductName))
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Timestamp),
			string(tx.Status),
			FormatAmount(tx.Amount),
			strings.Join(names, ", "),
		})
	}

	m.table.SetRows(rows)
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading purchase history...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle(fmt.Sprintf("Error: %v", m.err)) + "\n\n(r to retry, Esc to go back)")
	}

	switch m.state {
	case txStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())
	case txStateSearch:
		return lipgloss.NewStyle().Padding(1).Render(m.search.View())
	}

	search := m.criteria.Search
	if search == "" {
		search = "-"
	}

	header := fmt.Sprintf(
		"[s] Status: %s | [c] Category: %s | [t] Period: %s | [/] Search: %s",
		activeStyle(m.criteria.Status),
		activeStyle(m.selectedCategory()),
		activeStyle(m.timeframe),
		activeStyle(search),
	)

	totals := lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(report.Summary(m.view))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.JoinHorizontal(lipgloss.Top, boxed(m.table.View()), " ", totals),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

// Messages

type txLoadedMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := RemoteCtx()
		defer cancel()

		txs, err := m.txService.Refresh(ctx, m.query)

		return txLoadedMsg{txs: txs, err: err}
	}
}
