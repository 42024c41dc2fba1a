package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

type CatalogModel struct {
	CommonModel
	catalogService *catalog.Service
	cartStore      *cart.Store
	scope          club.Scope

	table    table.Model
	products []*catalog.Product

	loading bool
	err     error
	status  string
}

func NewCatalogModel(svc *catalog.Service, store *cart.Store, scope club.Scope) CatalogModel {
	columns := []table.Column{
		{Title: "Product", Width: 30},
		{Title: "Category", Width: 14},
		{Title: "Price", Width: 10},
		{Title: "Plans", Width: 30},
	}

	return CatalogModel{
		catalogService: svc,
		cartStore:      store,
		scope:          scope,
		table:          newTable(columns, 15),
		loading:        true,
	}
}

func (m CatalogModel) Title() string { return "Shop" }

func (m CatalogModel) ShortHelp() string {
	return "Esc: back | Enter/a: add to cart | r: refresh"
}

func (m CatalogModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.products = msg.products
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 14)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.status = ""

			return m, m.loadCmd()
		case "enter", "a":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.products) {
				return m, nil
			}

			p := m.products[idx]
			m.cartStore.Add(p)
			m.status = fmt.Sprintf("Added %s. Cart: %d items, %s",
				p.ID, m.cartStore.TotalItems(), FormatAmount(m.cartStore.TotalPrice()))

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CatalogModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading products for " + m.scope.String() + "...")
	}

	header := fmt.Sprintf("Club: %s", activeStyle(m.scope.String()))

	parts := []string{
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
	}

	if m.err != nil {
		parts = append(parts, errorStyle(fmt.Sprintf("Error: %v", m.err)))
	} else {
		parts = append(parts, boxed(m.table.View()))
	}

	if idx := m.table.Cursor(); m.err == nil && idx >= 0 && idx < len(m.products) {
		parts = append(parts, priceOptionsView(m.products[idx]))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func priceOptionsView(p *catalog.Product) string {
	var sb strings.Builder

	for _, o := range p.PriceOptions() {
		if o.Months == catalog.PayInFull {
			fmt.Fprintf(&sb, "Pay in full: %s\n", FormatAmount(o.Total))
			continue
		}

		fmt.Fprintf(&sb, "%d months: %s total, %s/month\n", o.Months, FormatAmount(o.Total), FormatAmount(o.Monthly))
	}

	return lipgloss.NewStyle().PaddingTop(1).Render(strings.TrimRight(sb.String(), "\n"))
}

func (m *CatalogModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.products))
	for _, p := range m.products {
		plans := make([]string, 0, len(p.InstallmentPlans))
		for _, o := range p.PriceOptions()[1:] {
			plans = append(plans, fmt.Sprintf("%dx %s", o.Months, FormatAmount(o.Monthly)))
		}

		rows = append(rows, table.Row{
			p.ID,
			string(p.Category),
			FormatAmount(p.BasePrice),
			strings.Join(plans, ", "),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type catalogLoadedMsg struct {
	products []*catalog.Product
	err      error
}

func (m CatalogModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := RemoteCtx()
		defer cancel()

		products, err := m.catalogService.Refresh(ctx, m.scope)

		return catalogLoadedMsg{products: products, err: err}
	}
}
