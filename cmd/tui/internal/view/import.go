package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
	"github.com/MrJamesThe3rd/clubshop/internal/importer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStatePreview
	importStateConfirm
	importStateCreating
	importStateResult
)

type ImportModel struct {
	CommonModel
	catalogService *catalog.Service
	importService  *importer.Service
	scope          club.Scope

	state      importState
	filePicker filepicker.Model

	listings   []catalog.NewListing
	preview    list.Model
	skipped    map[int]bool
	confirm    *huh.Form
	confirmed  *bool
	sourceFile string

	status string
	err    error
}

func NewImportModel(catalogSvc *catalog.Service, impSvc *importer.Service, scope club.Scope) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		catalogService: catalogSvc,
		importService:  impSvc,
		scope:          scope,
		filePicker:     fp,
		skipped:        make(map[int]bool),
		confirmed:      new(false),
	}
}

func (m ImportModel) Title() string { return "Import Products" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStatePreview {
		return "Space: skip/keep | Enter: create | Esc: cancel"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStatePreview {
			return m.updatePreview(msg)
		}

	case parseResultMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.listings = msg.listings
		m.skipped = make(map[int]bool)
		m.state = importStatePreview

		items := make([]list.Item, len(m.listings))
		for i, l := range m.listings {
			items[i] = listingItem{listing: l, index: i}
		}

		m.preview = list.New(items, listingDelegate{skipped: m.skipped}, 80, 20)
		m.preview.Title = fmt.Sprintf("%d products in %s", len(m.listings), m.sourceFile)
		m.preview.SetShowStatusBar(false)
		m.preview.SetFilteringEnabled(false)
		m.preview.SetShowHelp(false)

		return m, nil

	case createResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Created %d products for %s.", msg.count, m.scope)

		return m, nil
	}

	switch m.state {
	case importStateConfirm:
		return m.updateConfirm(msg)
	case importStateFilePick:
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.sourceFile = path
			m.status = fmt.Sprintf("Reading %s...", path)

			return m, m.parseCmd(path)
		}

		return m, cmd
	}

	return m, nil
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStatePreview, importStateConfirm, importStateResult:
		m.state = importStateFilePick
		m.listings = nil
		m.err = nil
		m.status = ""

		return m, m.filePicker.Init()
	case importStateCreating:
		return m, nil
	}

	return m, Back
}

func (m ImportModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		idx := m.preview.Index()
		m.skipped[idx] = !m.skipped[idx]

		return m, nil
	case "enter":
		if len(m.selectedListings()) == 0 {
			return m, nil
		}

		*m.confirmed = false
		m.confirm = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Create %d products for %s?", len(m.selectedListings()), m.scope)).
					Affirmative("Create").
					Negative("Cancel").
					Value(m.confirmed),
			),
		).WithShowHelp(false)
		m.state = importStateConfirm

		return m, m.confirm.Init()
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)

	return m, cmd
}

func (m ImportModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	if m.confirm.State != huh.StateCompleted {
		return m, cmd
	}

	if !*m.confirmed {
		m.state = importStatePreview
		return m, nil
	}

	m.state = importStateCreating

	return m, m.createCmd(m.selectedListings())
}

func (m ImportModel) selectedListings() []catalog.NewListing {
	out := make([]catalog.NewListing, 0, len(m.listings))
	for i, l := range m.listings {
		if !m.skipped[i] {
			out = append(out, l)
		}
	}

	return out
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select a product sheet to import into %s:\n\n%s", m.scope, m.filePicker.View()),
		)
	case importStatePreview:
		return lipgloss.NewStyle().Padding(1).Render(m.preview.View())
	case importStateConfirm:
		return lipgloss.NewStyle().Padding(1).Render(m.confirm.View())
	case importStateCreating:
		return lipgloss.NewStyle().Padding(2).Render("Creating products...")
	case importStateResult:
		status := okStyle(m.status)
		if m.err != nil {
			status = errorStyle(m.status)
		}

		return lipgloss.NewStyle().Padding(2).Render(status + "\n\n(Esc to go back)")
	}

	return ""
}

// Messages

type parseResultMsg struct {
	listings []catalog.NewListing
	err      error
}

type createResultMsg struct {
	count int
	err   error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parseResultMsg{err: err}
		}
		defer f.Close()

		listings, err := m.importService.Import(importer.FormatProducts, f)
		if err != nil {
			return parseResultMsg{err: err}
		}

		if len(listings) == 0 {
			return parseResultMsg{err: fmt.Errorf("no products found in %s", path)}
		}

		return parseResultMsg{listings: listings}
	}
}

func (m ImportModel) createCmd(listings []catalog.NewListing) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		if err := m.catalogService.Create(ctx, m.scope, listings); err != nil {
			return createResultMsg{err: err}
		}

		return createResultMsg{count: len(listings)}
	}
}

// Preview list item

type listingItem struct {
	listing catalog.NewListing
	index   int
}

func (i listingItem) Title() string       { return i.listing.Name }
func (i listingItem) Description() string { return string(i.listing.Category) }
func (i listingItem) FilterValue() string { return i.listing.Name }

// Preview list delegate

type listingDelegate struct {
	skipped map[int]bool
}

func (d listingDelegate) Height() int                             { return 1 }
func (d listingDelegate) Spacing() int                            { return 0 }
func (d listingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d listingDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(listingItem)
	if !ok {
		return
	}

	checkbox := "[x]"
	if d.skipped[item.index] {
		checkbox = "[ ]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	plan := "full"
	if item.listing.InstallmentMonths != nil {
		plan = fmt.Sprintf("%d months", *item.listing.InstallmentMonths)
	}

	fmt.Fprintf(w, "%s%s %-30s %-12s %10s  %s",
		cursor, checkbox,
		item.listing.Name,
		item.listing.Category,
		FormatAmount(item.listing.Price),
		plan,
	)
}
