package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/clubshop/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/clubshop/internal/auth"
	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	cartStore "github.com/MrJamesThe3rd/clubshop/internal/cart/store"
	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/checkout"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
	"github.com/MrJamesThe3rd/clubshop/internal/clubapi"
	"github.com/MrJamesThe3rd/clubshop/internal/config"
	"github.com/MrJamesThe3rd/clubshop/internal/importer"
	"github.com/MrJamesThe3rd/clubshop/internal/payout"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

type Screen int

const (
	ScreenMenu Screen = iota
	ScreenShop
	ScreenCart
	ScreenHistory
	ScreenExport
	ScreenImport
	ScreenPayout
)

type model struct {
	appName string
	scope   club.Scope
	query   transaction.Query

	catalogService  *catalog.Service
	cartService     *cart.Store
	checkoutService *checkout.Service
	txService       *transaction.Service
	importService   *importer.Service
	payoutService   *payout.Service

	current Screen
	active  view.View
}

func initialModel(ctx context.Context, cfg *config.Config, persister cart.Persister) model {
	client := clubapi.New(cfg.API.BaseURL, cfg.API.Timeout, auth.StaticToken(cfg.Auth.Token))
	scope := cfg.Scope()

	return model{
		appName:         cfg.App.Name,
		scope:           scope,
		query:           transaction.Query{Email: auth.Email(cfg.Auth.Token, cfg.Auth.Email), Scope: scope},
		catalogService:  catalog.NewService(client),
		cartService:     cart.New(ctx, persister),
		checkoutService: checkout.NewService(client),
		txService:       transaction.NewService(client),
		importService:   importer.NewService(),
		payoutService:   payout.NewService(client),
		current:         ScreenMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// open builds a fresh screen so that every visit starts from a clean state.
func (m model) open(s Screen) view.View {
	switch s {
	case ScreenShop:
		return view.NewCatalogModel(m.catalogService, m.cartService, m.scope)
	case ScreenCart:
		return view.NewCartModel(m.cartService, m.checkoutService, m.scope)
	case ScreenHistory:
		return view.NewTransactionsModel(m.txService, m.query)
	case ScreenExport:
		return view.NewExportModel(m.txService, m.query)
	case ScreenImport:
		return view.NewImportModel(m.catalogService, m.importService, m.scope)
	case ScreenPayout:
		return view.NewPayoutModel(m.payoutService, m.scope.Club, m.query.Email)
	}

	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.current == ScreenMenu {
			if msg.String() == "q" {
				return m, tea.Quit
			}

			n, err := strconv.Atoi(msg.String())
			next := Screen(n)
			if err != nil || next < ScreenShop || next > ScreenPayout {
				return m, nil
			}

			m.current = next
			m.active = m.open(next)

			return m, m.active.Init()
		}
	case view.BackMsg:
		m.current = ScreenMenu
		m.active = nil

		return m, nil
	}

	if m.active == nil {
		return m, nil
	}

	next, cmd := m.active.Update(msg)
	if v, ok := next.(view.View); ok {
		m.active = v
	}

	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m model) View() string {
	if m.active == nil {
		return lipgloss.NewStyle().Padding(2).Render(
			titleStyle.Render(m.appName) + "  " + helpStyle.Render(m.scope.String()) + "\n\n" +
				"1. Shop\n" +
				"2. Cart\n" +
				"3. Purchase History\n" +
				"4. Export Purchase Report\n" +
				"5. Import Products\n" +
				"6. Club Payouts\n\n" +
				"q. Quit",
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Padding(1, 1, 0).Render(titleStyle.Render(m.active.Title())),
		m.active.View(),
		lipgloss.NewStyle().PaddingLeft(1).Render(helpStyle.Render(m.active.ShortHelp())),
	)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logs would draw over the screen, so they go to a file instead.
	logFile, err := tea.LogToFile(cfg.TUI.LogPath, "")
	if err != nil {
		slog.Error("failed to open log file", "path", cfg.TUI.LogPath, "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	persister, closePersister, err := cartStore.Open(cfg)
	if err != nil {
		slog.Error("failed to open cart storage", "backend", cfg.Cart.Backend, "error", err)
		os.Exit(1)
	}
	defer closePersister()

	p := tea.NewProgram(initialModel(context.Background(), cfg, persister), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
