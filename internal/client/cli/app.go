package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/imarchenko/stockroom/internal/client/api"
	"github.com/imarchenko/stockroom/internal/client/config"
	"github.com/imarchenko/stockroom/internal/client/repositories/state"
	"github.com/imarchenko/stockroom/internal/client/router"
	"github.com/imarchenko/stockroom/internal/client/services"
	"github.com/imarchenko/stockroom/internal/client/session"
	"github.com/imarchenko/stockroom/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db       *sql.DB
	sessions *session.Store
	nav      *router.Navigator

	auth         services.AuthService
	products     *services.ProductService
	categories   *services.CategoryService
	suppliers    *services.SupplierService
	stores       *services.StoreService
	inventories  *services.InventoryService
	purchases    *services.PurchaseService
	sales        *services.SaleService
	transactions *services.TransactionService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the console: local state database, session store, the
// authenticated API client with its fault handler, the services, and the
// guarded navigator.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := state.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open local state: %w", err)
	}

	a := &App{
		config: cfg,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	faults := &api.Handler{Log: log}
	client := api.New(api.Options{
		BaseURL:  cfg.BackendBaseURL,
		AuthBase: cfg.AuthBasePath,
		Timeout:  cfg.RequestTimeout,
	}, api.TokenFunc(func() string {
		if a.sessions == nil {
			return ""
		}
		return a.sessions.Token()
	}), faults, log)

	a.auth = services.NewAuthService(client, cfg.AuthBasePath, log)
	a.sessions = session.NewStore(state.NewSQLiteRepository(db), a.auth, log)

	table, err := Routes()
	if err != nil {
		return nil, fmt.Errorf("invalid route table: %w", err)
	}
	a.nav = router.NewNavigator(table,
		router.NewAuthGuard(a.sessions, log),
		router.NewRoleGuard(a.sessions, log),
		log)

	// Global recovery: an authentication failure from any endpoint ends the
	// session and bounces to login with the interrupted screen preserved;
	// an authorization failure bounces to access-denied and keeps the
	// session.
	faults.OnUnauthenticated = func(ctx context.Context) {
		_ = a.sessions.Logout(ctx)
		_, _ = a.nav.Navigate(ctx, router.LoginRedirect(a.nav.CurrentPath()))
	}
	faults.OnForbidden = func(ctx context.Context) {
		_, _ = a.nav.Navigate(ctx, router.AccessDeniedRedirect(a.nav.CurrentPath()))
	}

	a.products = services.NewProductService(client)
	a.categories = services.NewCategoryService(client)
	a.suppliers = services.NewSupplierService(client)
	a.stores = services.NewStoreService(client)
	a.inventories = services.NewInventoryService(client)
	a.purchases = services.NewPurchaseService(client)
	a.sales = services.NewSaleService(client)
	a.transactions = services.NewTransactionService(client)

	return a, nil
}

// Run rehydrates the session saved by a prior run, opens the default
// screen, and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.sessions.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "failed to restore session", "error", err)
	}

	_ = a.Open(ctx, "/user-dashboard")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the local state database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsLoggedIn()
}

// status is rendered inside the prompt: current user and screen.
func (a *App) status() string {
	s := ""
	if sess := a.sessions.Current(); sess != nil {
		s = sess.Username + " "
	}
	if p := a.nav.CurrentPath(); p != "" {
		s += p
	}
	return s
}
