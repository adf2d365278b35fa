package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/imarchenko/stockroom/internal/client/models"
	"github.com/imarchenko/stockroom/internal/client/router"
)

// Open navigates to target and renders the screen the navigation lands on.
// A guard denial is not an error: the user simply lands on the login or
// access-denied screen instead.
func (a *App) Open(ctx context.Context, target string) error {
	route, err := a.nav.Navigate(ctx, target)
	if err != nil {
		if errors.Is(err, router.ErrNoRoute) {
			fmt.Fprintf(a.out, "No such screen: %s\n", target)
			return nil
		}
		return err
	}

	if err := a.render(ctx, route); err != nil {
		// the fault handler may already have bounced us to another screen
		fmt.Fprintln(a.out, err)
	}
	return nil
}

func (a *App) render(ctx context.Context, route *router.Route) error {
	fmt.Fprintf(a.out, "== %s ==\n", route.Title)

	switch route.Path {
	case router.PathLogin:
		if ru := a.nav.ReturnURL(); ru != "" {
			fmt.Fprintf(a.out, "Please log in to continue to %s (command: login)\n", ru)
		} else {
			fmt.Fprintln(a.out, "Please log in (command: login) or create an account (command: register)")
		}
		return nil

	case "/register":
		fmt.Fprintln(a.out, "Create an account with the register command")
		return nil

	case router.PathAccessDenied:
		fmt.Fprintln(a.out, "You do not have permission to view this screen.")
		return nil

	case "/user-dashboard", "/mod-dashboard", "/admin-dashboard":
		sess := a.sessions.Current()
		fmt.Fprintf(a.out, "Welcome, %s\n", sess.Username)
		return nil

	case "/profile":
		return a.WhoAmI(ctx)

	case "/products":
		return a.renderProducts(ctx)

	case "/products/new":
		return a.createProduct(ctx)

	case "/categories":
		return a.renderCategories(ctx)

	case "/suppliers":
		return a.renderSuppliers(ctx)

	case "/stores":
		return a.renderStores(ctx)

	case "/inventories":
		return a.renderInventories(ctx)

	case "/purchases":
		return a.renderPurchases(ctx)

	case "/sales":
		return a.renderSales(ctx)

	case "/transactions":
		return a.renderTransactions(ctx)

	default:
		return nil
	}
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *App) renderProducts(ctx context.Context) error {
	products, err := a.products.List(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%s\n", p.ID, p.Name, p.Price, p.Quantity, p.CategoryName)
	}
	return w.Flush()
}

func (a *App) createProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		return err
	}
	priceStr, err := getSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", priceStr)
	}
	qtyStr, err := getSimpleText(a.reader, "Quantity", a.out)
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", qtyStr)
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	created, err := a.products.Create(ctx, models.Product{
		Name:        name,
		Price:       price,
		Quantity:    qty,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created product %d (%s)\n", created.ID, created.Name)
	return nil
}

func (a *App) renderCategories(ctx context.Context) error {
	categories, err := a.categories.List(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tPRODUCTS\tDESCRIPTION")
	for _, c := range categories {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", c.ID, c.Name, c.ProductCount, c.Description)
	}
	return w.Flush()
}

func (a *App) renderSuppliers(ctx context.Context) error {
	suppliers, err := a.suppliers.List(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL")
	for _, s := range suppliers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.Name, s.Phone, s.ContactEmail)
	}
	return w.Flush()
}

func (a *App) renderStores(ctx context.Context) error {
	stores, err := a.stores.List(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tADDRESS\tPRODUCTS")
	for _, s := range stores {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", s.ID, s.Name, s.Address, s.ProductCount)
	}
	return w.Flush()
}

func (a *App) renderInventories(ctx context.Context) error {
	inventories, err := a.inventories.List(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tSTORE\tPRODUCT\tQTY\tCOST")
	for _, inv := range inventories {
		store, product := "", ""
		if inv.Store != nil {
			store = inv.Store.Name
		}
		if inv.Product != nil {
			product = inv.Product.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\n", inv.ID, store, product, inv.Quantity, inv.CostPrice)
	}
	return w.Flush()
}

func (a *App) renderPurchases(ctx context.Context) error {
	purchases, err := a.purchases.List(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tPRODUCT\tSUPPLIER\tQTY\tPRICE\tDATE")
	for _, p := range purchases {
		product, supplier := "", ""
		if p.Product != nil {
			product = p.Product.Name
		}
		if p.Supplier != nil {
			supplier = p.Supplier.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%s\n", p.ID, product, supplier, p.Quantity, p.Price, p.PurchaseDate)
	}
	return w.Flush()
}

func (a *App) renderSales(ctx context.Context) error {
	sales, err := a.sales.List(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tPRODUCT\tSTORE\tQTY\tPRICE\tDATE")
	for _, s := range sales {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%s\n", s.ID, s.ProductName, s.StoreName, s.Quantity, s.Price, s.SaleDate)
	}
	return w.Flush()
}

func (a *App) renderTransactions(ctx context.Context) error {
	transactions, err := a.transactions.List(ctx)
	if err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tTYPE\tSTORE\tPRODUCT\tQTY\tPRICE\tDATE")
	for _, tr := range transactions {
		store, product := "", ""
		if tr.Store != nil {
			store = tr.Store.Name
		}
		if tr.Product != nil {
			product = tr.Product.Name
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.2f\t%s\n", tr.ID, tr.Type, store, product, tr.Quantity, tr.Price, tr.TransactionDate)
	}
	return w.Flush()
}
