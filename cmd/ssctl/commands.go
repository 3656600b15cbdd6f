package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"solarsavers/internal/delivery/view/table"
	"solarsavers/internal/domain/entity"

	"github.com/pkg/errors"
)

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string, out io.Writer) error
}

var commandOrder = []string{
	"login", "logout", "whoami", "products", "cart", "wishlist", "compare", "calc", "checkout", "receipt",
}

var commands = map[string]command{
	"login":    {usage: "login -email <email> -password <password>", run: runLogin},
	"logout":   {usage: "logout", run: runLogout},
	"whoami":   {usage: "whoami", run: runWhoami},
	"products": {usage: "products [-q text] [-category home|commercial] [-brand name] [-sort key]... [-page n]", run: runProducts},
	"cart":     {usage: "cart list|add|update|remove|clear [-id product] [-qty n]", run: runCart},
	"wishlist": {usage: "wishlist list|add|remove|clear [-id product]", run: runWishlist},
	"compare":  {usage: "compare list|add|remove|clear [-id product]", run: runCompare},
	"calc":     {usage: "calc -bill <monthly bill> [-type home|commercial] -city <city> [-backup]", run: runCalc},
	"checkout": {usage: "checkout -address a -city c -state s -pincode p -phone n [-payment cod]", run: runCheckout},
	"receipt":  {usage: "receipt -order <id> [-out file.png]", run: runReceipt},
}

// repeated collects every occurrence of a flag.
type repeated []string

func (r *repeated) String() string { return strings.Join(*r, ",") }

func (r *repeated) Set(v string) error {
	*r = append(*r, v)

	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}

	return nil
}

func required(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return errUsage
		}
	}

	return nil
}

func runLogin(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(*email, *password); err != nil {
		return err
	}

	user, err := a.session.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Signed in as %s (%s)\n", user.Name, user.Role)

	return nil
}

func runLogout(ctx context.Context, a *app, _ []string, out io.Writer) error {
	a.session.Logout(ctx)
	fmt.Fprintln(out, "Signed out")

	return nil
}

func runWhoami(_ context.Context, a *app, _ []string, out io.Writer) error {
	s := a.session.Snapshot()
	if s.User == nil {
		fmt.Fprintln(out, "Not signed in")

		return nil
	}

	fmt.Fprintf(out, "%s <%s> %s\n", s.User.Name, s.User.Email, s.User.Role)

	return nil
}

var productColumns = []table.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Product"},
	{Key: "brand", Label: "Brand"},
	{Key: "system_size_kw", Label: "kW"},
	{Key: "price", Label: "Price"},
}

func runProducts(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("products")
	query := fs.String("q", "", "search text")
	category := fs.String("category", "", "category filter")
	brand := fs.String("brand", "", "brand filter")
	page := fs.Int("page", 1, "page number")
	var sorts repeated
	fs.Var(&sorts, "sort", "sort column, repeat to toggle direction")
	if err := parse(fs, args); err != nil {
		return err
	}

	products, err := a.catalog.Products(ctx, entity.ProductFilter{Category: *category, Brand: *brand})
	if err != nil {
		return err
	}

	return writeTable(out, products, productColumns, *query, sorts, *page)
}

func writeTable[T any](out io.Writer, items []T, columns []table.Column, query string, sorts []string, page int) error {
	records, err := table.FromStructs(items)
	if err != nil {
		return err
	}

	t := table.New(columns, records)
	t.Search(query)
	for _, key := range sorts {
		t.SortBy(key)
	}
	t.SetPage(page)

	return table.WriteText(out, t.Render())
}

// collectionArgs splits "<action> [flags]" and parses -id and -qty.
func collectionArgs(name string, args []string) (action, id string, qty int, err error) {
	if len(args) == 0 {
		return "", "", 0, errUsage
	}

	fs := newFlagSet(name)
	idFlag := fs.String("id", "", "product id")
	qtyFlag := fs.Int("qty", 1, "quantity")
	if err := parse(fs, args[1:]); err != nil {
		return "", "", 0, err
	}

	action = args[0]
	switch action {
	case "add", "update", "remove":
		if *idFlag == "" {
			return "", "", 0, errUsage
		}
	case "list", "clear":
	default:
		return "", "", 0, errUsage
	}

	return action, *idFlag, *qtyFlag, nil
}

var itemColumns = []table.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Product"},
	{Key: "price", Label: "Price"},
}

func runCart(ctx context.Context, a *app, args []string, out io.Writer) error {
	action, id, qty, err := collectionArgs("cart", args)
	if err != nil {
		return err
	}

	switch action {
	case "add":
		p, err := a.catalog.Product(ctx, id)
		if err != nil {
			return err
		}
		a.cart.Add(ctx, *p, qty)
	case "update":
		a.cart.UpdateQuantity(ctx, id, qty)
	case "remove":
		a.cart.Remove(ctx, id)
	case "clear":
		a.cart.Clear(ctx)
	}

	columns := append(append([]table.Column{}, itemColumns...), table.Column{Key: "quantity", Label: "Qty"})
	if err := writeTable(out, a.cart.Items(), columns, "", nil, 1); err != nil {
		return err
	}
	fmt.Fprintf(out, "Items: %d  Total: %s\n", a.cart.Count(), strconv.FormatFloat(a.cart.Total(), 'f', 2, 64))

	return nil
}

func runWishlist(ctx context.Context, a *app, args []string, out io.Writer) error {
	action, id, _, err := collectionArgs("wishlist", args)
	if err != nil {
		return err
	}

	switch action {
	case "add":
		p, err := a.catalog.Product(ctx, id)
		if err != nil {
			return err
		}
		a.wishlist.Add(ctx, *p)
	case "remove":
		a.wishlist.Remove(ctx, id)
	case "clear":
		a.wishlist.Clear(ctx)
	case "update":
		return errUsage
	}

	return writeTable(out, a.wishlist.Items(), itemColumns, "", nil, 1)
}

func runCompare(ctx context.Context, a *app, args []string, out io.Writer) error {
	action, id, _, err := collectionArgs("compare", args)
	if err != nil {
		return err
	}

	switch action {
	case "add":
		p, err := a.catalog.Product(ctx, id)
		if err != nil {
			return err
		}
		if !a.compare.Add(ctx, *p) && !a.compare.Contains(id) {
			fmt.Fprintf(out, "Compare list is full (%d products)\n", a.compare.Limit())
		}
	case "remove":
		a.compare.Remove(ctx, id)
	case "clear":
		a.compare.Clear(ctx)
	case "update":
		return errUsage
	}

	columns := append(append([]table.Column{}, itemColumns...),
		table.Column{Key: "system_size_kw", Label: "kW"},
		table.Column{Key: "efficiency_rating", Label: "Efficiency"},
		table.Column{Key: "warranty_years", Label: "Warranty"},
	)

	return writeTable(out, a.compare.Items(), columns, "", nil, 1)
}

func runCalc(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("calc")
	bill := fs.Float64("bill", 0, "monthly electricity bill")
	propertyType := fs.String("type", entity.CategoryHome, "property type")
	city := fs.String("city", "", "city")
	backup := fs.Bool("backup", false, "battery backup required")
	if err := parse(fs, args); err != nil {
		return err
	}

	estimate, err := a.calculator.Calculate(ctx, entity.CalculatorInput{
		MonthlyBill:    *bill,
		PropertyType:   *propertyType,
		City:           *city,
		BackupRequired: *backup,
	})
	if err != nil {
		return err
	}

	r := estimate.Result
	fmt.Fprintf(out, "Recommended size: %.1f kW\n", r.RecommendedSizeKW)
	fmt.Fprintf(out, "Estimated cost:   %.0f\n", r.EstimatedCost)
	fmt.Fprintf(out, "Annual savings:   %.0f\n", r.AnnualSavings)
	fmt.Fprintf(out, "Payback:          %.1f years\n", r.PaybackYears)
	fmt.Fprintf(out, "CO2 reduction:    %.0f kg/year\n", r.CO2ReductionKg)
	if len(estimate.Recommendations) == 0 {
		return nil
	}

	fmt.Fprintln(out)

	return writeTable(out, estimate.Recommendations, productColumns, "", nil, 1)
}

func runCheckout(ctx context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("checkout")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "state")
	pincode := fs.String("pincode", "", "postal code")
	phone := fs.String("phone", "", "contact phone")
	payment := fs.String("payment", "", "payment method")
	if err := parse(fs, args); err != nil {
		return err
	}

	order, outcome, err := a.orders.Checkout(ctx, entity.ShippingForm{
		Address:       *address,
		City:          *city,
		State:         *state,
		Pincode:       *pincode,
		Phone:         *phone,
		PaymentMethod: *payment,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s total %.2f\n", outcome.Label("Order"), order.ID, order.TotalAmount)

	return nil
}

func runReceipt(_ context.Context, a *app, args []string, out io.Writer) error {
	fs := newFlagSet("receipt")
	orderID := fs.String("order", "", "order id")
	path := fs.String("out", "", "PNG file to write, - for stdout")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required(*orderID); err != nil {
		return err
	}

	png, err := a.qrcode.GenerateOrderQR(*orderID)
	if err != nil {
		return err
	}

	target := *path
	if target == "" {
		target = "receipt-" + *orderID + ".png"
	}
	if target == "-" {
		_, err := out.Write(png)

		return errors.WithStack(err)
	}

	if err := os.WriteFile(target, png, 0o644); err != nil {
		return errors.Wrap(err, "write receipt")
	}
	fmt.Fprintf(out, "Receipt written to %s\n", target)

	return nil
}
