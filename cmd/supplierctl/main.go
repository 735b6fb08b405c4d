package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/scoutworks/supplierscout-backend/internal/catalogdb"
	"github.com/scoutworks/supplierscout-backend/pkg/config"
	"github.com/scoutworks/supplierscout-backend/pkg/db"
	"github.com/scoutworks/supplierscout-backend/pkg/logger"
	"github.com/scoutworks/supplierscout-backend/pkg/migrate"
)

const usage = `supplierctl manages the persistent supplier database.

Usage:
  supplierctl <command> [flags]

Commands:
  add-supplier     insert a supplier row
  search           search suppliers by name or supplier id
  add-product      attach a product to a supplier
  list-products    list a supplier's products
  delete-supplier  remove a supplier and its products
  stats            print database statistics
  migrate          run schema migrations
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "supplierctl"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fatal(ctx, logg, "load config", err)
	}

	logg = logger.New(logger.Options{
		ServiceName: "supplierctl",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		fatal(ctx, logg, "open database", err)
	}
	defer dbClient.Close()

	command := os.Args[1]
	args := os.Args[2:]

	if command == "migrate" {
		runMigrate(ctx, logg, cfg, dbClient, args)
		return
	}

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		fatal(ctx, logg, "sql handle", err)
	}
	if err := migrate.MaybeAutoRun(ctx, sqlDB, cfg.DB, migrate.DefaultDir); err != nil {
		fatal(ctx, logg, "auto migrate", err)
	}

	repo, err := catalogdb.NewRepository(dbClient.DB())
	if err != nil {
		fatal(ctx, logg, "build repository", err)
	}

	switch command {
	case "add-supplier":
		runAddSupplier(ctx, logg, repo, args)
	case "search":
		runSearch(ctx, logg, repo, args)
	case "add-product":
		runAddProduct(ctx, logg, repo, args)
	case "list-products":
		runListProducts(ctx, logg, repo, args)
	case "delete-supplier":
		runDeleteSupplier(ctx, logg, repo, args)
	case "stats":
		runStats(ctx, logg, repo)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}
}

func runMigrate(ctx context.Context, logg *logger.Logger, cfg *config.Config, dbClient *db.Client, args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	cmd := fs.String("cmd", "up", "goose command: up|down|status|version")
	dir := fs.String("dir", migrate.DefaultDir, "goose migrations directory")
	fs.Parse(args)

	sqlDB, err := dbClient.DB().DB()
	if err != nil {
		fatal(ctx, logg, "sql handle", err)
	}
	if err := migrate.Run(ctx, sqlDB, cfg.DB, *dir, *cmd); err != nil {
		fatal(ctx, logg, "run migrations", err)
	}
	fmt.Printf("migrations: %s complete\n", *cmd)
}

func runAddSupplier(ctx context.Context, logg *logger.Logger, repo *catalogdb.Repository, args []string) {
	fs := flag.NewFlagSet("add-supplier", flag.ExitOnError)
	supplierID := fs.String("supplier-id", "", "external supplier identifier (required)")
	name := fs.String("name", "", "supplier name (required)")
	email := fs.String("email", "", "contact email")
	phone := fs.String("phone", "", "contact phone")
	address := fs.String("address", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "state")
	zipCode := fs.String("zip", "", "zip code")
	country := fs.String("country", "USA", "country")
	category := fs.String("category", "", "supplier category")
	status := fs.String("status", catalogdb.StatusActive, "status: active|inactive|pending")
	fs.Parse(args)

	supplier, err := repo.AddSupplier(ctx, &catalogdb.Supplier{
		SupplierID: *supplierID,
		Name:       *name,
		Email:      *email,
		Phone:      *phone,
		Address:    *address,
		City:       *city,
		State:      *state,
		ZipCode:    *zipCode,
		Country:    *country,
		Category:   *category,
		Status:     *status,
	})
	if err != nil {
		fatal(ctx, logg, "add supplier", err)
	}
	fmt.Printf("supplier added: id=%d supplier_id=%s name=%q category=%q\n",
		supplier.ID, supplier.SupplierID, supplier.Name, supplier.Category)
}

func runSearch(ctx context.Context, logg *logger.Logger, repo *catalogdb.Repository, args []string) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	query := fs.String("query", "", "search query (required)")
	category := fs.String("category", "", "optional category filter")
	fs.Parse(args)

	results, err := repo.Search(ctx, *query, *category)
	if err != nil {
		fatal(ctx, logg, "search", err)
	}
	if len(results) == 0 {
		fmt.Printf("no suppliers found matching %q\n", *query)
		return
	}
	fmt.Printf("found %d supplier(s):\n", len(results))
	for _, s := range results {
		fmt.Printf("  %s (%s)\n", s.Name, s.SupplierID)
		fmt.Printf("    category: %s\n", s.Category)
		fmt.Printf("    contact:  %s / %s\n", s.Email, s.Phone)
		fmt.Printf("    location: %s, %s %s\n", s.City, s.State, s.ZipCode)
	}
}

func runAddProduct(ctx context.Context, logg *logger.Logger, repo *catalogdb.Repository, args []string) {
	fs := flag.NewFlagSet("add-product", flag.ExitOnError)
	supplierRef := fs.Uint("supplier-id", 0, "internal supplier row id (required)")
	code := fs.String("code", "", "product code (required)")
	name := fs.String("name", "", "product name (required)")
	description := fs.String("description", "", "product description")
	unitCost := fs.Float64("unit-cost", 0, "unit cost")
	leadTime := fs.Int("lead-time", 0, "lead time in days")
	minOrder := fs.Int("min-order", 1, "minimum order quantity")
	fs.Parse(args)

	product, err := repo.AddProduct(ctx, &catalogdb.Product{
		SupplierRef:  uint(*supplierRef),
		ProductCode:  *code,
		ProductName:  *name,
		Description:  *description,
		UnitCost:     *unitCost,
		LeadTimeDays: *leadTime,
		MinOrderQty:  *minOrder,
	})
	if err != nil {
		fatal(ctx, logg, "add product", err)
	}
	fmt.Printf("product added: id=%d code=%s name=%q unit_cost=%.2f\n",
		product.ID, product.ProductCode, product.ProductName, product.UnitCost)
}

func runListProducts(ctx context.Context, logg *logger.Logger, repo *catalogdb.Repository, args []string) {
	fs := flag.NewFlagSet("list-products", flag.ExitOnError)
	supplierRef := fs.Uint("supplier-id", 0, "internal supplier row id (required)")
	fs.Parse(args)

	products, err := repo.ListProducts(ctx, uint(*supplierRef))
	if err != nil {
		fatal(ctx, logg, "list products", err)
	}
	if len(products) == 0 {
		fmt.Printf("no products found for supplier %d\n", *supplierRef)
		return
	}
	fmt.Printf("%d product(s):\n", len(products))
	for _, p := range products {
		fmt.Printf("  %s (%s)\n", p.ProductName, p.ProductCode)
		fmt.Printf("    cost: $%.2f  lead time: %d days  min order: %d\n",
			p.UnitCost, p.LeadTimeDays, p.MinOrderQty)
	}
}

func runDeleteSupplier(ctx context.Context, logg *logger.Logger, repo *catalogdb.Repository, args []string) {
	fs := flag.NewFlagSet("delete-supplier", flag.ExitOnError)
	id := fs.Uint("id", 0, "internal supplier row id (required)")
	fs.Parse(args)

	if err := repo.DeleteSupplier(ctx, uint(*id)); err != nil {
		fatal(ctx, logg, "delete supplier", err)
	}
	fmt.Printf("supplier %d deleted along with its products\n", *id)
}

func runStats(ctx context.Context, logg *logger.Logger, repo *catalogdb.Repository) {
	stats, err := repo.Stats(ctx)
	if err != nil {
		fatal(ctx, logg, "stats", err)
	}
	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		fatal(ctx, logg, "encode stats", err)
	}
	fmt.Println(string(out))
}

func fatal(ctx context.Context, logg *logger.Logger, step string, err error) {
	logg.Error(ctx, step, err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
