// Command catalog-import converts a WooCommerce product export into the
// store catalog. It writes the products as JSON, loads them into the
// database, or both.
//
//	catalog-import -in export.csv -out catalog.json
//	catalog-import -in export.csv -db -replace
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/nursery-store/catalog"
	"github.com/junaidrashid-git/nursery-store/config"
	"github.com/junaidrashid-git/nursery-store/logging"
	"github.com/junaidrashid-git/nursery-store/models"
)

type options struct {
	in      string
	out     string
	db      bool
	replace bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("catalog-import", flag.ContinueOnError)
	fs.StringVar(&o.in, "in", "", "WooCommerce CSV export to read")
	fs.StringVar(&o.out, "out", "", "write the parsed catalog as JSON to this file")
	fs.BoolVar(&o.db, "db", false, "upsert the products into the database from DATABASE_URL")
	fs.BoolVar(&o.replace, "replace", false, "with -db, replace the whole catalog instead of upserting")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.in == "" {
		return options{}, errors.New("-in is required")
	}
	if o.out == "" && !o.db {
		return options{}, errors.New("nothing to do: pass -out, -db or both")
	}
	return o, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	logger, err := logging.New(false)
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer logger.Sync()

	res, err := parseFile(opts.in, logger)
	if err != nil {
		logger.Fatal("❌ Import failed", zap.Error(err))
	}

	if opts.out != "" {
		if err := writeJSON(opts.out, res.Products); err != nil {
			logger.Fatal("❌ Failed to write catalog", zap.Error(err))
		}
		logger.Info("💾 catalog written", zap.String("file", opts.out), zap.Int("products", len(res.Products)))
	}

	if opts.db {
		cfg, err := config.Load()
		if err != nil {
			logger.Fatal("❌ Invalid configuration", zap.Error(err))
		}
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
		if err != nil {
			logger.Fatal("❌ DB connection failed", zap.Error(err))
		}
		if err := db.AutoMigrate(&models.Product{}); err != nil {
			logger.Fatal("❌ AutoMigrate failed", zap.Error(err))
		}
		created, updated, err := store(context.Background(), catalog.NewGormRepository(db), res.Products, opts.replace)
		if err != nil {
			logger.Fatal("❌ Failed to save catalog", zap.Error(err))
		}
		logger.Info("✅ catalog loaded",
			zap.Bool("replace", opts.replace), zap.Int("created", created), zap.Int("updated", updated))
	}
}

func parseFile(path string, logger *zap.Logger) (catalog.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.ImportResult{}, err
	}
	defer f.Close()

	res, err := catalog.ParseWooCommerce(f)
	if err != nil {
		return catalog.ImportResult{}, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, w := range res.Warnings {
		logger.Warn("⚠️ " + w)
	}
	logger.Info("📥 export parsed",
		zap.Int("products", len(res.Products)), zap.Int("skipped", res.Skipped), zap.Int("warnings", len(res.Warnings)))
	return res, nil
}

func writeJSON(path string, products []models.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, products); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(w io.Writer, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(products)
}

// store upserts products, or swaps the whole catalog when replace is set.
func store(ctx context.Context, repo catalog.Repository, products []models.Product, replace bool) (created, updated int, err error) {
	if replace {
		return len(products), 0, repo.ReplaceAll(ctx, products)
	}
	for i := range products {
		isNew, err := repo.Save(ctx, &products[i])
		if err != nil {
			return created, updated, fmt.Errorf("save %s: %w", products[i].ID, err)
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}
