// Command seed populates a fresh data directory with a small demo catalog
// and customer directory, then writes the snapshot and exits.
package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/infrastructure/ledger"
	"github.com/inventrack/inventrack-api/pkg/config"
	"github.com/inventrack/inventrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := ledger.Open(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.Dir).Msg("open ledger store")
	}

	existing, err := store.Products().List()
	if err != nil {
		log.Fatal().Err(err).Msg("read catalog")
	}
	if len(existing) > 0 {
		log.Info().Int("products", len(existing)).Msg("data directory already has a catalog, nothing to do")
		return
	}

	now := time.Now()
	products := []*entity.Product{
		demoProduct("Premium Laptop", "Electronics", "LAP-001", "8471", "45000", 18, 25, 5, "Tech Distributors Ltd", "High-performance laptop for business", "piece", now),
		demoProduct("Wireless Mouse", "Electronics", "MOU-001", "8471", "800", 18, 150, 20, "Tech Distributors Ltd", "Ergonomic wireless mouse", "piece", now),
		demoProduct("Office Chair", "Furniture", "CHR-001", "9401", "5500", 18, 8, 10, "Furniture World", "Ergonomic office chair with lumbar support", "piece", now),
		demoProduct("Printing Paper A4", "Stationery", "PAP-001", "4802", "250", 12, 200, 50, "Paper Supplies Co", "Premium quality A4 paper", "ream", now),
		demoProduct("LED Monitor 24\"", "Electronics", "MON-001", "8528", "9500", 18, 3, 5, "Tech Distributors Ltd", "Full HD LED monitor", "piece", now),
	}
	for _, p := range products {
		if err := store.Products().Create(p); err != nil {
			log.Fatal().Err(err).Str("sku", p.SKU).Msg("seed product")
		}
	}

	customers := []*entity.Customer{
		{
			ID:        uuid.New().String(),
			Name:      "Rajesh Kumar",
			Email:     "rajesh@example.com",
			Phone:     "+91 98765 43210",
			Address:   "Mumbai, Maharashtra",
			State:     "Maharashtra",
			CreatedAt: now,
		},
		{
			ID:        uuid.New().String(),
			Name:      "Priya Sharma",
			Email:     "priya@example.com",
			Phone:     "+91 87654 32109",
			GSTNumber: "27AABCU9603R1ZM",
			Address:   "Pune, Maharashtra",
			State:     "Maharashtra",
			CreatedAt: now,
		},
	}
	for _, c := range customers {
		if err := store.Customers().Create(c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("seed customer")
		}
	}

	if err := store.Flush(); err != nil {
		log.Fatal().Err(err).Msg("write snapshot")
	}
	log.Info().
		Int("products", len(products)).
		Int("customers", len(customers)).
		Str("dir", cfg.Storage.Dir).
		Msg("seed complete")
}

func demoProduct(name, category, sku, hsn, price string, gstRate, stock, minStock int64, supplier, description, unit string, now time.Time) *entity.Product {
	return &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Category:      category,
		SKU:           sku,
		HSNCode:       hsn,
		Price:         decimal.RequireFromString(price),
		GSTRate:       decimal.NewFromInt(gstRate),
		Stock:         stock,
		MinStockLevel: minStock,
		SupplierName:  supplier,
		Description:   description,
		Unit:          unit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
