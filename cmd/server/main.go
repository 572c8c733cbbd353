package main

import (
	"fmt"
	"log"

	"github.com/TeCom0/InvoiceAIService/internal/analyzer/azure"
	"github.com/TeCom0/InvoiceAIService/internal/config"
	"github.com/TeCom0/InvoiceAIService/internal/fetch"
	"github.com/TeCom0/InvoiceAIService/internal/handler"
	"github.com/TeCom0/InvoiceAIService/internal/router"
	"github.com/TeCom0/InvoiceAIService/internal/service"
)

// @title Invoice AI Service API
// @version 1.0
// @description Analyzes invoice documents with an external document-intelligence service and returns a normalized invoice.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize external collaborators
	analyzer := azure.NewAnalyzer(&cfg.Analyzer)
	fetcher := fetch.NewHTTPFetcher(&cfg.Fetch)

	// Initialize services
	invoiceSvc := service.NewInvoiceService(analyzer, fetcher, cfg.Fetch.MaxFileSizeMB)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	healthH := handler.NewHealthHandler(&cfg.Analyzer)

	// Setup router
	r := router.Setup(cfg, invoiceH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
