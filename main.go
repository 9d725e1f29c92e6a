package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"loandash/internal"
	"loandash/internal/charts"
	"loandash/internal/config"
	"loandash/internal/dashboard"
	"loandash/internal/dataset"
	"loandash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger.SetLevel(internal.ParseLogLevel(appConfig.Log.Level))
	gin.SetMode(appConfig.Server.GinMode)

	// The dataset is loaded once; the server never starts without it
	ds, err := dataset.Load(appConfig.Data.File)
	if err != nil {
		log.Fatalf("Failed to load dataset %s: %v", appConfig.Data.File, err)
	}
	log.Printf("Loaded %d loan applications from %s", ds.Len(), ds.Source())

	exporter := charts.NewExporter(appConfig.Export.Dir, appConfig.Export.Enabled)
	dash := dashboard.New(ds, exporter, appConfig.Charts.HistogramBins)

	// Write the default view so the export files exist before the first visit
	if exporter.Enabled() {
		dash.Render(dash.DefaultState())
		log.Printf("Exported charts to %s", exporter.Dir())
	}

	server := ui.NewServer(dash, exporter)
	if err := server.Initialize(); err != nil {
		log.Fatalf("Failed to initialize UI server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx, ":"+appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
