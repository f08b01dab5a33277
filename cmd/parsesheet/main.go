package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/config"
	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/importer"
	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/server"
	"github.com/barswebadmin/BigAppleRecSports-sub001/internal/util"
)

var (
	filePath  = flag.String("file", "", "parse a workbook once and print the JSON report")
	sheetName = flag.String("sheet", "", "sheet name (default: first sheet, or config value)")
	port      = flag.Int("port", 0, "review server port (overrides config.toml)")
	devMode   = flag.Bool("dev", false, "development mode (no browser, gin debug)")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *sheetName != "" {
		cfg.Sheet.Name = *sheetName
	}

	if *filePath != "" {
		runOnce(cfg, *filePath)
		return
	}

	runServer(cfg)
}

// runOnce parses the workbook, streams progress to stderr, and prints the
// final report as JSON on stdout.
func runOnce(cfg *config.AppConfig, path string) {
	coordinator := importer.NewCoordinator()

	var report interface{}
	for ev := range coordinator.Import(importer.ImportOptions{
		FilePath:   path,
		SheetName:  cfg.Sheet.Name,
		HeaderRows: cfg.Sheet.HeaderRows,
	}) {
		switch ev.Type {
		case "done":
			report = ev.Data
		case "error":
			log.Fatalf("parse failed: %s", ev.Message)
		default:
			fmt.Fprintf(os.Stderr, "%s\n", ev.Message)
		}
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	fmt.Println(string(out))
}

// runServer starts the review server and opens the browser.
func runServer(cfg *config.AppConfig) {
	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		log.Printf("review server listening on %s", addr)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("could not open a browser, visit %s\n", url)
		}
	} else {
		fmt.Printf("dev mode: visit %s\n", url)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("shutting down")
}
