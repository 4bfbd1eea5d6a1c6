package main

// export-missing is a headless exporter: it loads a link CSV and writes
// the missing-anchor report without launching the dashboard.

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/CaVaRT/internal-linking-dashboard/internal/db"
	"github.com/CaVaRT/internal-linking-dashboard/internal/linkgraph"
	"github.com/CaVaRT/internal-linking-dashboard/internal/loader"
	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
	"github.com/CaVaRT/internal-linking-dashboard/internal/ui"
)

func main() {
	csvFlag := flag.String("csv", "", "Path to the internal-link CSV export")
	outFlag := flag.String("out", "", "Output filename (defaults to a timestamped name)")
	subdomainFlag := flag.String("subdomain", models.AllSubdomains, "Subdomain scope")
	flag.Parse()

	csvPath := *csvFlag
	if csvPath == "" && flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	if csvPath == "" {
		log.Fatal("no input file: pass -csv or a positional path")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "export-missing"})

	raws, err := loader.Load(loader.FromPath(csvPath), logger)
	if err != nil {
		log.Fatalf("failed to load %s: %v", csvPath, err)
	}

	links := linkgraph.Prepare(raws)
	database, err := db.BuildSession(links, linkgraph.ExpandAll(links))
	if err != nil {
		log.Fatalf("failed to build session: %v", err)
	}
	defer database.Close()

	rows, err := database.MissingAnchors(*subdomainFlag)
	if err != nil {
		log.Fatalf("failed to query missing anchors: %v", err)
	}

	outName := *outFlag
	if outName == "" {
		outName = ui.DefaultReportFilename(*subdomainFlag)
	}

	filename, err := ui.ExportMissingAnchors(rows, outName)
	if err != nil {
		log.Fatalf("failed to export: %v", err)
	}

	fmt.Printf("✓ Exported %d rows to %s\n", len(rows), filename)
}
