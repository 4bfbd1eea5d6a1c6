package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/CaVaRT/internal-linking-dashboard/internal/db"
	"github.com/CaVaRT/internal-linking-dashboard/internal/linkgraph"
	"github.com/CaVaRT/internal-linking-dashboard/internal/loader"
	"github.com/CaVaRT/internal-linking-dashboard/internal/models"
	"github.com/CaVaRT/internal-linking-dashboard/internal/ui"
)

const csvEnvVar = "LINKDASH_CSV"

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	csvFlag := flag.String("csv", "", "Path to the internal-link CSV export")
	subdomainFlag := flag.String("subdomain", models.AllSubdomains, "Subdomain scope for report mode")
	reportFlag := flag.Bool("report", false, "Print a styled report instead of launching the dashboard")
	flag.Parse()

	// Also accept the path as a positional argument
	csvPath := *csvFlag
	if csvPath == "" && flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	if csvPath == "" {
		csvPath = os.Getenv(csvEnvVar)
	}
	if csvPath == "" {
		var err error
		csvPath, err = ui.PromptForCSVPath()
		if err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "linkdash",
	})

	database, err := buildSession(csvPath, logger, !*reportFlag)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	defer database.Close()

	sourceName := filepath.Base(csvPath)

	if *reportFlag {
		if err := printReport(database, sourceName, *subdomainFlag); err != nil {
			ui.PrintError(err.Error())
			os.Exit(1)
		}
		return
	}

	subdomain, err := chooseSubdomain(database, *subdomainFlag)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
	if subdomain == "" {
		return
	}

	if err := ui.RunDashboard(database, sourceName, subdomain); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

// chooseSubdomain resolves the initial scope: an explicit -subdomain
// flag wins, otherwise the selector runs. Returns "" when the user
// cancels out of the selector.
func chooseSubdomain(database *db.DB, flagValue string) (string, error) {
	if flagValue != "" && flagValue != models.AllSubdomains {
		return flagValue, nil
	}

	subs, err := database.Subdomains()
	if err != nil {
		return "", err
	}
	if len(subs) <= 1 {
		return models.AllSubdomains, nil
	}

	items := append([]string{models.AllSubdomains}, subs...)
	value, err := ui.RunSelectorWithValue(ui.SelectorConfig{
		Title:    "Select Subdomain",
		Subtitle: fmt.Sprintf("%d subdomains found", len(subs)),
		Items:    items,
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

// buildSession loads the CSV, derives the decorated and expanded rows,
// and indexes them into a fresh in-memory session database.
func buildSession(csvPath string, logger *log.Logger, withSpinner bool) (*db.DB, error) {
	var database *db.DB
	var buildErr error

	build := func() {
		raws, err := loader.Load(loader.FromPath(csvPath), logger)
		if err != nil {
			buildErr = err
			return
		}
		links := linkgraph.Prepare(raws)
		anchors := linkgraph.ExpandAll(links)
		database, buildErr = db.BuildSession(links, anchors)
	}

	if withSpinner {
		if err := ui.RunWithSpinner(fmt.Sprintf("Loading %s...", filepath.Base(csvPath)), build); err != nil {
			return nil, err
		}
	} else {
		build()
	}
	if buildErr != nil {
		return nil, buildErr
	}
	return database, nil
}

// printReport writes the full analysis to stdout for headless use.
func printReport(database *db.DB, sourceName, subdomain string) error {
	summary, err := database.Summary(subdomain)
	if err != nil {
		return err
	}
	ui.PrintSessionHeader(sourceName, subdomain, summary)

	hist, err := database.VariabilityHistogram(subdomain)
	if err != nil {
		return err
	}
	ui.PrintHistogram(hist)

	for _, b := range hist {
		if b.Count == 0 {
			continue
		}
		stats1, total1, err := database.Component1Breakdown(subdomain, string(b.Bucket))
		if err != nil {
			return err
		}
		ui.PrintComponentTable(fmt.Sprintf("First Path Component, bucket %s", b.Bucket), stats1, total1)

		stats2, total2, err := database.Component2Breakdown(subdomain, string(b.Bucket))
		if err != nil {
			return err
		}
		ui.PrintComponentTable(fmt.Sprintf("Second Path Component, bucket %s", b.Bucket), stats2, total2)
	}

	missing, err := database.MissingAnchors(subdomain)
	if err != nil {
		return err
	}
	ui.PrintMissingSummary(len(missing))

	return nil
}
