package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// sanitizeInput removes null bytes and other invisible control characters from input
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1
		}
		return r
	}, s)
}

// PromptForCSVPath prompts the user for the path to an internal-link
// export file, validating that the file exists.
func PromptForCSVPath() (string, error) {
	var pathInput string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Internal Link Export").
				Description("Path to the crawler CSV export (e.g., inlinks.csv)").
				Placeholder("inlinks.csv").
				Value(&pathInput).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return fmt.Errorf("path cannot be empty")
					}
					info, err := os.Stat(s)
					if err != nil {
						return fmt.Errorf("cannot read %s", s)
					}
					if info.IsDir() {
						return fmt.Errorf("%s is a directory", s)
					}
					return nil
				}),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	return strings.TrimSpace(sanitizeInput(pathInput)), nil
}

// ConfirmExport asks the user to confirm writing the missing-anchor
// report for the given row count.
func ConfirmExport(rowCount int) (bool, error) {
	var confirm bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Export %d missing-anchor rows?", rowCount)).
				Description("Writes a CSV report in the current directory").
				Affirmative("Yes, export").
				Negative("Cancel").
				Value(&confirm),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirm, nil
}

// PromptForFilename asks the user for an export filename, defaulting
// and appending .csv when missing.
func PromptForFilename(defaultName string) (string, error) {
	var filename string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export Filename").
				Description("Filename for the CSV report").
				Placeholder(defaultName).
				Value(&filename),
		),
	).WithTheme(NewAppTheme())

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}

	filename = strings.TrimSpace(sanitizeInput(filename))
	if filename == "" {
		filename = defaultName
	}

	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		filename = filename + ".csv"
	}

	return filename, nil
}
