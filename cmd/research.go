package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/skylens/tailtrace/models"
	"github.com/skylens/tailtrace/utils"
)

// RunResearch executes one research run from the command line and prints a
// human-readable summary. When outputPath is non-empty the full result is
// also written there as JSON.
func RunResearch(nNumber, outputPath string) error {
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	usecase := NewUsecases(ctx).NewResearchUsecase()

	result, err := usecase.Research(ctx, nNumber)
	if err != nil {
		return err
	}

	printSummary(result)

	if outputPath != "" {
		if err := writeResults(outputPath, result); err != nil {
			return err
		}
		fmt.Printf("\nFull result written to %s\n", outputPath)
	}
	return nil
}

// RunBatch researches every n-number listed in inputPath, one per line.
// Blank lines and lines starting with "#" are skipped.
func RunBatch(inputPath, outputPath string) error {
	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	f, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, "could not open batch input file")
	}
	defer f.Close()

	var nNumbers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		nNumbers = append(nNumbers, line)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "could not read batch input file")
	}
	if len(nNumbers) == 0 {
		return errors.Wrap(models.BadParameterError, "batch input file lists no n-numbers")
	}

	usecase := NewUsecases(ctx).NewResearchUsecase()
	results := usecase.BatchResearch(ctx, nNumbers)

	for i, result := range results {
		if i > 0 {
			fmt.Println(strings.Repeat("-", 60))
		}
		printSummary(result)
	}

	if outputPath != "" {
		if err := writeResults(outputPath, results); err != nil {
			return err
		}
		fmt.Printf("\nFull results written to %s\n", outputPath)
	}
	return nil
}

func printSummary(result models.ResearchResult) {
	fmt.Printf("=== %s ===\n", result.NNumber)
	fmt.Printf("Status: %s\n", result.Status)

	if result.Status == models.ResearchStatusFailed {
		for _, msg := range result.Errors {
			fmt.Printf("Error: %s\n", msg)
		}
		return
	}

	if result.Aircraft != nil {
		fmt.Printf("Owner: %s\n", result.Aircraft.OwnerName)
		if result.Aircraft.Manufacturer != "" || result.Aircraft.Model != "" {
			fmt.Printf("Aircraft: %s %s\n", result.Aircraft.Manufacturer, result.Aircraft.Model)
		}
	}
	if result.Owner != nil {
		fmt.Printf("Entity type: %s\n", result.Owner.EntityType)
	}
	if len(result.CorporateEntities) > 0 {
		fmt.Printf("Corporate matches: %d\n", len(result.CorporateEntities))
	}
	if result.PrimaryContact != nil {
		fmt.Printf("Decision maker: %s (%s, confidence %d)\n",
			result.PrimaryContact.Name, result.PrimaryContact.Role, result.PrimaryContact.Confidence)
	}

	fmt.Printf("Confidence: %d/100", result.ConfidenceScore)
	if result.NeedsHumanReview {
		fmt.Print("  [needs human review]")
	}
	fmt.Println()

	for _, recommendation := range result.Recommendations {
		fmt.Printf("  - %s\n", recommendation)
	}
}

func writeResults(path string, payload any) error {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, raw, 0o644), "could not write output file")
}
