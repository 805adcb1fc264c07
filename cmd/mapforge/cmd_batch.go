package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mapforge/internal/generator"
)

var (
	batchFile        string
	batchOutDir      string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate maps for every description in a file",
	Long: `batch reads one description per line from --file and writes one JSON
result per line to --out. Calls run concurrently with independent attempt
state; a failed line produces its fallback map, not an aborted batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		credential, err := resolveCredential()
		if err != nil {
			return err
		}
		gen, err := buildGenerator()
		if err != nil {
			return err
		}

		f, err := os.Open(batchFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", batchFile, err)
		}
		defer f.Close()

		var descriptions []string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				descriptions = append(descriptions, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read %s: %w", batchFile, err)
		}
		if len(descriptions) == 0 {
			return fmt.Errorf("no descriptions found in %s", batchFile)
		}

		if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", batchOutDir, err)
		}

		group, ctx := errgroup.WithContext(cmd.Context())
		group.SetLimit(batchConcurrency)
		for i, description := range descriptions {
			group.Go(func() error {
				result, err := gen.Generate(ctx, generator.Request{
					Description: description,
					Width:       genWidth,
					Height:      genHeight,
					Credential:  credential,
					Archetype:   genArchetype,
				})
				if err != nil {
					// Only auth failures reach here; abort the batch.
					return err
				}
				recordHistory(description, result)

				out := filepath.Join(batchOutDir, fmt.Sprintf("map_%03d.json", i+1))
				data, err := json.MarshalIndent(resultJSON(result), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode result for %q: %w", description, err)
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}
				logger.Info("batch map written",
					zap.String("file", out),
					zap.Bool("fallback", result.Fallback))
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return err
		}
		fmt.Printf("Wrote %d maps to %s\n", len(descriptions), batchOutDir)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "file with one description per line (required)")
	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "maps", "output directory for JSON results")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 3, "max concurrent generation calls")
	batchCmd.Flags().IntVarP(&genWidth, "width", "W", 16, "grid width in tiles")
	batchCmd.Flags().IntVarP(&genHeight, "height", "H", 16, "grid height in tiles")
	batchCmd.Flags().StringVarP(&genArchetype, "archetype", "a", "", "archetype hint for every map")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}
