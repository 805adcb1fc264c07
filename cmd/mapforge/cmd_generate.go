package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mapforge/internal/generator"
	"mapforge/internal/llm"
	"mapforge/internal/store"
)

var (
	genWidth     int
	genHeight    int
	genArchetype string
	genAPIKey    string
	genProvider  string
	genModel     string
	genAttempts  int
	genJSON      bool
	genQuiet     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <description>",
	Short: "Generate a tile map from a free-text description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")

		credential, err := resolveCredential()
		if err != nil {
			return err
		}

		gen, err := buildGenerator()
		if err != nil {
			return err
		}

		var onProgress func(string)
		if !genQuiet && !genJSON {
			onProgress = func(status string) {
				fmt.Fprintln(os.Stderr, status)
			}
		}

		result, err := gen.Generate(cmd.Context(), generator.Request{
			Description: description,
			Width:       genWidth,
			Height:      genHeight,
			Credential:  credential,
			Archetype:   genArchetype,
			OnProgress:  onProgress,
		})
		if err != nil {
			return err
		}

		recordHistory(description, result)

		if genJSON {
			return json.NewEncoder(os.Stdout).Encode(resultJSON(result))
		}

		fmt.Println(renderASCII(result.Grid))
		fmt.Println()
		fmt.Println("Interpretation:", result.Metadata.Interpretation)
		if result.Metadata.Archetype != "" {
			fmt.Println("Archetype:", result.Metadata.Archetype)
		}
		if len(result.Metadata.Features) > 0 {
			fmt.Println("Features:", strings.Join(result.Metadata.Features, ", "))
		}
		if result.Fallback {
			fmt.Println("Note: the model never produced a valid map; this is the fallback layout.")
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&genWidth, "width", "W", 16, "grid width in tiles")
	generateCmd.Flags().IntVarP(&genHeight, "height", "H", 16, "grid height in tiles")
	generateCmd.Flags().StringVarP(&genArchetype, "archetype", "a", "", "archetype hint (see 'mapforge archetypes')")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "API key (overrides env and keystore)")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "completion provider: openai, anthropic, gemini")
	generateCmd.Flags().StringVar(&genModel, "model", "", "model identifier")
	generateCmd.Flags().IntVar(&genAttempts, "attempts", 0, "max completion attempts, including the first")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "emit the result as JSON")
	generateCmd.Flags().BoolVarP(&genQuiet, "quiet", "q", false, "suppress progress output")
	rootCmd.AddCommand(generateCmd)
}

// resolveCredential checks the flag, then the environment, then the
// keystore. The credential is handed to the generation core per call;
// nothing here persists it implicitly.
func resolveCredential() (string, error) {
	if genAPIKey != "" {
		return genAPIKey, nil
	}
	if v := os.Getenv("MAPFORGE_API_KEY"); v != "" {
		return v, nil
	}
	path, err := storePath()
	if err != nil {
		return "", err
	}
	s, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer s.Close()
	key, ok, err := s.GetKey(keyName())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no API key found: pass --api-key, set MAPFORGE_API_KEY, or run 'mapforge key set'")
	}
	return key, nil
}

func keyName() string {
	provider := genProvider
	if provider == "" {
		provider = cfg.Provider
	}
	return "api_key:" + provider
}

func buildGenerator() (*generator.Generator, error) {
	provider := cfg.Provider
	if genProvider != "" {
		provider = genProvider
	}
	model := cfg.Model
	if genModel != "" {
		model = genModel
	}

	client, err := llm.NewClient(llm.Provider(provider), llm.Options{
		Model:   model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.AttemptTimeout(),
	})
	if err != nil {
		return nil, err
	}

	attempts := cfg.MaxAttempts
	if genAttempts > 0 {
		attempts = genAttempts
	}

	return generator.New(client,
		generator.WithMaxAttempts(attempts),
		generator.WithAttemptTimeout(cfg.AttemptTimeout()),
		generator.WithLogger(logger),
	), nil
}

// recordHistory is best-effort: a broken history database never fails a
// generation that already succeeded.
func recordHistory(description string, result *generator.Result) {
	path, err := storePath()
	if err != nil {
		logger.Debug("history skipped", zap.Error(err))
		return
	}
	s, err := store.Open(path)
	if err != nil {
		logger.Debug("history skipped", zap.Error(err))
		return
	}
	defer s.Close()
	err = s.RecordGeneration(store.HistoryEntry{
		ID:             result.GenerationID,
		Description:    description,
		Width:          result.Grid.Width(),
		Height:         result.Grid.Height(),
		Archetype:      result.Metadata.Archetype,
		Attempts:       result.Attempts,
		Fallback:       result.Fallback,
		Interpretation: result.Metadata.Interpretation,
	})
	if err != nil {
		logger.Debug("history write failed", zap.Error(err))
	}
}

type resultPayload struct {
	Grid     [][]int  `json:"grid"`
	Metadata metaJSON `json:"metadata"`
	Attempts int      `json:"attempts"`
	Fallback bool     `json:"fallback"`
}

type metaJSON struct {
	Interpretation string   `json:"interpretation"`
	Archetype      string   `json:"archetype,omitempty"`
	Features       []string `json:"features"`
}

func resultJSON(result *generator.Result) resultPayload {
	cells := make([][]int, len(result.Grid))
	for i, row := range result.Grid {
		cells[i] = make([]int, len(row))
		for j, t := range row {
			cells[i][j] = int(t)
		}
	}
	features := result.Metadata.Features
	if features == nil {
		features = []string{}
	}
	return resultPayload{
		Grid: cells,
		Metadata: metaJSON{
			Interpretation: result.Metadata.Interpretation,
			Archetype:      result.Metadata.Archetype,
			Features:       features,
		},
		Attempts: result.Attempts,
		Fallback: result.Fallback,
	}
}
