// Package main is the gurukul CLI: generate a course from a topic,
// browse and export stored courses, and study them session by session.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/meera/gurukul/internal/backend"
	"github.com/meera/gurukul/internal/store"
	"github.com/meera/gurukul/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gurukul",
	Short: "Grow structured courses from a free-text topic",
	Long: `gurukul turns a topic into a multi-level course document (modules,
sessions, sections and assessments) by prompting a text-generation
backend and parsing its markdown replies into a validated structure.

Finished courses are stored locally; use list, show, export and study
to work with them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gurukul.yaml or ~/.config/gurukul/gurukul.yaml)")
	rootCmd.AddCommand(generateCmd, listCmd, showCmd, exportCmd, studyCmd)
}

// newBackend builds the completion backend from the first enabled
// provider in the config.
func newBackend() (backend.Backend, error) {
	name, p := cfg.DefaultProvider()
	if name == "" {
		return nil, errors.New("no enabled provider found in config")
	}

	var (
		model llms.Model
		err   error
	)
	switch name {
	case "openai", "openrouter":
		opts := []openai.Option{
			openai.WithToken(p.APIKey),
			openai.WithModel(p.Model),
		}
		if p.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(p.BaseURL))
		}
		model, err = openai.New(opts...)
	case "ollama":
		opts := []ollama.Option{ollama.WithModel(p.Model)}
		if p.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(p.BaseURL))
		}
		model, err = ollama.New(opts...)
	default:
		return nil, fmt.Errorf("provider %s not supported", name)
	}
	if err != nil {
		return nil, err
	}

	return backend.NewLLM(model), nil
}

func openStore() (*store.Store, error) {
	return store.Open(cfg.Storage.Path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
