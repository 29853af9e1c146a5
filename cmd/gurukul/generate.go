package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/meera/gurukul/internal/course"
	"github.com/meera/gurukul/internal/generator"
	"github.com/meera/gurukul/internal/observability"
	"github.com/meera/gurukul/pkg/config"
)

var (
	generateLanguage string
	generateNoSave   bool
	generateWorkers  int
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a course for a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]

		language := generateLanguage
		if language == "" {
			language = cfg.Generator.Language
		}

		b, err := newBackend()
		if err != nil {
			return err
		}

		opts := optionsFromConfig(cfg.Generator)
		if generateWorkers > 0 {
			opts.Workers = generateWorkers
		}

		// Route log output through the terminal mutex so it never
		// tears a half-drawn progress bar.
		log.SetOutput(observability.NewTermWriter())
		observability.PrintBanner()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		pipeline := generator.New(b, observability.NewLogger(), opts)

		var (
			doc     *course.Document
			failure string
		)
		for evt := range pipeline.Generate(ctx, topic, language) {
			observability.PrintProgress(evt.Status, evt.Percent)
			switch evt.Type {
			case generator.EventFailure:
				failure = evt.Error
			case generator.EventComplete:
				doc = evt.Document
			}
		}
		observability.FinishProgress()

		if failure != "" {
			return errors.New(failure)
		}
		if doc == nil {
			return errors.New("generation was cancelled")
		}

		if generateNoSave {
			return nil
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		id, err := st.SaveCourse(doc)
		if err != nil {
			return err
		}
		fmt.Printf("Saved course %s (%d modules)\n", id, len(doc.Modules))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateLanguage, "language", "l", "", "course language (default from config)")
	generateCmd.Flags().BoolVar(&generateNoSave, "no-save", false, "do not store the generated course")
	generateCmd.Flags().IntVar(&generateWorkers, "workers", 0, "concurrent expansion workers (default from config)")
}

// optionsFromConfig maps the config block onto pipeline options. When
// validation is strict, the validator expects exactly the question
// count the prompts request.
func optionsFromConfig(g config.GeneratorConfig) generator.Options {
	opts := generator.DefaultOptions()
	if g.AssessmentQuestions > 0 {
		opts.AssessmentQuestions = g.AssessmentQuestions
	}
	opts.ClassifyByOpeningLine = g.ClassifyByOpeningLine
	if g.Lenient {
		opts.Limits = course.LenientLimits()
	} else {
		opts.Limits.Questions = opts.AssessmentQuestions
	}
	if g.Workers > 0 {
		opts.Workers = g.Workers
	}
	if g.MaxRetries > 0 {
		opts.MaxRetries = g.MaxRetries
	}
	return opts
}
