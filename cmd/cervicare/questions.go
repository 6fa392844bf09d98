package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cervicare/cervicare/pkg/questionnaire"
	"github.com/cervicare/cervicare/pkg/surface"
)

func newQuestionsCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions and their option keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return surface.RenderQuestions(cmd.OutOrStdout(), questionnaire.Schema(), outputFmt)
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func newTemplateCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "template FILE",
		Short: "Write a response file with every question marked skipped",
		Long: `Writes a response file (.yaml, .yml or .json) listing every question with
the answer "skipped", ready to be edited and passed to assess --responses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func runTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; pass --force to overwrite", path)
		}
	}

	var rs questionnaire.ResponseSet
	for _, id := range questionnaire.QuestionIDs() {
		rs.Set(id, string(questionnaire.Skipped))
	}
	if err := questionnaire.SaveResponses(path, &rs); err != nil {
		return err
	}
	slog.Info("wrote response template", "path", path)
	return nil
}
