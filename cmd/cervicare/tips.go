package main

import (
	"github.com/spf13/cobra"

	"github.com/cervicare/cervicare/pkg/surface"
)

func newTipsCmd(g *globalOpts) *cobra.Command {
	var lang, color string

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Show preventive cervical health tips",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configPath)
			if err != nil {
				return err
			}
			lang = firstNonEmpty(lang, cfg.Output.Language, "en")
			color = firstNonEmpty(color, cfg.Output.Color, "auto")

			merged := cfg.Output
			merged.Language, merged.Color = lang, color
			if err := merged.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return surface.RenderTips(out, lang, surface.ColorEnabled(color, out))
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Message language: en or hi (default from config)")
	cmd.Flags().StringVar(&color, "color", "", "Color output: auto, always or never (default from config)")

	return cmd
}
