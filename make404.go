package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var make404Cmd = &cobra.Command{
	Use:   "make-404",
	Short: "Copy index.html to 404.html for static hosts",
	Long: `Static hosts such as GitHub Pages answer unknown paths with 404.html.
Copying the single page there keeps deep links working without the
serve command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dest, err := make404(cfg.SiteDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s for SPA fallback.\n", dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(make404Cmd)
}

func make404(dir string) (string, error) {
	src := filepath.Join(dir, "index.html")
	dest := filepath.Join(dir, "404.html")

	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s not found, did the build run?", src)
		}
		return "", err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	return dest, nil
}
