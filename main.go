package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	siteDir string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Host and check the portfolio site",
	Long: `portfolio hosts the single-page portfolio site and its WebAssembly
front end, and checks that the page markup matches the configured
navigation sections.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&siteDir, "dir", "", "site directory (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
