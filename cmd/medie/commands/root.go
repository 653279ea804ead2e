package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/config"
)

var (
	// Global flags
	env     string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "medie",
	Short: "Weighted grade average calculator for UTCN students",
	Long: `Calculator de medie - weighted grade average calculator for UTCN students.

Downloads the curriculum plan of the Faculty of Automation and Computer
Science, lets you pick the subjects you are taking, collects your grades
and calculates the weighted semester average.

Example:
  medie calculate
  medie calculate --year 3 --spec CTI
  medie curriculum show --year 2 --spec AU
  medie curriculum plans`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if env != "" {
		if env != "development" && env != "staging" && env != "production" {
			return nil, fmt.Errorf("invalid --env value: %s (must be development, staging, or production)", env)
		}
		cfg.Env = env
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}
