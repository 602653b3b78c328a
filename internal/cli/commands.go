package cli

import (
	"github.com/spf13/cobra"

	"babysteps/internal/config"
)

var (
	cfgPath string

	rootCmd = &cobra.Command{
		Use:           "babysteps",
		Short:         "A child development companion with a built-in chat assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(childrenCmd)
	rootCmd.AddCommand(docsCmd)

	childrenCmd.AddCommand(childrenAddCmd)
	childrenCmd.AddCommand(childrenListCmd)
	childrenCmd.AddCommand(childrenRemoveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadApp() (*App, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, _, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	return buildApp(cfg)
}
