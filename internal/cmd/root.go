package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/taskdeck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Terminal client for a remote task-execution service",
	Long: `Taskdeck keeps a terminal view synchronized with a remote service
that runs tasks autonomously. It polls the service for the task list,
tails per-task logs, and submits, cancels, or retries tasks on request.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/taskdeck/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "base URL of the task service (overrides config)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("server.base_url", rootCmd.PersistentFlags().Lookup("server"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/taskdeck")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TASKDECK")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TASKDECK_POLL_LIST_INTERVAL_MS for poll.list_interval_ms
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
