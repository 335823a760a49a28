package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "bindex",
	Short: "Versioned invoice index CLI",
	Long:  "CLI for indexing bindle invoices and querying them by name and version range.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/bindex/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "data directory (default: ~/.local/share/bindex)")
	rootCmd.PersistentFlags().String("index", "default", "index name")

	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("index", rootCmd.PersistentFlags().Lookup("index"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BINDEX")
	viper.AutomaticEnv()
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("index", "default")

	viper.ReadInConfig()
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bindex")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "bindex")
	}
	return ".bindex"
}

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "bindex")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "bindex")
	}
	return ".bindex"
}

func snapshotPath() string {
	return filepath.Join(viper.GetString("data_dir"), "index", viper.GetString("index")+".json.zst")
}
