package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "authentic",
	Short:   "Content service for the guadalupeabrile portfolio site",
	Long: `Authentic serves and mutates the photography gallery document and
relays image uploads to local disk or an S3-compatible object store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		readConfig(cmd)
		setupLogging()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "document storage directory (default: ./storage, env: AUTHENTIC_STORAGE_DATA_DIR)")
	rootCmd.PersistentFlags().String("uploads-dir", "", "uploads directory (default: ./public/uploads, env: AUTHENTIC_STORAGE_UPLOADS_DIR)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
