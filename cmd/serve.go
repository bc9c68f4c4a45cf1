package cmd

import (
	"github.com/spf13/cobra"

	"edastat/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP quality service",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		if !cmd.Flags().Changed("port") {
			servePort = c.ServerPort
		}
		opt := server.Options{
			Thresholds:      c.QualityThresholds(),
			MaxUploadBytes:  c.MaxUploadBytes,
			RateLimitPerSec: c.RateLimitPerSec,
			Debug:           debug,
		}
		return server.Run(servePort, opt)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
}
