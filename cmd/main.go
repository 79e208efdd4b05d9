// cmd/main.go
package main

import (
	"log"

	"go-bank-console/app"
	"go-bank-console/config"
	"go-bank-console/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	logger.Init()

	cmd := &cobra.Command{
		Use:   "bank-console",
		Short: "Administrative web console for the banking backend",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmd.Flags().GetString("config-dir")
			if err != nil {
				return err
			}
			return config.LoadConfig(dir)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
		SilenceUsage: true,
	}

	if err := setupFlags(cmd); err != nil {
		log.Fatal(err)
	}

	if err := cmd.Execute(); err != nil {
		logger.Log.Fatalf("bank-console: %v", err)
	}
}

func setupFlags(cmd *cobra.Command) error {
	fs := cmd.Flags()

	fs.String("config-dir", ".", "Directory containing config.yml")
	fs.String("port", "", "Port the console listens on")
	fs.String("backend-url", "", "Base URL of the banking backend API")
	fs.String("log-level", "", "Log level (debug, info, warn, error)")

	bindings := map[string]string{
		"server.port":      "port",
		"backend.base_url": "backend-url",
		"log.level":        "log-level",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}
