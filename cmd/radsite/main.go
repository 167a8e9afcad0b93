package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Mahdeabusaleh2/radsite/config"
	srv "github.com/Mahdeabusaleh2/radsite/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:   "radsite",
		Short: "Educational site on ionizing-radiation exposure",
	}
	root.AddCommand(serveCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCMD() *cobra.Command {
	var addr string
	var cfgPath string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			if addr != "" {
				cfg.Server.Address = addr
			}
			return srv.Run(cfg)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serve.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is ./config.yaml)")
	return serve
}
