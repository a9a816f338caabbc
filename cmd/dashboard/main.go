package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"standupdash/internal/config"
	"standupdash/internal/dashboard"
	"standupdash/pkg/standupapi"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr    string
		apiBase string
		useReal bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Serve the standup dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.DashboardAddr
			}
			if !cmd.Flags().Changed("api-base-url") {
				apiBase = cfg.APIBaseURL
			}

			now := time.Now()
			initial := dashboard.NewState(now.UTC().Format(time.DateOnly), now)
			initial.UseMockData = !useReal

			dash := dashboard.New(
				dashboard.NewStore(initial),
				standupapi.NewClient(apiBase),
				dashboard.Options{MockDelay: cfg.MockDelay},
			)
			go dash.Load(context.Background())

			slog.Info("dashboard listening", "addr", addr, "api_base_url", apiBase, "mock", !useReal)
			return dashboard.NewServer(dash).Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultDashAddr, "Address to serve the dashboard on")
	cmd.Flags().StringVar(&apiBase, "api-base-url", config.DefaultAPIBaseURL, "Base URL of the standup API")
	cmd.Flags().BoolVar(&useReal, "real", false, "Start with real data instead of the mock dataset")

	return cmd
}
