package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/adapter/postgres"
	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/config"
)

var (
	dsn     string
	timeout time.Duration
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "coachctl",
	Short:         "Operator tooling for the coaching backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL DSN (default $DATABASE_DSN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall command timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// connect opens a small pool for one-shot commands.
func connect(cmd *cobra.Command) (context.Context, *pgxpool.Pool, func(), error) {
	if dsn == "" {
		return nil, nil, nil, errors.New("database DSN is required (--dsn or DATABASE_DSN)")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        2,
		MinConns:        0,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	})
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return ctx, pool, func() {
		pool.Close()
		cancel()
	}, nil
}
