// Command matchctl drives the engine from a terminal against a local badger directory.
// It must not run while matchd holds the same directory.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"swipe-lab/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

type app struct {
	config internal.Config
	log    *slog.Logger
	db     *badger.DB
	stack  *internal.Stack
}

var (
	envFile string
	current app

	rootCmd = &cobra.Command{
		Use:           "matchctl",
		Short:         "Publish profiles, browse feeds and swipe from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	// PostRun hooks are skipped on failure, badger must be closed either way
	if cerr := closeEngine(); cerr != nil && err == nil {
		err = cerr
	}
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "matchctl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file loaded before the environment is read")
	rootCmd.AddCommand(publishCmd, nextCmd, swipeCmd, resetCmd, depthCmd, inspectCmd, dispatchCmd)
}

// loadConfig reads the dotenv file if present then the environment.
func loadConfig() (internal.Config, error) {
	_ = godotenv.Load(envFile)
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return config, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

// openEngine is the PreRunE of every command touching the engine.
func openEngine(cmd *cobra.Command, _ []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	stack, err := internal.BuildStack(cmd.Context(), config, db, log)
	if err != nil {
		_ = db.Close()
		return err
	}
	current = app{config: config, log: log, db: db, stack: stack}
	return nil
}

func closeEngine() error {
	var err error
	if current.stack != nil {
		err = current.stack.Close()
	}
	if current.db != nil {
		if cerr := current.db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	current = app{}
	return err
}
