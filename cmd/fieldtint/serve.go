package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/fieldtint/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tool API over stdin/stdout",
	Long: `Runs the line-delimited JSON-RPC tool server on stdin/stdout. Stdout
carries protocol traffic only; logs go to stderr. The session ends when
stdin is closed.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	slog.Info("serving tool API on stdio", "version", Version)
	return server.New(os.Stdin, os.Stdout).Run()
}
