package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/trabajos/core/cmd/api/commands"
)

// @title Trabajos API
// @version 1.0
// @description Minimal task tracking service with a REST API and embedded web client

// @host localhost:4000
// @BasePath /

func main() {
	rootCmd := &cobra.Command{
		Use:   "trabajos",
		Short: "Trabajos API Server",
		Long:  `Trabajos is a minimal task tracking service exposing a REST API over PostgreSQL together with an embedded single-page web client.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
