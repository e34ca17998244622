package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"portfoliotracker/cmd"
	"portfoliotracker/internal"
	"portfoliotracker/internal/logger"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "script",
	Short: "Operational helpers for the portfolio tracker",
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [dir]",
	Short: "Apply sql migration files in lexical order",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		dir := "migrations"
		if len(args) > 0 {
			dir = args[0]
		}

		secrets, err := internal.LoadSecrets()
		if err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
		dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		defer dbConn.Close()

		files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
		if err != nil {
			return err
		}
		sort.Strings(files)

		for _, file := range files {
			contents, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			if _, err := dbConn.Exec(string(contents)); err != nil {
				return fmt.Errorf("failed to apply %s: %w", file, err)
			}
			logger.Info("applied %s", file)
		}

		return nil
	},
}

var getPortfolioCmd = &cobra.Command{
	Use:   "get-portfolio <id>",
	Short: "Print a portfolio with its holdings",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		portfolioID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid portfolio id: %w", err)
		}

		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		portfolio, err := handler.PortfolioService.GetPortfolio(c.Context(), portfolioID)
		if err != nil {
			return err
		}

		internal.Pprint(portfolio.Holdings())
		return nil
	},
}

func main() {
	rootCmd.AddCommand(migrateCmd, getPortfolioCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
