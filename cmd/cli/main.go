package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/buckpal/internal/infrastructure/config"
	"github.com/iho/buckpal/internal/infrastructure/postgres"
)

type cliOptions struct {
	baseURL string
	timeout time.Duration
}

// migrateFunc matches postgres.RunMigrations and postgres.RunMigrationsDown.
type migrateFunc func(databaseURL, migrationsPath string) error

var (
	migrateUp   migrateFunc = postgres.RunMigrations
	migrateDown migrateFunc = postgres.RunMigrationsDown
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "buckpal-cli",
		Short:         "BuckPal CLI tool",
		Long:          `A command line interface for sending money and querying balances through the BuckPal API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the BuckPal API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(sendCmd(opts), balanceCmd(opts), migrateCmd())

	return rootCmd
}

func sendCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "send SOURCE_ACCOUNT_ID TARGET_ACCOUNT_ID AMOUNT",
		Short: "Send money from one account to another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := fmt.Sprintf("%s/accounts/send/%s/%s/%s",
				strings.TrimRight(opts.baseURL, "/"),
				url.PathEscape(args[0]),
				url.PathEscape(args[1]),
				url.PathEscape(args[2]),
			)

			status, body, err := doRequest(opts, http.MethodPost, endpoint)
			if err != nil {
				return err
			}

			switch status {
			case http.StatusOK:
				fmt.Fprintf(cmd.OutOrStdout(), "Sent %s from account %s to account %s\n", args[2], args[0], args[1])
				return nil
			case http.StatusConflict:
				return fmt.Errorf("transfer rejected: account %s cannot cover %s", args[0], args[2])
			default:
				return fmt.Errorf("transfer failed (status %d): %s", status, errorMessage(body))
			}
		},
	}
}

func balanceCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance ACCOUNT_ID",
		Short: "Show the current balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := fmt.Sprintf("%s/accounts/%s/balance", strings.TrimRight(opts.baseURL, "/"), url.PathEscape(args[0]))

			status, body, err := doRequest(opts, http.MethodGet, endpoint)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return fmt.Errorf("balance query failed (status %d): %s", status, errorMessage(body))
			}

			var result struct {
				AccountID int64  `json:"account_id"`
				Balance   string `json:"balance"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %d balance: %s\n", result.AccountID, result.Balance)
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var databaseURL, migrationsPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Database URL (defaults to DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&migrationsPath, "path", "", "Migrations directory (defaults to MIGRATIONS_PATH)")

	run := func(apply migrateFunc, direction string) func(*cobra.Command, []string) error {
		return func(c *cobra.Command, _ []string) error {
			dbURL, path, err := migrationTarget(databaseURL, migrationsPath)
			if err != nil {
				return err
			}
			if err := apply(dbURL, path); err != nil {
				return fmt.Errorf("migrate %s: %w", direction, err)
			}
			fmt.Fprintf(c.OutOrStdout(), "Migrations %s complete\n", direction)
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  run(migrateUp, "up"),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			Args:  cobra.NoArgs,
			RunE:  run(migrateDown, "down"),
		},
	)

	return cmd
}

// migrationTarget fills unset flags from the environment configuration.
func migrationTarget(databaseURL, migrationsPath string) (string, string, error) {
	if databaseURL != "" && migrationsPath != "" {
		return databaseURL, migrationsPath, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", "", fmt.Errorf("load configuration: %w", err)
	}
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	if migrationsPath == "" {
		migrationsPath = cfg.MigrationsPath
	}

	return databaseURL, migrationsPath, nil
}

func doRequest(opts *cliOptions, method, endpoint string) (int, []byte, error) {
	req, err := http.NewRequest(method, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("error building request: %w", err)
	}

	client := &http.Client{Timeout: opts.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading response: %w", err)
	}

	return resp.StatusCode, body, nil
}

// errorMessage extracts the error field of an error response, falling back
// to the raw body.
func errorMessage(body []byte) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return truncate(strings.TrimSpace(string(body)), 200)
	}
	if errResp.Message != "" {
		return errResp.Error + ": " + errResp.Message
	}
	return errResp.Error
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
