package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flightctl",
	Short: "Operator tools for the flight assistant",
	Long: `flightctl runs maintenance tasks against the same configuration as the
HTTP service.

Configuration:
  --config flag, then CONFIG_PATH, then configs/config.yaml, then environment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout for command output.
		if os.Getenv("LOG_OUTPUT") == "" {
			if err := os.Setenv("LOG_OUTPUT", "stderr"); err != nil {
				return err
			}
		}
		if cfgFile != "" {
			return os.Setenv("CONFIG_PATH", cfgFile)
		}
		return nil
	},
}

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Compute missing FAQ embeddings and persist the corpus",
	Args:  cobra.NoArgs,
	RunE:  runBackfill,
}

var askCmd = &cobra.Command{
	Use:   "ask <utterance>",
	Short: "Run one utterance through the full pipeline and print the envelope",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

var matchCmd = &cobra.Command{
	Use:   "match <question>",
	Short: "Show the nearest FAQ entry and its confidence band",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMatch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is configs/config.yaml)")

	rootCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(matchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runBackfill(cmd *cobra.Command, _ []string) error {
	tk, cleanup, err := initializeToolkit()
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := tk.Corpus.Initialize(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "entries=%d embedded=%d from_cache=%d stale=%d persisted=%t\n",
		stats.Entries, stats.Embedded, stats.FromCache, stats.Stale, stats.Persisted)
	return nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	tk, cleanup, err := initializeToolkit()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := tk.Corpus.Initialize(cmd.Context()); err != nil {
		return err
	}
	env := tk.Assistant.Reply(cmd.Context(), strings.Join(args, " "))
	return printJSON(cmd, env)
}

func runMatch(cmd *cobra.Command, args []string) error {
	tk, cleanup, err := initializeToolkit()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := tk.Corpus.Initialize(cmd.Context()); err != nil {
		return err
	}
	return printJSON(cmd, tk.Retriever.Retrieve(cmd.Context(), strings.Join(args, " ")))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
