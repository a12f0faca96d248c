// ABOUTME: Root Cobra command and global flags
// ABOUTME: Opens the state store and launches the interactive app

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"moireu/internal/config"
	"moireu/internal/rng"
	"moireu/internal/router"
	"moireu/internal/state"
	"moireu/internal/storage"
	"moireu/internal/tui"
)

var (
	dataFlag     string
	identityFlag string

	blob  *storage.BadgerBlob
	store *state.Store
)

var rootCmd = &cobra.Command{
	Use:   "moireu [route]",
	Short: "A single-player social network simulator",
	Long: `Moireu is a social network with one real user: you.

Profiles, posts, replies, and direct messages all live in a local store.
Character profiles react to your posts on their own. Pass a route like
'#/dm-chat/{"otherUsername":"aria"}' to open a specific view.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		initial := router.Route{View: router.ViewFeed}
		if len(args) == 1 {
			initial = router.Parse(args[0])
		}
		return tui.Run(store, initial)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if identityFlag != "" {
			os.Setenv("MOIREU_USER", identityFlag)
		}
		cfg.ApplyEnvironment()

		dir := dataFlag
		if dir == "" {
			dir = cfg.GetDataDir()
		}
		blob, err = storage.OpenBadger(dir)
		if err != nil {
			return fmt.Errorf("failed to open state store: %w", err)
		}

		store, err = state.LoadOrInit(blob, rng.Default())
		if err != nil {
			// Save failures are non-fatal; the in-memory document works.
			color.Yellow("Warning: %v", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if blob != nil {
			return blob.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFlag, "data", "", "state directory path")
	rootCmd.PersistentFlags().StringVar(&identityFlag, "as", "", "identity override (username)")
}

// confirm asks a yes/no question on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// warnOnStorageError prints a save failure without failing the command; the
// mutation is kept in memory for the rest of the session.
func warnOnStorageError(err error) error {
	if err == nil {
		return nil
	}
	var serr *storage.StorageError
	if errors.As(err, &serr) {
		color.Yellow("Warning: %v (changes kept in memory)", serr)
		return nil
	}
	return err
}
