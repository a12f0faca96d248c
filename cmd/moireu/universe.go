// ABOUTME: Universe and utility CLI commands
// ABOUTME: Universe text, identity display, and store reset

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"moireu/internal/render"
)

var universeCmd = &cobra.Command{
	Use:   "universe [text]",
	Short: "Show or set the universe text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(render.Universe(store, nil))
			return nil
		}
		if err := warnOnStorageError(store.SetUniverseText(args[0])); err != nil {
			return fmt.Errorf("failed to save universe text: %w", err)
		}
		color.Green("Universe updated")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the local identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if me, ok := store.MyProfile(); ok {
			fmt.Printf("You are %s @%s\n", me.DisplayName, me.Username)
			return nil
		}
		fmt.Printf("No profile yet; acting as @%s\n", store.LocalUsername())
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored state (next run reseeds)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !yesFlag && !confirm("Delete all Moireu state?") {
			fmt.Println("Aborted, nothing changed.")
			return nil
		}
		if err := store.Reset(); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
		color.Green("State deleted; the next run starts fresh")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&yesFlag, "yes", false, "skip confirmation")
	rootCmd.AddCommand(universeCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(resetCmd)
}
