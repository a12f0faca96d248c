// ABOUTME: Post and feed CLI commands
// ABOUTME: Publishes posts and prints the global feed

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"moireu/internal/render"
)

var postNameFlag string

var postCmd = &cobra.Command{
	Use:   "post <content>",
	Short: "Publish a post to the feed",
	Long: `Publish a post. Posting under your own profile makes every character
profile publish a reaction post of its own.`,
	Args: cobra.ExactArgs(1),
	RunE: runPost,
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Print the global feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(render.Feed(store, nil))
		return nil
	},
}

func init() {
	postCmd.Flags().StringVar(&postNameFlag, "name", "", "display name for the post")
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(feedCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	username := identityFlag
	if username == "" {
		username = store.LocalUsername()
	}

	feedBefore := len(store.Feed())
	post, err := store.SavePost(username, postNameFlag, args[0])
	if err = warnOnStorageError(err); err != nil {
		return fmt.Errorf("failed to post: %w", err)
	}

	color.Green("Posted as @%s", post.Username)
	fmt.Printf("Post ID: %s\n", post.ID)
	if reactions := len(store.Feed()) - feedBefore - 1; reactions > 0 {
		fmt.Printf("%d character(s) reacted with posts of their own\n", reactions)
	}
	return nil
}
