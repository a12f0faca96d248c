// ABOUTME: Reply CLI commands
// ABOUTME: Opens a post's replies (generating character ones) and publishes replies

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"moireu/internal/render"
	"moireu/internal/router"
)

var repliesCmd = &cobra.Command{
	Use:   "replies <post-id>",
	Short: "Show a post's replies",
	Long: `Show a post with its replies. Opening a post for the first time makes a
random sample of characters reply to it; this happens once per post.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplies,
}

var replyCmd = &cobra.Command{
	Use:   "reply <post-id> <content>",
	Short: "Reply to a post as yourself",
	Args:  cobra.ExactArgs(2),
	RunE:  runReply,
}

func init() {
	rootCmd.AddCommand(repliesCmd)
	rootCmd.AddCommand(replyCmd)
}

func runReplies(cmd *cobra.Command, args []string) error {
	postID, err := store.ResolvePostID(args[0])
	if err != nil {
		return fmt.Errorf("post not found: %s", args[0])
	}

	generated, err := store.GenerateCharacterReplies(postID)
	if err = warnOnStorageError(err); err != nil {
		return err
	}
	if len(generated) > 0 {
		color.Green("%d character(s) replied", len(generated))
	}

	fmt.Println(render.Replies(store, router.Params{"postId": postID}))
	return nil
}

func runReply(cmd *cobra.Command, args []string) error {
	postID, err := store.ResolvePostID(args[0])
	if err != nil {
		return fmt.Errorf("post not found: %s", args[0])
	}

	reply, err := store.PublishReply(postID, args[1])
	if err = warnOnStorageError(err); err != nil {
		return fmt.Errorf("failed to reply: %w", err)
	}
	color.Green("Replied as @%s", reply.Username)
	return nil
}
