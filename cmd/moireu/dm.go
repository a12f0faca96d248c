// ABOUTME: Direct-message CLI commands
// ABOUTME: Lists threads, opens chats, and sends messages

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"moireu/internal/render"
	"moireu/internal/router"
)

var dmCmd = &cobra.Command{
	Use:   "dm [username] [message...]",
	Short: "Direct messages",
	Long: `With no arguments, list conversations. With a username, open (or start)
that conversation. With a message, send it.`,
	RunE: runDM,
}

func init() {
	rootCmd.AddCommand(dmCmd)
}

func runDM(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(render.DMList(store, nil))
		return nil
	}

	key, err := store.OpenOrCreateConversation(args[0])
	if err = warnOnStorageError(err); err != nil {
		return fmt.Errorf("failed to open conversation: %w", err)
	}

	if len(args) > 1 {
		text := strings.Join(args[1:], " ")
		msg, err := store.AppendMessage(key, text)
		if err = warnOnStorageError(err); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
		color.Green("Sent to %s", key)
		fmt.Printf("Message ID: %s\n", msg.ID)
		return nil
	}

	fmt.Println(render.DMChat(store, router.Params{"conversationKey": key}))
	return nil
}
