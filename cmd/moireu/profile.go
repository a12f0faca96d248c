// ABOUTME: Profile CLI commands
// ABOUTME: Create, edit, delete, list, and show profiles

package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"moireu/internal/models"
	"moireu/internal/render"
	"moireu/internal/router"
	"moireu/internal/state"
)

var (
	profileInput  models.ProfileInput
	overwriteFlag bool
	yesFlag       bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profiles and characters",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a profile",
	Long: `Create a profile. The first profile you ever create becomes your own;
every later one is a character.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileInput.Username = args[0]
		return saveProfile(profileInput, "")
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit <username>",
	Short: "Edit an existing profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileEdit,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete a profile",
	Long: `Delete a profile. Its posts, replies, and conversations are kept;
they remember the name they were written under.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileDelete,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(render.CharacterList(store, nil))
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Show one profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(render.ProfileEditor(store, router.Params{"username": args[0]}))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{profileCreateCmd, profileEditCmd} {
		c.Flags().StringVar(&profileInput.DisplayName, "name", "", "display name")
		c.Flags().StringVar(&profileInput.Bio, "bio", "", "short bio")
		c.Flags().StringVar(&profileInput.Description, "description", "", "longer description")
		c.Flags().StringVar(&profileInput.Relationships, "relationships", "", "relationships, free text")
		c.Flags().IntVar(&profileInput.Followers, "followers", 0, "follower count")
		c.Flags().IntVar(&profileInput.LikesMin, "likes-min", models.DefaultLikesMin, "lower bound for drawn like counts")
		c.Flags().IntVar(&profileInput.LikesMax, "likes-max", models.DefaultLikesMax, "upper bound for drawn like counts")
		c.Flags().BoolVar(&overwriteFlag, "overwrite", false, "overwrite a colliding profile without asking")
	}
	profileDeleteCmd.Flags().BoolVar(&yesFlag, "yes", false, "skip confirmation")

	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

// saveProfile runs the two-phase save: on a username collision, ask before
// re-invoking with overwrite.
func saveProfile(input models.ProfileInput, editingID string) error {
	profile, err := store.SaveProfile(input, editingID, overwriteFlag)

	var cerr *state.CollisionError
	if errors.As(err, &cerr) {
		if !confirm(fmt.Sprintf("Username @%s already exists. Overwrite that profile?", cerr.Username)) {
			fmt.Println("Aborted, nothing changed.")
			return nil
		}
		profile, err = store.SaveProfile(input, editingID, true)
	}
	if err = warnOnStorageError(err); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	color.Green("Saved profile @%s", profile.Username)
	if me, ok := store.MyProfile(); ok && me.ID == profile.ID {
		fmt.Println("This profile is you.")
	}
	return nil
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	existing, ok := store.Profile(args[0])
	if !ok {
		return fmt.Errorf("profile not found: %s", args[0])
	}

	// Start from the stored profile and apply only the flags that were set.
	input := models.ProfileInput{
		DisplayName:   existing.DisplayName,
		Username:      existing.Username,
		Bio:           existing.Bio,
		Description:   existing.Description,
		Relationships: existing.Relationships,
		Followers:     existing.Followers,
		LikesMin:      existing.LikesMin,
		LikesMax:      existing.LikesMax,
	}
	if cmd.Flags().Changed("name") {
		input.DisplayName = profileInput.DisplayName
	}
	if cmd.Flags().Changed("bio") {
		input.Bio = profileInput.Bio
	}
	if cmd.Flags().Changed("description") {
		input.Description = profileInput.Description
	}
	if cmd.Flags().Changed("relationships") {
		input.Relationships = profileInput.Relationships
	}
	if cmd.Flags().Changed("followers") {
		input.Followers = profileInput.Followers
	}
	if cmd.Flags().Changed("likes-min") {
		input.LikesMin = profileInput.LikesMin
	}
	if cmd.Flags().Changed("likes-max") {
		input.LikesMax = profileInput.LikesMax
	}

	return saveProfile(input, existing.ID)
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	profile, ok := store.Profile(args[0])
	if !ok {
		return fmt.Errorf("profile not found: %s", args[0])
	}
	if !yesFlag && !confirm(fmt.Sprintf("Delete @%s? Posts and DMs are kept.", profile.Username)) {
		fmt.Println("Aborted, nothing changed.")
		return nil
	}

	if err := warnOnStorageError(store.DeleteProfile(profile.ID)); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	color.Green("Deleted profile @%s", profile.Username)
	return nil
}
