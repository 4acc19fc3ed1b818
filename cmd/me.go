package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splashctl/splashctl/unsplash"
)

var (
	updateUsername  string
	updateFirstName string
	updateLastName  string
	updateEmail     string
	updateURL       string
	updateLocation  string
	updateBio       string
	updateInstagram string
)

// meCmd represents the me command
var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user's profile",
	Long:  `Show the profile of the user the configured bearer token belongs to.`,
	RunE:  runMe,
}

// meUpdateCmd represents the me update command
var meUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the authenticated user's profile",
	Long:  `Update profile fields of the authenticated user. Only the supplied flags are changed.`,
	RunE:  runMeUpdate,
}

func init() {
	rootCmd.AddCommand(meCmd)
	meCmd.AddCommand(meUpdateCmd)

	meUpdateCmd.Flags().StringVar(&updateUsername, "username", "", "new username")
	meUpdateCmd.Flags().StringVar(&updateFirstName, "first-name", "", "new first name")
	meUpdateCmd.Flags().StringVar(&updateLastName, "last-name", "", "new last name")
	meUpdateCmd.Flags().StringVar(&updateEmail, "email", "", "new email address")
	meUpdateCmd.Flags().StringVar(&updateURL, "url", "", "new portfolio URL")
	meUpdateCmd.Flags().StringVar(&updateLocation, "location", "", "new location")
	meUpdateCmd.Flags().StringVar(&updateBio, "bio", "", "new bio")
	meUpdateCmd.Flags().StringVar(&updateInstagram, "instagram", "", "new Instagram username")
}

func runMe(cmd *cobra.Command, args []string) error {
	user, err := client.CurrentUser(context.Background())
	if err != nil {
		return err
	}

	printUser(user)
	return nil
}

func printUser(user unsplash.User) {
	fmt.Printf("%s (@%s)\n", user.Name, user.Username)
	if user.Bio != "" {
		fmt.Printf("  %s\n", user.Bio)
	}
	if user.Location != "" {
		fmt.Printf("  Location: %s\n", user.Location)
	}
	fmt.Printf("  Photos: %d  Likes: %d  Collections: %d\n",
		user.TotalPhotos, user.TotalLikes, user.TotalCollections)
}

func runMeUpdate(cmd *cobra.Command, args []string) error {
	update := client.UpdateProfile()

	changed := false
	set := func(flag string, value string, apply func(string)) {
		if cmd.Flags().Changed(flag) {
			apply(value)
			changed = true
		}
	}
	set("username", updateUsername, func(v string) { update = update.Username(v) })
	set("first-name", updateFirstName, func(v string) { update = update.FirstName(v) })
	set("last-name", updateLastName, func(v string) { update = update.LastName(v) })
	set("email", updateEmail, func(v string) { update = update.Email(v) })
	set("url", updateURL, func(v string) { update = update.URL(v) })
	set("location", updateLocation, func(v string) { update = update.Location(v) })
	set("bio", updateBio, func(v string) { update = update.Bio(v) })
	set("instagram", updateInstagram, func(v string) { update = update.InstagramUsername(v) })

	if !changed {
		return fmt.Errorf("nothing to update: supply at least one profile flag")
	}

	user, err := update.Do(context.Background())
	if err != nil {
		return err
	}

	logger.Info().Str("username", user.Username).Msg("Profile updated")
	printUser(user)
	return nil
}
