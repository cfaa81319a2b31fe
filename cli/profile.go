package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/models"
)

var (
	profileUsername string
	profileBio      string
	profileGender   string
	profileImage    string
)

var profileCmd = &cobra.Command{
	Use:   "profile <user-id>",
	Short: "Show a user's profile, including whether you follow them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		v, err := app.Store.FetchIfNeeded(cmd.Context(), cache.ProfileKey(id), func(ctx context.Context) (any, error) {
			return app.Client.GetProfile(ctx, id)
		})
		if err != nil {
			return err
		}
		if p, ok := v.(*models.Profile); ok {
			app.Mut.ObserveFollowing(id, p.IsFollowing)
		}
		return printJSON(v)
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your own profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		updated, err := app.Mut.UpdateProfile(cmd.Context(), models.ProfileInput{
			Username:  profileUsername,
			Bio:       profileBio,
			Gender:    profileGender,
			ImagePath: profileImage,
		})
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileUsername, "username", "", "new username")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "new bio")
	profileUpdateCmd.Flags().StringVar(&profileGender, "gender", "", "one of male, female, other")
	profileUpdateCmd.Flags().StringVar(&profileImage, "image", "", "path of an avatar image to upload")
	profileCmd.AddCommand(profileUpdateCmd)
}
