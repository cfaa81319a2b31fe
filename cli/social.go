package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oliveplate/oliveplate/cache"
)

var usersQuery string

var followCmd = &cobra.Command{
	Use:   "follow <user-id>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.Follow(cmd.Context(), args[0])
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <user-id>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.Unfollow(cmd.Context(), args[0])
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Search users by username",
	RunE: func(cmd *cobra.Command, args []string) error {
		key := cache.UsersKey(usersQuery)
		v, err := app.Store.FetchIfNeeded(cmd.Context(), key, func(ctx context.Context) (any, error) {
			return app.Client.SearchUsers(ctx, usersQuery)
		})
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorite recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		v, err := app.Store.FetchIfNeeded(cmd.Context(), cache.FavoritesKey(), func(ctx context.Context) (any, error) {
			return app.Client.Favorites(ctx)
		})
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <recipe-id>",
	Short: "Add a recipe to your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.AddFavorite(cmd.Context(), args[0])
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <recipe-id>",
	Short: "Remove a recipe from your favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.RemoveFavorite(cmd.Context(), args[0])
	},
}

func init() {
	usersCmd.Flags().StringVarP(&usersQuery, "username", "u", "", "username substring to search for")
	favoritesCmd.AddCommand(favoritesAddCmd, favoritesRemoveCmd)
}
