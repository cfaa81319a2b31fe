package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oliveplate/oliveplate/cache"
)

var commentRecipeID string

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read and write recipe comments",
}

var commentsListCmd = &cobra.Command{
	Use:   "list <recipe-id>",
	Short: "Show the comment tree of a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recipeID := args[0]
		v, err := app.Store.FetchIfNeeded(cmd.Context(), cache.CommentsKey(recipeID), func(ctx context.Context) (any, error) {
			return app.Client.CommentsForRecipe(ctx, recipeID)
		})
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

var commentsAddCmd = &cobra.Command{
	Use:   "add <recipe-id> <content>",
	Short: "Comment on a recipe",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		created, err := app.Mut.CreateComment(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var commentsReplyCmd = &cobra.Command{
	Use:   "reply <comment-id> <content>",
	Short: "Reply to a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		reply, err := app.Mut.ReplyToComment(cmd.Context(), args[0], commentRecipeID, args[1])
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var commentsDeleteCmd = &cobra.Command{
	Use:   "delete <comment-id>",
	Short: "Delete a comment (replies are the server's to keep or drop)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.DeleteComment(cmd.Context(), args[0], commentRecipeID)
	},
}

func init() {
	commentsCmd.AddCommand(commentsListCmd, commentsAddCmd, commentsReplyCmd, commentsDeleteCmd)
	for _, c := range []*cobra.Command{commentsReplyCmd, commentsDeleteCmd} {
		c.Flags().StringVar(&commentRecipeID, "recipe", "", "owning recipe id, so its comment tree refreshes")
	}
}
