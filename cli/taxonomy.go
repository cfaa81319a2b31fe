package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oliveplate/oliveplate/cache"
)

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "Browse and manage ingredient names",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := app.Store.FetchIfNeeded(cmd.Context(), cache.IngredientsKey(), func(ctx context.Context) (any, error) {
			return app.Client.ListIngredients(ctx)
		})
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

var ingredientsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := app.Client.GetIngredient(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var ingredientsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		created, err := app.Mut.CreateIngredient(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var ingredientsRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename an ingredient",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		updated, err := app.Mut.RenameIngredient(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var ingredientsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.DeleteIngredient(cmd.Context(), args[0])
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse and manage category names",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := app.Store.FetchIfNeeded(cmd.Context(), cache.CategoriesKey(), func(ctx context.Context) (any, error) {
			return app.Client.ListCategories(ctx)
		})
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

var categoriesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := app.Client.GetCategory(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		created, err := app.Mut.CreateCategory(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var categoriesRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		updated, err := app.Mut.RenameCategory(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.DeleteCategory(cmd.Context(), args[0])
	},
}

func init() {
	ingredientsCmd.AddCommand(ingredientsShowCmd, ingredientsAddCmd, ingredientsRenameCmd, ingredientsDeleteCmd)
	categoriesCmd.AddCommand(categoriesShowCmd, categoriesAddCmd, categoriesRenameCmd, categoriesDeleteCmd)
}
