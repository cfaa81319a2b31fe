package cli

import (
	"context"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/oliveplate/oliveplate/api"
	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/filter"
	"github.com/oliveplate/oliveplate/models"
)

var (
	filterText       string
	filterIngredient string
	filterCategory   string

	recipeName         string
	recipeDescription  string
	recipeInstructions []string
	recipeTimeToCook   int
	recipeCalories     int
	recipeIngredients  []string
	recipeCategories   []string
	recipeImagePath    string
	recipeOwnerID      string
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Browse and manage recipes",
}

var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes, optionally narrowed by local filter facets",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := app.Store.FetchIfNeeded(cmd.Context(), cache.RecipesKey(), func(ctx context.Context) (any, error) {
			return app.Client.ListRecipes(ctx)
		})
		if err != nil {
			return err
		}
		recipes, _ := v.([]models.Recipe)
		return printJSON(filter.Apply(recipes, filter.Criteria{
			Text:         filterText,
			IngredientID: filterIngredient,
			CategoryID:   filterCategory,
		}))
	},
}

var recipesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		v, err := app.Store.FetchIfNeeded(cmd.Context(), cache.RecipeKey(id), func(ctx context.Context) (any, error) {
			return app.Client.GetRecipe(ctx, id)
		})
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

var recipesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		created, err := app.Mut.CreateRecipe(cmd.Context(), recipeInput())
		if err != nil {
			return err
		}
		return printJSON(created)
	},
}

var recipesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Overwrite a recipe (last write wins)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		updated, err := app.Mut.UpdateRecipe(cmd.Context(), args[0], recipeInput())
		if err != nil {
			return err
		}
		return printJSON(updated)
	},
}

var recipesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.DeleteRecipe(cmd.Context(), args[0], recipeOwnerID)
	},
}

var recipesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search recipes server-side",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		// The key carries every facet so distinct searches cache separately.
		q := url.Values{"query": {query}}
		if filterIngredient != "" {
			q.Set("ingredient", filterIngredient)
		}
		if filterCategory != "" {
			q.Set("category", filterCategory)
		}
		key := cache.SearchKey(q.Encode())
		v, err := app.Store.FetchIfNeeded(cmd.Context(), key, func(ctx context.Context) (any, error) {
			return app.Client.SearchRecipes(ctx, searchParams(query))
		})
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

var recipesLikesCmd = &cobra.Command{
	Use:   "likes <id>",
	Short: "List the users liking a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := app.Client.RecipeLikes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var recipesDislikesCmd = &cobra.Command{
	Use:   "dislikes <id>",
	Short: "List the users disliking a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := app.Client.RecipeDislikes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <recipe-id>",
	Short: "Toggle your like on a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.ToggleLike(cmd.Context(), args[0])
	},
}

var dislikeCmd = &cobra.Command{
	Use:   "dislike <recipe-id>",
	Short: "Toggle your dislike on a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		return app.Mut.ToggleDislike(cmd.Context(), args[0])
	},
}

func recipeInput() models.RecipeInput {
	return models.RecipeInput{
		Name:          recipeName,
		Description:   recipeDescription,
		Instructions:  recipeInstructions,
		TimeToCook:    recipeTimeToCook,
		Calories:      recipeCalories,
		IngredientIDs: recipeIngredients,
		CategoryIDs:   recipeCategories,
		ImagePath:     recipeImagePath,
	}
}

func searchParams(query string) api.SearchParams {
	return api.SearchParams{
		Query:      query,
		Ingredient: filterIngredient,
		Category:   filterCategory,
	}
}

func init() {
	recipesCmd.AddCommand(recipesListCmd, recipesShowCmd, recipesCreateCmd, recipesUpdateCmd, recipesDeleteCmd, recipesSearchCmd, recipesLikesCmd, recipesDislikesCmd, likeCmd, dislikeCmd)

	for _, c := range []*cobra.Command{recipesListCmd, recipesSearchCmd} {
		c.Flags().StringVar(&filterText, "text", "", "substring match on name, cook time, or calories")
		c.Flags().StringVar(&filterIngredient, "ingredient", "", "ingredient id the recipe must reference")
		c.Flags().StringVar(&filterCategory, "category", "", "category id the recipe must reference")
	}

	for _, c := range []*cobra.Command{recipesCreateCmd, recipesUpdateCmd} {
		c.Flags().StringVar(&recipeName, "name", "", "recipe name")
		c.Flags().StringVar(&recipeDescription, "description", "", "recipe description")
		c.Flags().StringArrayVar(&recipeInstructions, "instruction", nil, "instruction step (repeatable, ordered)")
		c.Flags().IntVar(&recipeTimeToCook, "cook-time", 0, "cook time in minutes")
		c.Flags().IntVar(&recipeCalories, "calories", 0, "calories per serving")
		c.Flags().StringArrayVar(&recipeIngredients, "ingredient", nil, "ingredient id (repeatable)")
		c.Flags().StringArrayVar(&recipeCategories, "category", nil, "category id (repeatable)")
		c.Flags().StringVar(&recipeImagePath, "image", "", "path of an image to upload")
		_ = c.MarkFlagRequired("name")
	}

	recipesDeleteCmd.Flags().StringVar(&recipeOwnerID, "owner", "", "owner user id, to refresh their profile")
}
