package cache

// Key constructors shared by mutators and views, so invalidation and
// reads agree on addressing without string drift.

const (
	KindRecipe      = "recipe"
	KindRecipes     = "recipes"
	KindComments    = "comments"
	KindUserProfile = "userProfile"
	KindCurrentUser = "currentUser"
	KindFavorites   = "favorites"
	KindIngredients = "ingredients"
	KindCategories  = "categories"
	KindUsers       = "users"
)

// RecipeKey addresses one recipe.
func RecipeKey(id string) Key { return Key{Kind: KindRecipe, ID: id} }

// RecipesKey addresses the full recipe collection.
func RecipesKey() Key { return Key{Kind: KindRecipes, ID: "all"} }

// SearchKey addresses one server-side search result set.
func SearchKey(query string) Key { return Key{Kind: KindRecipes, ID: "search", Query: query} }

// CommentsKey addresses the comment tree of a recipe.
func CommentsKey(recipeID string) Key { return Key{Kind: KindComments, ID: recipeID} }

// ProfileKey addresses another user's profile.
func ProfileKey(userID string) Key { return Key{Kind: KindUserProfile, ID: userID} }

// CurrentUserKey addresses the signed-in user's own record.
func CurrentUserKey() Key { return Key{Kind: KindCurrentUser} }

// FavoritesKey addresses the signed-in user's favorites list.
func FavoritesKey() Key { return Key{Kind: KindFavorites} }

// IngredientsKey addresses the ingredient collection.
func IngredientsKey() Key { return Key{Kind: KindIngredients, ID: "all"} }

// CategoriesKey addresses the category collection.
func CategoriesKey() Key { return Key{Kind: KindCategories, ID: "all"} }

// UsersKey addresses a username search result set.
func UsersKey(query string) Key { return Key{Kind: KindUsers, ID: "all", Query: query} }
