// Package cli holds the cobra commands. Commands are a thin
// presentation layer: each one reads through the entity cache or
// calls a mutator, then prints JSON to stdout.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oliveplate/oliveplate/api"
	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/config"
	"github.com/oliveplate/oliveplate/reconcile"
	"github.com/oliveplate/oliveplate/session"
)

// App bundles the wired dependencies commands run against.
type App struct {
	Cfg      config.AppConfig
	Sessions *session.Store
	Client   *api.Client
	Store    *cache.Store
	Mut      *reconcile.Mutators
}

var app *App

var rootCmd = &cobra.Command{
	Use:           "oliveplate",
	Short:         "Command line client for the OlivePlate recipe service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command against a wired App.
func Execute(a *App) error {
	app = a
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(
		signUpCmd, signInCmd, signOutCmd, whoAmICmd,
		recipesCmd, followCmd, unfollowCmd, usersCmd,
		favoritesCmd, commentsCmd, profileCmd,
		ingredientsCmd, categoriesCmd,
	)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requireSignIn() error {
	if !app.Sessions.SignedIn() {
		return fmt.Errorf("not signed in; run `oliveplate signin` first")
	}
	return nil
}
