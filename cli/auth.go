package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/models"
)

var (
	authUsername string
	authEmail    string
	authPassword string
)

var signUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := app.Mut.SignUp(cmd.Context(), models.SignUpInput{
			Username: authUsername,
			Email:    authEmail,
			Password: authPassword,
		})
		if err != nil {
			return err
		}
		return printJSON(resp.User)
	},
}

var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := app.Mut.SignIn(cmd.Context(), models.SignInInput{
			Username: authUsername,
			Password: authPassword,
		})
		if err != nil {
			return err
		}
		return printJSON(resp.User)
	},
}

var signOutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out and forget the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Mut.SignOut()
	},
}

var whoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}
		v, err := app.Store.FetchIfNeeded(cmd.Context(), cache.CurrentUserKey(), func(ctx context.Context) (any, error) {
			return app.Client.Me(ctx)
		})
		if err != nil {
			return err
		}
		return printJSON(v)
	},
}

func init() {
	for _, c := range []*cobra.Command{signUpCmd, signInCmd} {
		c.Flags().StringVarP(&authUsername, "username", "u", "", "account username")
		c.Flags().StringVarP(&authPassword, "password", "p", "", "account password")
		_ = c.MarkFlagRequired("username")
		_ = c.MarkFlagRequired("password")
	}
	signUpCmd.Flags().StringVarP(&authEmail, "email", "e", "", "account email")
	_ = signUpCmd.MarkFlagRequired("email")
}
