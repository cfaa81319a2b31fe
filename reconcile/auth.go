package reconcile

import (
	"context"

	"github.com/oliveplate/oliveplate/api"
	"github.com/oliveplate/oliveplate/cache"
	"github.com/oliveplate/oliveplate/models"
	"github.com/oliveplate/oliveplate/utils"
)

// The three session mutation points. Nothing else in the repo writes
// the session store.

// SignUp registers an account and signs the session in.
func (m *Mutators) SignUp(ctx context.Context, in models.SignUpInput) (*api.AuthResponse, error) {
	if err := m.gate.acquire("session", "auth"); err != nil {
		return nil, err
	}
	defer m.gate.release("session", "auth")

	resp, err := m.client.SignUp(ctx, in)
	if err != nil {
		return nil, classify(err)
	}
	if err := m.sessions.SetToken(resp.Token); err != nil {
		return nil, &Failure{Kind: FailureRejected, Message: "could not persist credential", Err: err}
	}
	m.invalidate(cache.CurrentUserKey(), cache.FavoritesKey())
	return resp, nil
}

// SignIn authenticates and signs the session in.
func (m *Mutators) SignIn(ctx context.Context, in models.SignInInput) (*api.AuthResponse, error) {
	if err := m.gate.acquire("session", "auth"); err != nil {
		return nil, err
	}
	defer m.gate.release("session", "auth")

	resp, err := m.client.SignIn(ctx, in)
	if err != nil {
		return nil, classify(err)
	}
	if err := m.sessions.SetToken(resp.Token); err != nil {
		return nil, &Failure{Kind: FailureRejected, Message: "could not persist credential", Err: err}
	}
	m.invalidate(cache.CurrentUserKey(), cache.FavoritesKey())
	return resp, nil
}

// SignOut clears the session and drops every cached view of the
// signed-in user.
func (m *Mutators) SignOut() error {
	if err := m.sessions.Clear(); err != nil {
		return err
	}
	m.invalidate(cache.CurrentUserKey(), cache.FavoritesKey())
	if utils.Sugar != nil {
		utils.Sugar.Infof("signed out")
	}
	return nil
}
