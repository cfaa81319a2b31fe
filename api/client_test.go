package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveplate/oliveplate/config"
	"github.com/oliveplate/oliveplate/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.AppConfig{
		APIBaseURL:         srv.URL,
		HTTPTimeoutSec:     5,
		RateLimitPerMinute: 600000,
	}
	return New(cfg, tokens)
}

func TestDo_AttachesBearerWhenSignedIn(t *testing.T) {
	var auth string
	mux := http.NewServeMux()
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"me"}`))
	})

	c := newTestClient(t, mux, staticToken("tok-123"))
	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", auth)
}

func TestDo_NoBearerWhenSignedOut(t *testing.T) {
	var auth string
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	})

	c := newTestClient(t, mux, staticToken(""))
	_, err := c.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestDo_ErrorBodyDecodesToTypedError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Recipe not found"}`))
	})

	c := newTestClient(t, mux, nil)
	_, err := c.GetRecipe(context.Background(), "missing")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Recipe not found", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "404")
}

func TestDo_NonJSONErrorBodyYieldsStatusOnlyError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	c := newTestClient(t, mux, nil)
	_, err := c.ListRecipes(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "api: status 502", apiErr.Error())
}

func TestDo_TransportFailureIsNotTypedError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	cfg := config.AppConfig{APIBaseURL: srv.URL, HTTPTimeoutSec: 1, RateLimitPerMinute: 600000}
	c := New(cfg, nil)
	srv.Close()

	_, err := c.ListRecipes(context.Background())
	require.Error(t, err)
	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "connection refusals never masquerade as service responses")
}

func TestCreateRecipe_EncodesMultipartFields(t *testing.T) {
	var got map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		got = r.MultipartForm.Value
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"r9","name":"Shakshuka"}`))
	})

	c := newTestClient(t, mux, staticToken("tok"))
	out, err := c.CreateRecipe(context.Background(), models.RecipeInput{
		Name:          "Shakshuka",
		Description:   "eggs in tomato",
		Instructions:  []string{"simmer sauce", "crack eggs"},
		TimeToCook:    25,
		Calories:      340,
		IngredientIDs: []string{"i1", "i2"},
		CategoryIDs:   []string{"c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "r9", out.ID)

	assert.Equal(t, []string{"Shakshuka"}, got["name"])
	assert.Equal(t, []string{"25"}, got["timeToCook"])
	assert.Equal(t, []string{"340"}, got["calories"])
	assert.Equal(t, []string{"simmer sauce", "crack eggs"}, got["instructions"])
	assert.Equal(t, []string{"i1", "i2"}, got["ingredients"])
	assert.Equal(t, []string{"c1"}, got["category"])
}

func TestCreateRecipe_InvalidInputSkipsNetwork(t *testing.T) {
	var calls int
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { calls++ })

	c := newTestClient(t, mux, nil)
	_, err := c.CreateRecipe(context.Background(), models.RecipeInput{Name: ""})
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestSearchRecipes_OmitsZeroFacets(t *testing.T) {
	var query string
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/search", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})

	c := newTestClient(t, mux, nil)
	_, err := c.SearchRecipes(context.Background(), SearchParams{Query: "soup", CookTime: 30})
	require.NoError(t, err)
	assert.Equal(t, "cookTime=30&query=soup", query)

	_, err = c.SearchRecipes(context.Background(), SearchParams{})
	require.NoError(t, err)
	assert.Empty(t, query)
}
