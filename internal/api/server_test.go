package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"weeks-worth/internal/account"
	"weeks-worth/internal/auth"
	"weeks-worth/internal/database"
	"weeks-worth/internal/group"
	"weeks-worth/internal/metrics"
	"weeks-worth/internal/recipe"
	"weeks-worth/internal/telegram"
)

type mockImporter struct {
	recipes *recipe.Repository
}

func (m *mockImporter) ImportURL(ctx context.Context, url string) (*recipe.Recipe, error) {
	return m.recipes.Create(ctx, recipe.CreateInput{
		Name:  "Imported",
		URL:   url,
		Steps: []recipe.StepInput{{Step: "Cook"}},
	})
}

type mockMessenger struct {
	from, message string
}

func (m *mockMessenger) MessageMe(ctx context.Context, fromEmail, message string) (bool, error) {
	m.from, m.message = fromEmail, message
	return true, nil
}

type testEnv struct {
	handler   http.Handler
	accounts  *account.Service
	messenger *mockMessenger
}

func newTestEnv(t *testing.T, overrides ...func(*Deps)) *testEnv {
	t.Helper()
	dir := t.TempDir()
	d, err := database.NewDB(filepath.Join(dir, "api.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	logger := zap.NewNop()
	issuer := auth.NewIssuer("test-secret", time.Hour)
	accounts := account.NewService(d, issuer, logger)
	recipes := recipe.NewRepository(d)
	messenger := &mockMessenger{}

	deps := Deps{
		Accounts: accounts,
		Recipes:  recipes,
		Groups:   group.NewService(d, logger),
		Importer: &mockImporter{recipes: recipes},
		Messages: messenger,
		Metrics:  metrics.NewStore(d.SQL),
		Issuer:   issuer,
		DataDir:  dir,
		Logger:   logger,
	}
	for _, override := range overrides {
		override(&deps)
	}
	srv := New(deps)
	return &testEnv{handler: srv.Handler(), accounts: accounts, messenger: messenger}
}

// do sends a request and decodes the JSON response into out when non-nil.
func (e *testEnv) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "JWT "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
	}
	return rec.Code
}

func (e *testEnv) signup(t *testing.T, username string) string {
	t.Helper()
	creds := map[string]string{"username": username, "email": username + "@example.com", "password": "password123"}
	require.Equal(t, http.StatusCreated, e.do(t, http.MethodPost, "/auth/register", "", creds, nil))

	var tok tokenResponse
	delete(creds, "email")
	require.Equal(t, http.StatusOK, e.do(t, http.MethodPost, "/auth/token", "", creds, &tok))
	require.NotEmpty(t, tok.Token)
	return tok.Token
}

func TestRecipeEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "ana")

	t.Run("CreateRequiresLogin", func(t *testing.T) {
		var resp errorResponse
		code := env.do(t, http.MethodPost, "/recipes", "", map[string]any{"name": "Soup"}, &resp)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Contains(t, resp.Error, "credentials")
	})

	var created recipe.Recipe
	t.Run("Create", func(t *testing.T) {
		code := env.do(t, http.MethodPost, "/recipes", token, map[string]any{
			"name":        "Bread",
			"ingredients": []map[string]string{{"name": "flour", "quantity": "500", "unit": "g"}},
			"steps": []map[string]any{
				{"step": "Knead", "order": 1},
				{"step": "Proof", "order": 2},
				{"step": "Bake", "order": 4},
			},
		}, &created)
		require.Equal(t, http.StatusCreated, code)
		assert.Len(t, created.Steps, 3)
	})

	t.Run("AddStepFillsGap", func(t *testing.T) {
		var step recipe.Step
		code := env.do(t, http.MethodPost, "/recipes/"+created.ID+"/steps", token, map[string]any{"step": "Shape"}, &step)
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, 3, step.Order)
	})

	t.Run("InvalidOrders", func(t *testing.T) {
		for _, order := range []any{0, 2.5} {
			code := env.do(t, http.MethodPost, "/recipes/"+created.ID+"/steps", token, map[string]any{"step": "x", "order": order}, nil)
			assert.Equal(t, http.StatusBadRequest, code, "order %v", order)
		}
		code := env.do(t, http.MethodPost, "/recipes/"+created.ID+"/steps", token, map[string]any{"step": "x", "order": 3}, nil)
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("GetByName", func(t *testing.T) {
		var got recipe.Recipe
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/recipe?name=Bread", "", nil, &got))
		orders := make([]int, len(got.Steps))
		for i, s := range got.Steps {
			orders[i] = s.Order
		}
		if diff := cmp.Diff([]int{1, 2, 3, 4}, orders); diff != "" {
			t.Errorf("step orders mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/recipe", "", nil, nil))
		assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/recipe?id=missing", "", nil, nil))
	})

	t.Run("UnknownFieldRejected", func(t *testing.T) {
		code := env.do(t, http.MethodPatch, "/recipes/"+created.ID, token, map[string]any{"colour": "red"}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("ImportAndURLs", func(t *testing.T) {
		var imported recipe.Recipe
		code := env.do(t, http.MethodPost, "/recipes/import", token, map[string]string{"url": "http://pie.test"}, &imported)
		require.Equal(t, http.StatusCreated, code)

		var urls []string
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/recipes/urls", "", nil, &urls))
		assert.ElementsMatch(t, []string{"", "http://pie.test"}, urls)

		code = env.do(t, http.MethodPost, "/recipes/import", token, map[string]string{"url": "http://pie.test"}, nil)
		assert.Equal(t, http.StatusConflict, code)
	})

	t.Run("Delete", func(t *testing.T) {
		var deleted recipe.Recipe
		require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/recipe?id="+created.ID, token, nil, &deleted))
		assert.Equal(t, "Bread", deleted.Name)

		var all []recipe.Recipe
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/recipes", "", nil, &all))
		assert.Len(t, all, 1)
	})
}

func TestMeAndGroupEndpoints(t *testing.T) {
	env := newTestEnv(t)
	ana := env.signup(t, "ana")
	bob := env.signup(t, "bob")

	t.Run("UpdateMeSortsMeals", func(t *testing.T) {
		var profile account.Profile
		code := env.do(t, http.MethodPatch, "/me", ana, map[string]any{
			"meals": []map[string]string{
				{"text": "pizza", "day": "SUN", "time": "O"},
				{"text": "oats", "day": "MON", "time": "B"},
				{"text": "soup", "day": "WED", "time": "L"},
			},
		}, &profile)
		require.Equal(t, http.StatusOK, code)

		slots := make([]string, len(profile.Meals))
		for i, m := range profile.Meals {
			slots[i] = m.Slot().String()
		}
		assert.Equal(t, []string{"MON/B", "WED/L", "SUN/O"}, slots)
	})

	t.Run("BadDayRejected", func(t *testing.T) {
		code := env.do(t, http.MethodPatch, "/me", ana, map[string]any{
			"meals": []map[string]string{{"text": "x", "day": "FUN", "time": "B"}},
		}, nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("MissingDayOrTimeRejected", func(t *testing.T) {
		code := env.do(t, http.MethodPatch, "/me", ana, map[string]any{
			"meals": []map[string]string{{"text": "tacos"}, {"text": "soup"}},
		}, nil)
		assert.Equal(t, http.StatusBadRequest, code)

		var profile account.Profile
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/me", ana, nil, &profile))
		assert.Len(t, profile.Meals, 3)
	})

	t.Run("DuplicateSlot", func(t *testing.T) {
		code := env.do(t, http.MethodPatch, "/me", ana, map[string]any{
			"meals": []map[string]string{
				{"text": "a", "day": "TUE", "time": "D"},
				{"text": "b", "day": "TUE", "time": "D"},
			},
		}, nil)
		assert.Equal(t, http.StatusConflict, code)
	})

	var g group.Group
	t.Run("GroupLifecycle", func(t *testing.T) {
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/groups", ana, map[string]string{"name": "Family"}, &g))

		assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/group?id="+g.ID, bob, nil, nil))
		assert.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/groups/"+g.ID+"/requests", bob, nil, nil))
		assert.Equal(t, http.StatusConflict, env.do(t, http.MethodPost, "/groups/"+g.ID+"/requests", bob, nil, nil))

		var bobMe account.Profile
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/me", bob, nil, &bobMe))
		require.Len(t, bobMe.Requests, 1)

		var invited group.Group
		code := env.do(t, http.MethodPost, "/groups/"+g.ID+"/invitations", ana, map[string]string{"individual_id": bobMe.ID}, &invited)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, invited.Members, 2)
		assert.Empty(t, invited.Requests)

		var mine []group.Group
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/me/groups", bob, nil, &mine))
		assert.Len(t, mine, 1)

		var left leaveResponse
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/groups/leave", ana, map[string]string{"name": "Family"}, &left))
		assert.False(t, left.GroupDeleted)
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/groups/leave", bob, map[string]string{"id": g.ID}, &left))
		assert.True(t, left.GroupDeleted)

		var all []group.Summary
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/groups", "", nil, &all))
		assert.Empty(t, all)
	})

	t.Run("SuperuserOnly", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/individuals", ana, nil, nil))

		_, err := env.accounts.CreateSuperuser(context.Background(), account.RegisterInput{
			Username: "root", Email: "root@example.com", Password: "password123",
		})
		require.NoError(t, err)
		var tok tokenResponse
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/auth/token", "", map[string]string{"username": "root", "password": "password123"}, &tok))

		var all []account.Profile
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/individuals", tok.Token, nil, &all))
		assert.Len(t, all, 3)

		var one account.Profile
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/individual?email=bob@example.com", tok.Token, nil, &one))
		assert.Equal(t, "bob", one.Username)
	})
}

func TestMiscEndpoints(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "ana")

	t.Run("Login", func(t *testing.T) {
		code := env.do(t, http.MethodPost, "/auth/token", "", map[string]string{"username": "ana", "password": "nope-nope"}, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/me", "garbage", nil, nil))
	})

	t.Run("RegisterTwice", func(t *testing.T) {
		creds := map[string]string{"username": "ana", "email": "ana@example.com", "password": "password123"}
		assert.Equal(t, http.StatusConflict, env.do(t, http.MethodPost, "/auth/register", "", creds, nil))
	})

	t.Run("MessageMe", func(t *testing.T) {
		var resp messageResponse
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/messages", token, map[string]string{"message": "hello"}, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "ana@example.com", env.messenger.from)
		assert.Equal(t, "hello", env.messenger.message)
	})

	t.Run("Health", func(t *testing.T) {
		var h metrics.Health
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", "", nil, &h))
		assert.Equal(t, "ok", h.Status)
		require.NotNil(t, h.Counts)
		assert.Equal(t, int64(1), h.Counts.Individuals)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		assert.Equal(t, http.StatusMethodNotAllowed, env.do(t, http.MethodPut, "/recipes", token, nil, nil))
	})
}

func TestUnconfiguredFeatures(t *testing.T) {
	env := newTestEnv(t, func(d *Deps) {
		d.Importer = nil
		d.Messages = telegram.NewNotifier(nil, 0, zap.NewNop())
	})
	token := env.signup(t, "ana")

	t.Run("MessageReportsNotSent", func(t *testing.T) {
		var resp messageResponse
		require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/messages", token, map[string]string{"message": "hello"}, &resp))
		assert.False(t, resp.Success)
	})

	t.Run("MessageStillValidated", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/messages", token, map[string]string{"message": " "}, nil))
	})

	t.Run("ImportUnavailable", func(t *testing.T) {
		code := env.do(t, http.MethodPost, "/recipes/import", token, map[string]string{"url": "http://pie.test"}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, code)
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{recipe.ErrInvalidStepOrder, http.StatusBadRequest},
		{recipe.ErrDuplicateStepOrder, http.StatusConflict},
		{recipe.ErrRecipeNotFound, http.StatusNotFound},
		{group.ErrNotMember, http.StatusForbidden},
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{errImportDisabled, http.StatusServiceUnavailable},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
