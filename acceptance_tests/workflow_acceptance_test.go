package acceptance_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"weeks-worth/internal/app"
	"weeks-worth/internal/config"
)

type client struct {
	t     *testing.T
	base  string
	token string
}

func (c *client) call(method, path string, body, out any) int {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	if err != nil {
		c.t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.t.Fatalf("Failed to decode %s %s response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func (c *client) login(username string) *client {
	c.t.Helper()
	creds := map[string]string{"username": username, "email": username + "@example.com", "password": "correct-horse"}
	if code := c.call(http.MethodPost, "/auth/register", creds, nil); code != http.StatusCreated {
		c.t.Fatalf("Register %s: expected 201, got %d", username, code)
	}
	delete(creds, "email")

	var tok struct {
		Token string `json:"token"`
	}
	if code := c.call(http.MethodPost, "/auth/token", creds, &tok); code != http.StatusOK {
		c.t.Fatalf("Login %s: expected 200, got %d", username, code)
	}
	return &client{t: c.t, base: c.base, token: tok.Token}
}

type meal struct {
	RecipeID *string `json:"recipe_id"`
	Text     string  `json:"text"`
	Day      string  `json:"day"`
	Time     string  `json:"time"`
}

// --- Acceptance Test ---
func TestFullWorkflow(t *testing.T) {
	cfg := &config.Config{
		DatabasePath:  filepath.Join(t.TempDir(), "data", "weeks-worth.db"),
		JWTSecret:     "acceptance-secret",
		JWTExpiration: time.Hour,
	}

	application, err := app.New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	defer application.Close()

	srv := httptest.NewServer(application.Handler())
	defer srv.Close()

	anon := &client{t: t, base: srv.URL}
	ana := anon.login("ana")
	bob := anon.login("bob")

	// 1. Recipes with step orders
	var pie struct {
		ID    string `json:"id"`
		Steps []struct {
			Step  string `json:"step"`
			Order int    `json:"order"`
		} `json:"steps"`
	}
	code := ana.call(http.MethodPost, "/recipes", map[string]any{
		"name":  "Apple Pie",
		"steps": []map[string]any{{"step": "Make pastry", "order": 1}, {"step": "Bake", "order": 3}},
	}, &pie)
	if code != http.StatusCreated {
		t.Fatalf("Create recipe: expected 201, got %d", code)
	}

	var step struct {
		Order int `json:"order"`
	}
	if code := ana.call(http.MethodPost, "/recipes/"+pie.ID+"/steps", map[string]string{"step": "Slice apples"}, &step); code != http.StatusCreated {
		t.Fatalf("Add step: expected 201, got %d", code)
	}
	if step.Order != 2 {
		t.Errorf("Expected the new step to fill order 2, got %d", step.Order)
	}
	if code := ana.call(http.MethodPost, "/recipes/"+pie.ID+"/steps", map[string]any{"step": "Cool", "order": 0}, nil); code != http.StatusBadRequest {
		t.Errorf("Expected order 0 to be rejected with 400, got %d", code)
	}

	// 2. Personal plan referencing the recipe, sorted by slot
	var profile struct {
		Meals []meal `json:"meals"`
	}
	code = ana.call(http.MethodPatch, "/me", map[string]any{
		"meals": []map[string]string{
			{"text": "takeaway", "day": "FRI", "time": "D"},
			{"recipe_id": pie.ID, "day": "MON", "time": "O"},
			{"recipe_id": "deleted-recipe", "day": "TUE", "time": "L"},
		},
		"shopping_list": []map[string]string{{"name": "apples", "quantity": "6"}},
	}, &profile)
	if code != http.StatusOK {
		t.Fatalf("Update me: expected 200, got %d", code)
	}
	if len(profile.Meals) != 2 {
		t.Fatalf("Expected the unknown-recipe meal to be dropped, got %+v", profile.Meals)
	}
	if profile.Meals[0].Day != "MON" || profile.Meals[0].RecipeID == nil || *profile.Meals[0].RecipeID != pie.ID {
		t.Errorf("Expected Monday pie first, got %+v", profile.Meals[0])
	}

	// 3. Groups: request, invite, shared plan
	var g struct {
		ID string `json:"id"`
	}
	if code := ana.call(http.MethodPost, "/groups", map[string]string{"name": "Household"}, &g); code != http.StatusCreated {
		t.Fatalf("Create group: expected 201, got %d", code)
	}
	if code := bob.call(http.MethodPatch, "/groups/"+g.ID, map[string]string{"name": "Mine"}, nil); code != http.StatusForbidden {
		t.Errorf("Expected non-member update to be forbidden, got %d", code)
	}
	if code := bob.call(http.MethodPost, "/groups/"+g.ID+"/requests", nil, nil); code != http.StatusCreated {
		t.Fatalf("Request access: expected 201, got %d", code)
	}

	var bobMe struct {
		ID string `json:"id"`
	}
	bob.call(http.MethodGet, "/me", nil, &bobMe)
	if code := ana.call(http.MethodPost, "/groups/"+g.ID+"/invitations", map[string]string{"individual_id": bobMe.ID}, nil); code != http.StatusOK {
		t.Fatalf("Invite: expected 200, got %d", code)
	}

	var shared struct {
		Members []struct {
			Username string `json:"username"`
		} `json:"members"`
		Meals []meal `json:"meals"`
	}
	code = bob.call(http.MethodPatch, "/groups/"+g.ID, map[string]any{
		"meals": []map[string]string{
			{"text": "roast", "day": "SUN", "time": "L"},
			{"text": "pancakes", "day": "SUN", "time": "B"},
		},
	}, &shared)
	if code != http.StatusOK {
		t.Fatalf("Update group as new member: expected 200, got %d", code)
	}
	if len(shared.Members) != 2 {
		t.Errorf("Expected 2 members, got %d", len(shared.Members))
	}
	if len(shared.Meals) != 2 || shared.Meals[0].Time != "B" {
		t.Errorf("Expected breakfast before lunch, got %+v", shared.Meals)
	}

	// 4. Features that are not configured
	if code := ana.call(http.MethodPost, "/recipes/import", map[string]string{"url": "https://example.com"}, nil); code != http.StatusServiceUnavailable {
		t.Errorf("Expected import to be unavailable, got %d", code)
	}
	var msg struct {
		Success bool `json:"success"`
	}
	if code := ana.call(http.MethodPost, "/messages", map[string]string{"message": "hi"}, &msg); code != http.StatusOK {
		t.Fatalf("Message: expected 200, got %d", code)
	}
	if msg.Success {
		t.Error("Expected message to report not sent without telegram")
	}

	// 5. Health reflects what was created
	var health struct {
		Status string `json:"status"`
		Counts struct {
			Individuals int64 `json:"individuals"`
			Groups      int64 `json:"groups"`
			Recipes     int64 `json:"recipes"`
			Meals       int64 `json:"meals"`
		} `json:"counts"`
	}
	if code := anon.call(http.MethodGet, "/health", nil, &health); code != http.StatusOK {
		t.Fatalf("Health: expected 200, got %d", code)
	}
	if health.Status != "ok" || health.Counts.Individuals != 2 || health.Counts.Groups != 1 ||
		health.Counts.Recipes != 1 || health.Counts.Meals != 4 {
		t.Errorf("Unexpected health: %+v", health)
	}
}
