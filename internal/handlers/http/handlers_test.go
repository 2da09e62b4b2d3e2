package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardsim/internal/models"
	"cardsim/internal/repositories"
	"cardsim/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	u := usecases.New(repositories.New())
	_, err := u.LoadDefinitionsFromFile("testdata/cards.json")
	require.NoError(t, err)
	return New(u).Router()
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func atLevel(n int) *int {
	return &n
}

func createInstance(t *testing.T, r *gin.Engine, id models.CardID, level int) models.CardView {
	t.Helper()

	w := do(t, r, http.MethodPost, "/instances", models.CreateInstanceRequest{CardID: id, Level: atLevel(level), Team: models.TeamOne})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.CardView](t, w)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "OK", "cards": 3}`, w.Body.String())
}

func TestGetCards(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/cards", nil)
	require.Equal(t, http.StatusOK, w.Code)
	defs := decode[[]models.CardDefinition](t, w)
	require.Len(t, defs, 3)
	assert.Equal(t, "Goblin Shaman", defs[0].Name)
	assert.Equal(t, models.AbilitiesTiered, defs[0].Stats.Abilities.Shape())

	w = do(t, r, http.MethodGet, "/cards/5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tarsa", decode[models.CardDefinition](t, w).Name)
}

func TestCardErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown card", "/cards/404", http.StatusNotFound},
		{"bad id", "/cards/goblin", http.StatusBadRequest},
		{"bad level", "/cards/1/levels/max", http.StatusBadRequest},
		{"level too high", "/cards/1/levels/4", http.StatusUnprocessableEntity},
		{"level zero", "/cards/1/levels/0", http.StatusUnprocessableEntity},
		{"inspect unknown card", "/cards/404/levels/1", http.StatusNotFound},
	}

	r := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, decode[models.ErrorResponse](t, w).Message)
		})
	}
}

func TestInspectCard(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/cards/1/levels/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	view := decode[models.CardView](t, w)
	assert.Equal(t, uuid.Nil, view.InstanceID)
	assert.Equal(t, 2, view.Level)
	assert.Equal(t, models.StatsView{Speed: 2, Armor: 1, Health: 5, Magic: 1, Mana: 3}, view.Stats)
	assert.Equal(t, []models.Ability{models.Affliction}, view.Abilities)

	w = do(t, r, http.MethodGet, "/cards/9/levels/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.Ability{}, decode[models.CardView](t, w).Abilities)
}

func TestCreateInstance(t *testing.T) {
	r := newTestRouter(t)

	view := createInstance(t, r, 1, 3)
	assert.NotEqual(t, uuid.Nil, view.InstanceID)
	assert.Equal(t, models.TeamOne, view.Team)
	assert.Equal(t, 3, view.Level)

	w := do(t, r, http.MethodGet, "/instances/"+view.InstanceID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, view, decode[models.CardView](t, w))
}

func TestCreateInstance_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"missing level", map[string]any{"cardId": 1}, http.StatusBadRequest},
		{"bad team", models.CreateInstanceRequest{CardID: 1, Level: atLevel(1), Team: 5}, http.StatusBadRequest},
		{"unknown card", models.CreateInstanceRequest{CardID: 404, Level: atLevel(1)}, http.StatusNotFound},
		{"card zero", models.CreateInstanceRequest{CardID: 0, Level: atLevel(1)}, http.StatusNotFound},
		{"missing card", map[string]any{"level": 1}, http.StatusNotFound},
		{"level too high", models.CreateInstanceRequest{CardID: 9, Level: atLevel(3)}, http.StatusUnprocessableEntity},
		{"level zero", map[string]any{"cardId": 9, "level": 0}, http.StatusUnprocessableEntity},
		{"negative level", models.CreateInstanceRequest{CardID: 9, Level: atLevel(-1)}, http.StatusUnprocessableEntity},
	}

	r := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/instances", tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestInstanceLifecycle(t *testing.T) {
	r := newTestRouter(t)
	view := createInstance(t, r, 1, 3)
	base := "/instances/" + view.InstanceID.String()

	w := do(t, r, http.MethodPut, base+"/buffs/Inspire", models.ModifierRequest{Value: 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[models.Ability]int{models.Inspire: 2}, decode[models.CardView](t, w).Buffs)

	w = do(t, r, http.MethodPut, base+"/debuffs/Poison", models.ModifierRequest{Value: 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[models.Ability]int{models.Poison: 1}, decode[models.CardView](t, w).Debuffs)

	w = do(t, r, http.MethodDelete, base+"/abilities/Weaken", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.Ability{models.Affliction}, decode[models.CardView](t, w).Abilities)

	w = do(t, r, http.MethodPost, base+"/fork", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	fork := decode[models.CardView](t, w)
	assert.NotEqual(t, view.InstanceID, fork.InstanceID)
	assert.Equal(t, map[models.Ability]int{models.Inspire: 2}, fork.Buffs)
	assert.Equal(t, []models.Ability{models.Affliction}, fork.Abilities)

	w = do(t, r, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reset := decode[models.CardView](t, w)
	assert.Empty(t, reset.Buffs)
	assert.Empty(t, reset.Debuffs)
	assert.Equal(t, models.TeamOne, reset.Team)
	assert.Equal(t, []models.Ability{models.Affliction, models.Weaken}, reset.Abilities)

	// the fork kept its own state
	w = do(t, r, http.MethodGet, "/instances/"+fork.InstanceID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []models.Ability{models.Affliction}, decode[models.CardView](t, w).Abilities)

	w = do(t, r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInstanceErrors(t *testing.T) {
	r := newTestRouter(t)
	missing := "/instances/" + uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"bad uuid", http.MethodGet, "/instances/42", nil, http.StatusBadRequest},
		{"missing get", http.MethodGet, missing, nil, http.StatusNotFound},
		{"missing delete", http.MethodDelete, missing, nil, http.StatusNotFound},
		{"missing fork", http.MethodPost, missing + "/fork", nil, http.StatusNotFound},
		{"missing reset", http.MethodPost, missing + "/reset", nil, http.StatusNotFound},
		{"missing buff", http.MethodPut, missing + "/buffs/Inspire", models.ModifierRequest{Value: 1}, http.StatusNotFound},
		{"missing ability", http.MethodDelete, missing + "/abilities/Heal", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}
