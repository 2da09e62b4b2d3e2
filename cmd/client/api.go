package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cardsim/internal/models"

	"github.com/google/uuid"
)

const requestTimeout = 5 * time.Second

// cliente http da api
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// resposta de erro do servidor
type apiError struct {
	Status int
	models.ErrorResponse
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Type, e.Message)
}

func (a *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &apiError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr.ErrorResponse); err != nil {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (a *apiClient) Cards(ctx context.Context) ([]models.CardDefinition, error) {
	var defs []models.CardDefinition
	err := a.do(ctx, http.MethodGet, "/cards", nil, &defs)
	return defs, err
}

func (a *apiClient) Inspect(ctx context.Context, id models.CardID, level int) (models.CardView, error) {
	var view models.CardView
	err := a.do(ctx, http.MethodGet, fmt.Sprintf("/cards/%d/levels/%d", id, level), nil, &view)
	return view, err
}

func (a *apiClient) Create(ctx context.Context, id models.CardID, level int, team models.TeamNumber) (models.CardView, error) {
	var view models.CardView
	req := models.CreateInstanceRequest{CardID: id, Level: &level, Team: team}
	err := a.do(ctx, http.MethodPost, "/instances", req, &view)
	return view, err
}

func (a *apiClient) Instance(ctx context.Context, uid uuid.UUID) (models.CardView, error) {
	var view models.CardView
	err := a.do(ctx, http.MethodGet, "/instances/"+uid.String(), nil, &view)
	return view, err
}

func (a *apiClient) Fork(ctx context.Context, uid uuid.UUID) (models.CardView, error) {
	var view models.CardView
	err := a.do(ctx, http.MethodPost, "/instances/"+uid.String()+"/fork", nil, &view)
	return view, err
}

func (a *apiClient) Reset(ctx context.Context, uid uuid.UUID) (models.CardView, error) {
	var view models.CardView
	err := a.do(ctx, http.MethodPost, "/instances/"+uid.String()+"/reset", nil, &view)
	return view, err
}

func (a *apiClient) RemoveAbility(ctx context.Context, uid uuid.UUID, ability models.Ability) (models.CardView, error) {
	var view models.CardView
	path := "/instances/" + uid.String() + "/abilities/" + url.PathEscape(string(ability))
	err := a.do(ctx, http.MethodDelete, path, nil, &view)
	return view, err
}

// buff, ou debuff se debuff == true
func (a *apiClient) SetModifier(ctx context.Context, uid uuid.UUID, ability models.Ability, value int, debuff bool) (models.CardView, error) {
	kind := "buffs"
	if debuff {
		kind = "debuffs"
	}

	var view models.CardView
	path := "/instances/" + uid.String() + "/" + kind + "/" + url.PathEscape(string(ability))
	err := a.do(ctx, http.MethodPut, path, models.ModifierRequest{Value: value}, &view)
	return view, err
}

func (a *apiClient) Delete(ctx context.Context, uid uuid.UUID) error {
	return a.do(ctx, http.MethodDelete, "/instances/"+uid.String(), nil, nil)
}
