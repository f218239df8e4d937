package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/mattia9203/RunApp-Server/internal/models"
)

type stubGoalStore struct {
	upsertErr   error
	getResult   *models.WeeklyGoal
	getErr      error
	upsertCalls int
	getCalls    int
	lastUpsert  *models.WeeklyGoal
	lastGetUID  string
	lastGetWeek string
}

func (s *stubGoalStore) Upsert(_ context.Context, goal *models.WeeklyGoal) error {
	s.upsertCalls++
	s.lastUpsert = goal
	return s.upsertErr
}

func (s *stubGoalStore) Get(_ context.Context, userID, weekStartDate string) (*models.WeeklyGoal, error) {
	s.getCalls++
	s.lastGetUID = userID
	s.lastGetWeek = weekStartDate
	return s.getResult, s.getErr
}

func newGoalTestApp(store *stubGoalStore) *fiber.App {
	handler := NewGoalHandler(store)
	app := fiber.New()
	app.Post("/set_weekly_goal", handler.SetWeeklyGoal)
	app.Get("/get_weekly_goal", handler.GetWeeklyGoal)
	return app
}

func TestSetWeeklyGoalUpsertsTargets(t *testing.T) {
	store := &stubGoalStore{}
	app := newGoalTestApp(store)

	body := `{"uid":"firebase-abc","week_start_date":"2026-08-24","target_km":25,"target_calories":2200}`
	req := httptest.NewRequest(http.MethodPost, "/set_weekly_goal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastUpsert == nil || store.lastUpsert.WeekStartDate != "2026-08-24" {
		t.Fatalf("unexpected upsert input: %+v", store.lastUpsert)
	}
	if store.lastUpsert.TargetKM == nil || *store.lastUpsert.TargetKM != 25 {
		t.Fatalf("expected target_km 25, got %+v", store.lastUpsert.TargetKM)
	}
}

func TestSetWeeklyGoalMissingFieldsRejectedBeforeStore(t *testing.T) {
	store := &stubGoalStore{}
	app := newGoalTestApp(store)

	for _, body := range []string{
		`{"week_start_date":"2026-08-24"}`,
		`{"uid":"firebase-abc"}`,
		`{}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/set_weekly_goal", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test(%s): %v", body, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 for body %s, got %d", body, resp.StatusCode)
		}
	}
	if store.upsertCalls != 0 {
		t.Fatalf("expected no store calls, got %d", store.upsertCalls)
	}
}

func TestGetWeeklyGoalReturnsTargets(t *testing.T) {
	km := 30.0
	cal := 2500.0
	store := &stubGoalStore{
		getResult: &models.WeeklyGoal{
			UserID:         "firebase-abc",
			WeekStartDate:  "2026-08-24",
			TargetKM:       &km,
			TargetCalories: &cal,
		},
	}
	app := newGoalTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/get_weekly_goal?uid=firebase-abc&week_start_date=2026-08-24", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if store.lastGetUID != "firebase-abc" || store.lastGetWeek != "2026-08-24" {
		t.Fatalf("unexpected key forwarded: %q %q", store.lastGetUID, store.lastGetWeek)
	}

	var payload struct {
		TargetKM       float64 `json:"target_km"`
		TargetCalories float64 `json:"target_calories"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload.TargetKM != 30 || payload.TargetCalories != 2500 {
		t.Fatalf("unexpected targets: %+v", payload)
	}
}

func TestGetWeeklyGoalNotFoundReturns404(t *testing.T) {
	store := &stubGoalStore{getErr: pgx.ErrNoRows}
	app := newGoalTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/get_weekly_goal?uid=firebase-abc&week_start_date=2026-08-24", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if payload["error"] != "No goals found" {
		t.Fatalf("unexpected error payload: %+v", payload)
	}
}

func TestGetWeeklyGoalWithoutWeekMatchesNothing(t *testing.T) {
	// The week parameter is not presence-checked: an empty value is passed
	// through and simply finds no row.
	store := &stubGoalStore{getErr: pgx.ErrNoRows}
	app := newGoalTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/get_weekly_goal?uid=firebase-abc", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if store.getCalls != 1 || store.lastGetWeek != "" {
		t.Fatalf("expected lookup with empty week, got calls=%d week=%q", store.getCalls, store.lastGetWeek)
	}
}

func TestGetWeeklyGoalMissingUIDRejectedBeforeStore(t *testing.T) {
	store := &stubGoalStore{}
	app := newGoalTestApp(store)

	req := httptest.NewRequest(http.MethodGet, "/get_weekly_goal", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if store.getCalls != 0 {
		t.Fatalf("expected no store call, got %d", store.getCalls)
	}
}

func TestSetWeeklyGoalStoreErrorReturns500(t *testing.T) {
	store := &stubGoalStore{upsertErr: errTestDB}
	app := newGoalTestApp(store)

	body := `{"uid":"firebase-abc","week_start_date":"2026-08-24"}`
	req := httptest.NewRequest(http.MethodPost, "/set_weekly_goal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}
