package graphql

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellnesscalendar/internal/delivery/http/middleware"
	"wellnesscalendar/internal/domain"
)

type stubEventService struct {
	events []*domain.Event
}

func (s *stubEventService) List(_ context.Context, limit, offset int) ([]*domain.Event, error) {
	return s.events, nil
}

func (s *stubEventService) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubRegistrationService struct {
	result        *domain.RegistrationResult
	registered    map[int64]bool
	lastEventID   string
	lastUserID    int64
	lastAnonymous bool
}

func (s *stubRegistrationService) Register(_ context.Context, eventID string, user *domain.User) *domain.RegistrationResult {
	s.lastEventID = eventID
	if user == nil {
		s.lastAnonymous = true
	} else {
		s.lastUserID = user.ID
	}
	return s.result
}

func (s *stubRegistrationService) Cancel(_ context.Context, eventID string, user *domain.User) *domain.RegistrationResult {
	return s.Register(context.Background(), eventID, user)
}

func (s *stubRegistrationService) IsRegistered(_ context.Context, eventID, userID int64) (bool, error) {
	return s.registered[eventID], nil
}

type stubCatalogService struct {
	dimensions []*domain.WellnessDimension
	locations  []*domain.Location
}

func (s *stubCatalogService) WellnessDimensions(_ context.Context, _ bool) ([]*domain.WellnessDimension, error) {
	return s.dimensions, nil
}
func (s *stubCatalogService) Hobbies(_ context.Context, _ bool, _ string) ([]*domain.Hobby, error) {
	return nil, nil
}
func (s *stubCatalogService) Tags(_ context.Context, _ bool) ([]*domain.Tag, error) { return nil, nil }
func (s *stubCatalogService) LevelsOfCare(_ context.Context, _ bool) ([]*domain.LevelOfCare, error) {
	return nil, nil
}
func (s *stubCatalogService) Facilitators(_ context.Context, _ bool, _ string) ([]*domain.Facilitator, error) {
	return nil, nil
}
func (s *stubCatalogService) Locations(_ context.Context, _ bool, _ string) ([]*domain.Location, error) {
	return s.locations, nil
}
func (s *stubCatalogService) EventSeries(_ context.Context, _ bool) ([]*domain.EventSeries, error) {
	return nil, nil
}

func testSchema(t *testing.T, reg *stubRegistrationService, events ...*domain.Event) graphql.Schema {
	t.Helper()
	if reg == nil {
		reg = &stubRegistrationService{}
	}
	schema, err := NewSchema(&Resolver{
		Events:        &stubEventService{events: events},
		Registrations: reg,
		Catalog:       &stubCatalogService{},
		Version:       "1.2.3",
		Logger:        slog.Default(),
	})
	require.NoError(t, err)
	return schema
}

func execute(t *testing.T, schema graphql.Schema, ctx context.Context, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: vars,
		Context:        ctx,
	})
	require.Empty(t, result.Errors, "unexpected GraphQL errors: %v", result.Errors)
	data, ok := result.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func capped(n int) *int { return &n }

func testEvent(id int64) *domain.Event {
	return &domain.Event{
		ID:                   id,
		Title:                "Morning Yoga",
		StartTime:            time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		EndTime:              time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		MaxParticipants:      capped(10),
		CurrentParticipants:  4,
		RegistrationRequired: true,
		Status:               domain.EventStatusScheduled,
	}
}

func TestSchema_Ping(t *testing.T) {
	schema := testSchema(t, nil)
	data := execute(t, schema, context.Background(), `mutation { ping }`, nil)
	assert.Equal(t, "pong", data["ping"])
}

func TestSchema_VersionAndHealth(t *testing.T) {
	schema := testSchema(t, nil)

	data := execute(t, schema, context.Background(), `{ version health { status currentUser { email } } }`, nil)
	assert.Equal(t, "1.2.3", data["version"])
	health := data["health"].(map[string]interface{})
	assert.Equal(t, "ok", health["status"])
	assert.Nil(t, health["currentUser"])

	user := &domain.User{ID: 7, Email: "resident@example.com", Name: "Pat"}
	ctx := middleware.SetCurrentUser(context.Background(), user)
	data = execute(t, schema, ctx, `{ health { currentUser { id email name } } }`, nil)
	health = data["health"].(map[string]interface{})
	current := health["currentUser"].(map[string]interface{})
	assert.Equal(t, "7", current["id"])
	assert.Equal(t, "resident@example.com", current["email"])
	assert.Equal(t, "Pat", current["name"])
}

func TestSchema_Events_computedFields(t *testing.T) {
	reg := &stubRegistrationService{registered: map[int64]bool{1: true}}
	schema := testSchema(t, reg, testEvent(1))

	query := `{ events { id title currentParticipants availableSpots isRegistered } }`

	// Anonymous: isRegistered is always false.
	data := execute(t, schema, context.Background(), query, nil)
	events := data["events"].([]interface{})
	require.Len(t, events, 1)
	ev := events[0].(map[string]interface{})
	assert.Equal(t, "1", ev["id"])
	assert.Equal(t, "Morning Yoga", ev["title"])
	assert.Equal(t, 4, ev["currentParticipants"])
	assert.Equal(t, 6, ev["availableSpots"])
	assert.Equal(t, false, ev["isRegistered"])

	// Authenticated: isRegistered reflects the registration lookup.
	ctx := middleware.SetCurrentUser(context.Background(), &domain.User{ID: 7})
	data = execute(t, schema, ctx, query, nil)
	ev = data["events"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, true, ev["isRegistered"])
}

func TestSchema_Event_availableSpots_unlimited(t *testing.T) {
	event := testEvent(1)
	event.MaxParticipants = nil
	schema := testSchema(t, nil, event)

	data := execute(t, schema, context.Background(), `{ event(id: "1") { availableSpots maxParticipants } }`, nil)
	ev := data["event"].(map[string]interface{})
	assert.Nil(t, ev["availableSpots"])
	assert.Nil(t, ev["maxParticipants"])
}

func TestSchema_Event_notFound(t *testing.T) {
	schema := testSchema(t, nil, testEvent(1))

	data := execute(t, schema, context.Background(), `{ event(id: "999") { id } }`, nil)
	assert.Nil(t, data["event"])
}

func TestSchema_Locations_exposesTimestamps(t *testing.T) {
	created := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	schema, err := NewSchema(&Resolver{
		Events:        &stubEventService{},
		Registrations: &stubRegistrationService{},
		Catalog: &stubCatalogService{locations: []*domain.Location{{
			ID:        3,
			Name:      "Garden Room",
			IsActive:  true,
			CreatedAt: created,
			UpdatedAt: created.Add(time.Hour),
		}}},
		Version: "1.2.3",
		Logger:  slog.Default(),
	})
	require.NoError(t, err)

	data := execute(t, schema, context.Background(), `{ locations { id name createdAt updatedAt } }`, nil)
	locations := data["locations"].([]interface{})
	require.Len(t, locations, 1)
	loc := locations[0].(map[string]interface{})
	assert.Equal(t, "3", loc["id"])
	assert.Equal(t, "Garden Room", loc["name"])
	assert.Equal(t, "2026-05-01T08:00:00Z", loc["createdAt"])
	assert.Equal(t, "2026-05-01T09:00:00Z", loc["updatedAt"])
}

func TestSchema_RegisterForEvent_passesUserAndEventID(t *testing.T) {
	reg := &stubRegistrationService{
		result: &domain.RegistrationResult{Success: true, Message: "Successfully registered for the event", Event: testEvent(1)},
	}
	schema := testSchema(t, reg, testEvent(1))

	ctx := middleware.SetCurrentUser(context.Background(), &domain.User{ID: 7})
	data := execute(t, schema, ctx,
		`mutation { registerForEvent(eventId: "1") { success message event { currentParticipants } } }`, nil)

	res := data["registerForEvent"].(map[string]interface{})
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "Successfully registered for the event", res["message"])
	assert.Equal(t, "1", reg.lastEventID)
	assert.Equal(t, int64(7), reg.lastUserID)
}

func TestSchema_RegisterForEvent_anonymous(t *testing.T) {
	reg := &stubRegistrationService{
		result: &domain.RegistrationResult{Success: false, Message: "You must be logged in to register for events"},
	}
	schema := testSchema(t, reg, testEvent(1))

	data := execute(t, schema, context.Background(),
		`mutation { registerForEvent(eventId: "1") { success message event { id } } }`, nil)

	res := data["registerForEvent"].(map[string]interface{})
	assert.Equal(t, false, res["success"])
	assert.True(t, reg.lastAnonymous)
	assert.Nil(t, res["event"])
}

func TestSchema_CancelEventRegistration(t *testing.T) {
	reg := &stubRegistrationService{
		result: &domain.RegistrationResult{Success: true, Message: "Successfully cancelled your registration", Event: testEvent(1)},
	}
	schema := testSchema(t, reg, testEvent(1))

	ctx := middleware.SetCurrentUser(context.Background(), &domain.User{ID: 7})
	data := execute(t, schema, ctx,
		`mutation { cancelEventRegistration(eventId: "1") { success message } }`, nil)

	res := data["cancelEventRegistration"].(map[string]interface{})
	assert.Equal(t, true, res["success"])
}
