package graphql

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/graphql-go/graphql"

	"wellnesscalendar/internal/delivery/http/middleware"
	"wellnesscalendar/internal/domain"
)

// Resolver bundles the services the schema resolves against.
type Resolver struct {
	Events        domain.EventService
	Registrations domain.RegistrationService
	Catalog       domain.CatalogService
	Version       string
	Logger        *slog.Logger
}

// NewSchema builds the executable GraphQL schema. All resolvers read the
// current user (if any) from the request context; see middleware.ResolveUser.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	eventType := r.eventType()
	registrationResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "EventRegistrationResult",
		Fields: graphql.Fields{
			"success": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"event":   &graphql.Field{Type: eventType},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: healthCheckType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					status := map[string]interface{}{"status": "ok"}
					if user, ok := middleware.CurrentUserFromContext(p.Context); ok {
						status["currentUser"] = user
					}
					return status, nil
				},
			},
			"version": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Version, nil
				},
			},
			"timestamp": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return nowUTC().Format(time.RFC3339), nil
				},
			},
			"events": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(eventType)),
				Args: graphql.FieldConfigArgument{
					"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 50},
					"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					limit, _ := p.Args["limit"].(int)
					offset, _ := p.Args["offset"].(int)
					return r.Events.List(p.Context, limit, offset)
				},
			},
			"event": &graphql.Field{
				Type: eventType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, err := idArg(p.Args["id"])
					if err != nil {
						return nil, nil
					}
					event, err := r.Events.GetByID(p.Context, id)
					if err != nil {
						if errors.Is(err, domain.ErrNotFound) {
							return nil, nil
						}
						return nil, err
					}
					return event, nil
				},
			},
			"wellnessDimensions": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(wellnessDimensionType)),
				Args: activeOnlyArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.WellnessDimensions(p.Context, activeArg(p))
				},
			},
			"hobbies": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(hobbyType)),
				Args: activeOnlyArgs("category"),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					category, _ := p.Args["category"].(string)
					return r.Catalog.Hobbies(p.Context, activeArg(p), category)
				},
			},
			"tags": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(tagType)),
				Args: activeOnlyArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.Tags(p.Context, activeArg(p))
				},
			},
			"levelsOfCare": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(levelOfCareType)),
				Args: activeOnlyArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.LevelsOfCare(p.Context, activeArg(p))
				},
			},
			"facilitators": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(facilitatorType)),
				Args: activeOnlyArgs("department"),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					department, _ := p.Args["department"].(string)
					return r.Catalog.Facilitators(p.Context, activeArg(p), department)
				},
			},
			"locations": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(locationType)),
				Args: activeOnlyArgs("type"),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					locType, _ := p.Args["type"].(string)
					return r.Catalog.Locations(p.Context, activeArg(p), locType)
				},
			},
			"eventSeries": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(eventSeriesType)),
				Args: activeOnlyArgs(),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Catalog.EventSeries(p.Context, activeArg(p))
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"ping": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "pong", nil
				},
			},
			"registerForEvent": &graphql.Field{
				Type: registrationResultType,
				Args: graphql.FieldConfigArgument{
					"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, _ := middleware.CurrentUserFromContext(p.Context)
					eventID := fmt.Sprintf("%v", p.Args["eventId"])
					return r.Registrations.Register(p.Context, eventID, user), nil
				},
			},
			"cancelEventRegistration": &graphql.Field{
				Type: registrationResultType,
				Args: graphql.FieldConfigArgument{
					"eventId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, _ := middleware.CurrentUserFromContext(p.Context)
					eventID := fmt.Sprintf("%v", p.Args["eventId"])
					return r.Registrations.Cancel(p.Context, eventID, user), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

// eventType builds the Event object type. The computed fields depend on the
// resolver's services, so it cannot be a package-level value like the catalog
// types.
func (r *Resolver) eventType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Event",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return strconv.FormatInt(p.Source.(*domain.Event).ID, 10), nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*domain.Event).Title, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return emptyAsNil(p.Source.(*domain.Event).Description), nil
				},
			},
			"startTime": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*domain.Event).StartTime, nil
				},
			},
			"endTime": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*domain.Event).EndTime, nil
				},
			},
			"duration": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return intPtr(p.Source.(*domain.Event).DurationMinutes), nil
				},
			},
			"allDay": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*domain.Event).AllDay, nil
				},
			},
			"maxParticipants": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return intPtr(p.Source.(*domain.Event).MaxParticipants), nil
				},
			},
			"currentParticipants": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*domain.Event).CurrentParticipants, nil
				},
			},
			"availableSpots": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return intPtr(p.Source.(*domain.Event).AvailableSpots()), nil
				},
			},
			"registrationRequired": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*domain.Event).RegistrationRequired, nil
				},
			},
			"registrationDeadline": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if dl := p.Source.(*domain.Event).RegistrationDeadline; dl != nil {
						return *dl, nil
					}
					return nil, nil
				},
			},
			"status": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(p.Source.(*domain.Event).Status), nil
				},
			},
			"notes": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return emptyAsNil(p.Source.(*domain.Event).Notes), nil
				},
			},
			"isRegistered": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, ok := middleware.CurrentUserFromContext(p.Context)
					if !ok {
						return false, nil
					}
					event := p.Source.(*domain.Event)
					registered, err := r.Registrations.IsRegistered(p.Context, event.ID, user.ID)
					if err != nil {
						r.Logger.WarnContext(p.Context, "failed to resolve isRegistered",
							"event_id", event.ID, "user_id", user.ID, "error", err)
						return false, nil
					}
					return registered, nil
				},
			},
		},
	})
}

func idArg(raw interface{}) (int64, error) {
	s := fmt.Sprintf("%v", raw)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// activeOnlyArgs returns the argument set shared by catalog queries:
// active (default true) plus optional string filters.
func activeOnlyArgs(extra ...string) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		"active": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: true},
	}
	for _, name := range extra {
		args[name] = &graphql.ArgumentConfig{Type: graphql.String}
	}
	return args
}

func activeArg(p graphql.ResolveParams) bool {
	active, ok := p.Args["active"].(bool)
	if !ok {
		return true
	}
	return active
}

func emptyAsNil(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func intPtr(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
