package graphql

import (
	"time"

	"github.com/graphql-go/graphql"

	"wellnesscalendar/internal/domain"
)

func nowUTC() time.Time { return time.Now().UTC() }

// Catalog types carry no computed fields, so they rely on the default
// resolver matching GraphQL field names against struct fields.

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var healthCheckType = graphql.NewObject(graphql.ObjectConfig{
	Name: "HealthCheck",
	Fields: graphql.Fields{
		"status":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"currentUser": &graphql.Field{Type: userType},
	},
})

var wellnessDimensionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "WellnessDimension",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"color":       &graphql.Field{Type: graphql.String},
		"isActive":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":   &graphql.Field{Type: graphql.DateTime},
	},
})

var hobbyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Hobby",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"category":    &graphql.Field{Type: graphql.String},
		"isActive":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":   &graphql.Field{Type: graphql.DateTime},
	},
})

var tagType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Tag",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"color":     &graphql.Field{Type: graphql.String},
		"isActive":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var levelOfCareType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LevelOfCare",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description":  &graphql.Field{Type: graphql.String},
		"level":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"requirements": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"isActive":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":    &graphql.Field{Type: graphql.DateTime},
	},
})

var facilitatorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Facilitator",
	Fields: graphql.Fields{
		"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(*domain.Facilitator).FullName(), nil
			},
		},
		"firstName":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"lastName":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"phone":       &graphql.Field{Type: graphql.String},
		"department":  &graphql.Field{Type: graphql.String},
		"position":    &graphql.Field{Type: graphql.String},
		"specialties": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"isActive":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"hireDate":    &graphql.Field{Type: graphql.DateTime},
	},
})

var locationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Location",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description":   &graphql.Field{Type: graphql.String},
		"type":          &graphql.Field{Type: graphql.String},
		"capacity":      &graphql.Field{Type: graphql.Int},
		"equipment":     &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"accessibility": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"isActive":      &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":     &graphql.Field{Type: graphql.DateTime},
		"updatedAt":     &graphql.Field{Type: graphql.DateTime},
	},
})

var eventSeriesType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EventSeries",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
		"isActive":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"createdAt":   &graphql.Field{Type: graphql.DateTime},
		"updatedAt":   &graphql.Field{Type: graphql.DateTime},
	},
})
