package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler wraps the schema in an HTTP handler. The handler reads the
// current user from the request context, so it must be mounted behind
// middleware.ResolveUser. GraphiQL is only served outside production.
func NewHandler(schema *graphql.Schema, graphiql bool) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: graphiql,
	})
}
