package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/yungbote/crm-backend/internal/logger"
)

type GraphQLHandler struct {
	log    *logger.Logger
	schema *graphql.Schema
}

func NewGraphQLHandler(log *logger.Logger, schema *graphql.Schema) *GraphQLHandler {
	handlerLog := log.With("handler", "GraphQLHandler")
	return &GraphQLHandler{log: handlerLog, schema: schema}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Query executes a GraphQL request. Resolver failures come back inside the
// standard errors array; only an unreadable request body is a transport
// error.
func (gh *GraphQLHandler) Query(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	resp := gh.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, resp)
}
