package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"notes-api/pkg/lambda"
)

const (
	notesCollection = "/notes"
	notesItem       = "/notes/{id}"
)

// Router dispatches generic requests to the note handlers. It is the hosting
// layer for ErrInvalidInput, which the handlers themselves do not answer.
type Router struct {
	routes map[string]lambda.HandlerFunc
	logger *logrus.Logger
}

// NewRouter creates a router over the given note handler
func NewRouter(notes *NoteHandler, logger *logrus.Logger) *Router {
	if logger == nil {
		logger = logrus.New()
	}
	return &Router{
		routes: map[string]lambda.HandlerFunc{
			"POST /notes":        notes.Create,
			"GET /notes":         notes.List,
			"GET /notes/{id}":    notes.Get,
			"PUT /notes/{id}":    notes.Update,
			"DELETE /notes/{id}": notes.Delete,
		},
		logger: logger,
	}
}

// Route handles one request and always produces a response
func (r *Router) Route(ctx context.Context, req *lambda.Request) *lambda.Response {
	resource := r.resolve(req)
	handler, ok := r.routes[strings.ToUpper(req.Method)+" "+resource]
	if !ok {
		return messageResponse(http.StatusNotFound, msgRouteNotFound)
	}

	resp, err := handler(ctx, req)
	if err != nil {
		entry := r.logger.WithError(err).WithFields(logrus.Fields{
			"method":     req.Method,
			"path":       req.Path,
			"request_id": req.RequestID,
		})
		if errors.Is(err, ErrInvalidInput) {
			entry.Warn("Rejected request with invalid input")
			return messageResponse(http.StatusInternalServerError, msgInvalidInput)
		}
		entry.Error("Unhandled handler error")
		return messageResponse(http.StatusInternalServerError, msgInternalFailed)
	}

	return resp
}

// resolve returns the resource template for req. API Gateway supplies it
// directly; otherwise it is derived from the raw path, filling in the id
// path parameter.
func (r *Router) resolve(req *lambda.Request) string {
	if req.Resource != "" {
		return req.Resource
	}

	path := strings.TrimSuffix(req.Path, "/")
	if path == notesCollection {
		return notesCollection
	}

	id, ok := strings.CutPrefix(path, notesCollection+"/")
	if !ok || id == "" || strings.Contains(id, "/") {
		return path
	}

	if req.PathParams == nil {
		req.PathParams = make(map[string]string)
	}
	if req.PathParams["id"] == "" {
		req.PathParams["id"] = id
	}
	return notesItem
}
