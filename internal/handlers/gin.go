package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes-api/internal/middleware"
	"notes-api/pkg/lambda"
)

// GinHandler serves the local HTTP server through the same router the
// Lambda function uses, so both hosts share one set of semantics.
func (r *Router) GinHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := fromGin(c)
		if err != nil {
			resp := messageResponse(http.StatusInternalServerError, msgInvalidInput)
			writeGin(c, resp)
			return
		}

		writeGin(c, r.Route(c.Request.Context(), req))
	}
}

func fromGin(c *gin.Context) (*lambda.Request, error) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for name := range c.Request.Header {
		headers[name] = c.Request.Header.Get(name)
	}

	query := make(map[string]string)
	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		PathParams:  params,
		RequestID:   c.GetString(middleware.RequestIDKey),
	}, nil
}

func writeGin(c *gin.Context, resp *lambda.Response) {
	for name, value := range resp.Headers {
		c.Header(name, value)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}
