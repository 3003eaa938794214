package handlers

import (
	"net/http"

	"github.com/goccy/go-json"

	"notes-api/pkg/lambda"
)

// jsonResponse encodes v as the response body. Strings become JSON strings,
// matching the API's plain-message bodies.
func jsonResponse(status int, v interface{}) (*lambda.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}

// messageResponse is jsonResponse for string bodies, which cannot fail to encode
func messageResponse(status int, message string) *lambda.Response {
	resp, err := jsonResponse(status, message)
	if err != nil {
		return &lambda.Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`"` + msgInternalFailed + `"`),
		}
	}
	return resp
}
