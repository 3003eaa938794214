package lambda

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestFromAPIGateway(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod:     "PUT",
		Path:           "/notes/n1",
		Resource:       "/notes/{id}",
		Body:           `{"title":"t","body":"b"}`,
		PathParameters: map[string]string{"id": "n1"},
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "req-1"},
	}

	req := FromAPIGateway(event)

	if req.Method != "PUT" || req.Path != "/notes/n1" || req.Resource != "/notes/{id}" {
		t.Errorf("Unexpected request line: %s %s (%s)", req.Method, req.Path, req.Resource)
	}
	if req.PathParam("id") != "n1" {
		t.Errorf("Expected path id n1, got %q", req.PathParam("id"))
	}
	if !req.HasBody() {
		t.Error("Expected request to have a body")
	}
	if req.RequestID != "req-1" {
		t.Errorf("Expected request id req-1, got %q", req.RequestID)
	}
}

func TestRequestWithoutParams(t *testing.T) {
	req := &Request{}

	if req.PathParam("id") != "" {
		t.Error("Expected empty path param")
	}
	if req.HasBody() {
		t.Error("Expected no body")
	}
}

func TestResponseToAPIGateway(t *testing.T) {
	resp := &Response{
		StatusCode: 404,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`"Item not found"`),
	}

	out := resp.ToAPIGateway()
	if out.StatusCode != 404 || out.Body != `"Item not found"` {
		t.Errorf("Unexpected response %+v", out)
	}
	if out.Headers["Content-Type"] != "application/json" {
		t.Errorf("Expected JSON content type, got %v", out.Headers)
	}
}
