package greeting

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is what the function returns to the Lambda host.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers"`
}

// Build assembles the response for a computed greeting. Every response is a 200;
// there is no error branch for bad input.
func Build(t Template, f Fields, r Result) (Response, error) {
	body, err := json.Marshal(t.Body(f, r))
	if err != nil {
		return Response{}, fmt.Errorf("encode body: %w", err)
	}
	return Response{
		StatusCode: http.StatusOK,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
	}, nil
}
