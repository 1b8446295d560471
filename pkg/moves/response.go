package moves

import (
	"fmt"
	"net/http"

	go_json "github.com/goccy/go-json"
)

// Response is an API response, passed through without interpretation.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := go_json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Err returns an *APIError for responses with status >= 400.
func (r *Response) Err() error {
	if r.StatusCode < http.StatusBadRequest {
		return nil
	}

	var errResp struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
	}

	apiErr := &APIError{StatusCode: r.StatusCode}
	if err := go_json.Unmarshal(r.Body, &errResp); err != nil {
		apiErr.Description = string(r.Body)
		return apiErr
	}

	apiErr.Code = errResp.Error
	apiErr.Description = errResp.ErrorDescription
	if apiErr.Description == "" {
		apiErr.Description = errResp.Message
	}
	return apiErr
}

type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	msg := e.Description
	if e.Code != "" && msg != "" {
		msg = e.Code + ": " + msg
	} else if e.Code != "" {
		msg = e.Code
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("moves api: %d %s", e.StatusCode, msg)
}
