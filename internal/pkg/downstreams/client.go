package downstreams

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jsenjoyer123/OptiFi/internal/pkg/models"
)

// makeAPICall issues one REST call with a bounded timeout and returns the
// raw body and status code. Transport-level failures come back as errors;
// non-2xx statuses are the caller's concern.
func makeAPICall(ctx context.Context, url, method string, headers map[string]string, payload io.Reader, timeout time.Duration) ([]byte, int, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, method, url, payload)
	if err != nil {
		return nil, 0, err
	}

	for key, value := range headers {
		req.Header.Add(key, value)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

// GetJSON fetches a JSON document into out and returns the HTTP status.
func GetJSON(ctx context.Context, url string, headers map[string]string, timeout time.Duration, out interface{}) (int, error) {
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["Accept"]; !ok {
		headers["Accept"] = "application/json"
	}

	body, status, err := makeAPICall(ctx, url, http.MethodGet, headers, nil, timeout)
	if err != nil {
		return status, err
	}
	if status < 200 || status >= 300 {
		return status, upstreamRejected(status, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return status, err
		}
	}
	return status, nil
}

// upstreamRejected shapes a non-2xx upstream answer into the error taxonomy,
// carrying a body excerpt for diagnostics.
func upstreamRejected(status int, body []byte) *models.APIError {
	message := "upstream request rejected"
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			message = parsed.Error
		} else if parsed.Message != "" {
			message = parsed.Message
		}
	}

	excerpt := string(body)
	if len(excerpt) > 512 {
		excerpt = excerpt[:512]
	}

	return &models.APIError{Status: status, Message: message, Details: excerpt}
}
