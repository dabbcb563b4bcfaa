package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	pkgerrors "github.com/pkg/errors"
)

// Request is one JSON round trip. Body is only sent when it is non-nil.
type Request struct {
	Method string
	URL    string
	Query  url.Values
	Header http.Header
	Body   interface{}
}

// Do sends the request and decodes the JSON response into out whatever the
// HTTP status is. The status code is returned so callers can report it.
func Do(ctx context.Context, client *http.Client, r *Request, out interface{}) (int, error) {
	if client == nil {
		client = http.DefaultClient
	}
	var reader io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return 0, pkgerrors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, reader)
	if err != nil {
		return 0, err
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if len(r.Query) > 0 {
		req.URL.RawQuery = r.Query.Encode()
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, errors.New(status(resp.StatusCode) + "\n" + string(body))
	}
	return resp.StatusCode, nil
}

func status(code int) string {
	return "HTTP " + strconv.Itoa(code) + " " + http.StatusText(code)
}
