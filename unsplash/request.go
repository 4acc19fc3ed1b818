package unsplash

import (
	"context"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	// apiVersion is the value of the Accept-Version header sent with every
	// request. Unsplash only documents v1.
	apiVersion = "v1"
)

// Doer executes a single HTTP request. *http.Client satisfies it; tests and
// callers with custom transports inject their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config carries the collaborators shared by GetJSON, PutJSON, PostJSON and
// DeleteJSON.
//
// The zero value is invalid; Client and Authorization must be set.
type Config struct {
	// Authorization is the opaque Authorization header value, e.g.
	// "Client-ID <key>" or "Bearer <token>".
	Authorization string

	// Client is the transport used to execute the request.
	Client Doer

	// Logger receives debug logs for each dispatch.
	Logger zerolog.Logger
}

// GetJSON sends a GET request with the encoded params appended to uri and
// decodes the response as T.
func GetJSON[T any](ctx context.Context, config *Config, params any, uri string) (T, error) {
	return dispatch[T](ctx, config, params, uri, http.MethodGet)
}

// PutJSON sends a PUT request with the encoded params appended to uri and
// decodes the response as T.
func PutJSON[T any](ctx context.Context, config *Config, params any, uri string) (T, error) {
	return dispatch[T](ctx, config, params, uri, http.MethodPut)
}

// PostJSON sends a POST request with the encoded params appended to uri and
// decodes the response as T.
func PostJSON[T any](ctx context.Context, config *Config, params any, uri string) (T, error) {
	return dispatch[T](ctx, config, params, uri, http.MethodPost)
}

// DeleteJSON sends a DELETE request with the encoded params appended to uri
// and decodes the response as T.
func DeleteJSON[T any](ctx context.Context, config *Config, params any, uri string) (T, error) {
	return dispatch[T](ctx, config, params, uri, http.MethodDelete)
}

// dispatch is the single pipeline behind the method-specific entry points:
// encode params, build the request, send it, buffer the body, classify.
func dispatch[T any](ctx context.Context, config *Config, params any, uri string, method string) (T, error) {
	target := uri + EncodeQuery(params)

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		// Endpoint URLs are fixed at client construction and the query
		// fragment is encoder output, so a failure here is a programming
		// error, not a runtime condition.
		panic(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", apiVersion)
	req.Header.Set("Authorization", config.Authorization)

	config.Logger.Debug().
		Str("method", method).
		Str("url", target).
		Msg("sending request")

	resp, err := config.Client.Do(req)
	if err != nil {
		return zero[T](), &Error{kind: KindTransport, cause: err}
	}
	defer resp.Body.Close()

	// The connection succeeded; a broken body stream is a malformed
	// response, not a transport failure.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero[T](), &Error{kind: KindMalformedResponse, cause: err}
	}

	config.Logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("response received")

	return classify[T](resp.StatusCode, body)
}

// classify decides, from the status code alone, which schema the body is
// decoded against: T for the success range, Errors otherwise. A 403 re-tags
// whatever error came out of the error-envelope decode as forbidden, after
// the decode attempt, so the original cause is preserved.
func classify[T any](status int, body []byte) (T, error) {
	if status >= 200 && status < 300 {
		var out T
		if err := json.Unmarshal(body, &out); err != nil {
			return zero[T](), &Error{kind: KindMalformedResponse, cause: err}
		}
		return out, nil
	}

	var cause error
	var server Errors
	if err := json.Unmarshal(body, &server); err != nil {
		cause = err
	} else {
		cause = server
	}

	kind := KindMalformedResponse
	if status == http.StatusForbidden {
		kind = KindForbidden
	}
	return zero[T](), &Error{kind: kind, cause: cause}
}

func zero[T any]() T {
	var v T
	return v
}
