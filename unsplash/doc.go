// Package unsplash provides a typed client for the Unsplash HTTP API.
//
// The package is organized into two layers:
//
//   - A generic dispatch pipeline (GetJSON, PutJSON, PostJSON, DeleteJSON)
//     that encodes query parameters, sends a request through an injected
//     transport, buffers the response body, and decodes it as either the
//     expected success type or the server's error-list envelope.
//   - Endpoint definitions (random photos, photo listing, the current user)
//     expressed as data: parameter structs, record types, and staged request
//     builders layered on the pipeline.
//
// # Usage
//
// Create a client with your Unsplash access key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := unsplash.NewClient("your-access-key", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	photo, err := client.RandomPhoto().
//		Featured(true).
//		Orientation(unsplash.OrientationLandscape).
//		Get(context.Background())
//
// The random-photo builder is staged: once a free-text query, a collection
// restriction, or a count has been fixed, the returned value only exposes the
// operations that are still valid. Fixing both a query and a collection
// restriction on the same request does not compile.
//
// # Error Handling
//
// Every failed request returns an *Error carrying exactly one Kind:
//
//   - KindTransport: the request never produced a response
//   - KindMalformedResponse: a response arrived but could not be decoded
//   - KindForbidden: the server answered 403
//
// The underlying cause (a decode error, a transport error, or the decoded
// Errors list reported by the server) is available through errors.Unwrap:
//
//	var apiErr *unsplash.Error
//	if errors.As(err, &apiErr) && apiErr.IsForbidden() {
//		// prompt for re-authentication
//	}
package unsplash
