// Package rest is the request/response client for the database's REST
// endpoints. It reads and writes nodes of the remote JSON tree addressed
// by treepath.Path values, authenticating every request with the auth
// token provided at construction.
//
// # Usage
//
//	client, err := rest.New("https://db.example.com", authToken)
//	if err != nil {
//		// handle error
//	}
//
//	doc, err := client.Get(ctx, treepath.Path{"users", "123"})
//	_, err = client.Set(ctx, treepath.Path{"users", "123", "name"}, "Ada")
//	res, err := client.Push(ctx, treepath.Path{"messages"}, msg)
//	_, err = client.Update(ctx, treepath.Path{"users", "123"}, map[string]any{"age": 37})
//
// Every operation is a single synchronous round-trip; there are no
// retries, no caching, and no batching. Responses decode into generic
// values (nil, bool, float64, string, []any, map[string]any) exactly as
// encoding/json produces them.
//
// # Errors
//
// A non-2xx response surfaces as *RequestError carrying the status code
// and response body. Transport failures wrap ErrRequestFailed; a body
// that is not valid JSON wraps ErrDecodeResponse.
//
// # Delete semantics
//
// Writing a nil value with Set is a delete: the server removes the
// subtree at that path. Delete issues an explicit HTTP DELETE with the
// same effect.
package rest
