// Package firetree is a Go client SDK for the Firetree realtime JSON
// database. It covers the two halves of the database's API: the REST
// endpoints for request/response reads and writes, and the Server-Sent
// Events feed for change streaming, plus generation of the signed auth
// tokens both accept.
//
// The building blocks live in their own packages and can be used
// directly:
//
//   - pkg/token: signed auth token generation
//   - pkg/treepath: tree locations and their wire encoding
//   - pkg/rest: request/response client (get, set, push, update, delete)
//   - pkg/stream: SSE change-stream subscriptions
//   - pkg/config: environment-based configuration loading
//   - pkg/logger: slog factory for debug logging
//
// This root package ties them together for the common case: one Client
// configured once with the database URL and credentials, handing out
// REST operations and stream subscriptions that share the same auth
// token.
//
//	cfg, err := firetree.LoadConfig()
//	client, err := firetree.New(cfg)
//
//	doc, err := client.Get(ctx, treepath.Path{"users", "123"})
//
//	s, err := client.Stream(treepath.Path{"chat"})
//	_ = s.OnEvent(func(ev stream.Event) { ... })
//	err = s.Open(ctx)
//	defer s.Close()
package firetree
