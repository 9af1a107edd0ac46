// Package stream subscribes to the database's change feed over
// Server-Sent Events. A Stream watches a single path of the remote tree
// and delivers every change the server reports to a registered callback,
// in arrival order.
//
// # Usage
//
//	s, err := stream.New("https://db.example.com", treepath.Path{"chat"}, authToken)
//	if err != nil {
//		// handle error
//	}
//	_ = s.OnEvent(func(ev stream.Event) {
//		// ev.Data["path"] is a treepath.Path
//	})
//	if err := s.Open(ctx); err != nil {
//		// handle error
//	}
//	defer s.Close()
//
// Callbacks must be registered before Open; the server replays the
// current state as the first event on connect and a late registration
// would miss it. OnEvent returns ErrAlreadyOpen once the stream is open.
//
// Callbacks run on the connection's reader goroutine. A slow callback
// stalls delivery of subsequent events on that connection; hand work off
// to your own goroutines if ordering is not required.
//
// # Failure semantics
//
// The stream does not reconnect. Server-reported terminations (cancel,
// auth_revoked) arrive as ordinary events; a dropped transport simply
// ends delivery, and Err reports the terminal error after the reader
// exits. Recovery is the caller's job: construct and open a new Stream.
package stream
