// Package treepath models locations in the remote JSON tree as ordered
// segment lists and converts them to and from the wire form used by the
// database's REST endpoints.
//
// A location like /users/123/name is represented as
// treepath.Path{"users", "123", "name"}. Encode produces the request path
// the server expects ("users/123/name.json"); Decode parses the path
// strings the change stream reports back into segments. The root of the
// tree is the empty Path.
//
// # Usage
//
//	p := treepath.Path{"users", "123"}
//	p.Encode()              // "users/123.json"
//	treepath.Decode("/a/b") // Path{"a", "b"}
//	treepath.Decode("/")    // Path{}
//
// Paths are plain string slices; the distinction between string and
// keyword-style segments in other SDKs collapses to strings here.
package treepath
