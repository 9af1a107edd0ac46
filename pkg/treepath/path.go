package treepath

import "strings"

// Suffix is appended to every encoded path; the REST endpoints only answer
// requests addressed to the .json representation of a node.
const Suffix = ".json"

// Path is a location in the remote JSON tree, root first. The empty Path
// addresses the root of the tree.
type Path []string

// Encode renders the path in the form the REST endpoints expect: segments
// joined with "/" plus the Suffix. The empty (root) path encodes to just
// the Suffix.
func (p Path) Encode() string {
	return strings.Join(p, "/") + Suffix
}

// String returns the slash-joined form without the Suffix, with a leading
// slash, matching how the server reports paths in stream events. The root
// path renders as "/".
func (p Path) String() string {
	return "/" + strings.Join(p, "/")
}

// Child returns a new Path with the given segments appended. The receiver
// is not modified.
func (p Path) Child(segments ...string) Path {
	child := make(Path, 0, len(p)+len(segments))
	child = append(child, p...)
	return append(child, segments...)
}

// Decode parses a wire-format path string into segments. The root marker
// "/" (and the empty string) decode to the empty Path; otherwise a single
// leading slash is stripped and the remainder split on "/".
func Decode(s string) Path {
	if s == "" || s == "/" {
		return Path{}
	}
	s = strings.TrimPrefix(s, "/")
	return Path(strings.Split(s, "/"))
}
