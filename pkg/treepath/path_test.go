package treepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/firetree/pkg/treepath"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path treepath.Path
		want string
	}{
		{"root", treepath.Path{}, ".json"},
		{"nil root", nil, ".json"},
		{"single segment", treepath.Path{"users"}, "users.json"},
		{"nested", treepath.Path{"users", "123", "name"}, "users/123/name.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.path.Encode())
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want treepath.Path
	}{
		{"root marker", "/", treepath.Path{}},
		{"empty string", "", treepath.Path{}},
		{"leading slash", "/a/b", treepath.Path{"a", "b"}},
		{"no leading slash", "a/b", treepath.Path{"a", "b"}},
		{"single segment", "/users", treepath.Path{"users"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, treepath.Decode(tt.in))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	p := treepath.Path{"a", "b"}
	assert.Equal(t, p, treepath.Decode(p.String()))

	assert.Equal(t, treepath.Path{}, treepath.Decode(treepath.Path{}.String()))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/", treepath.Path{}.String())
	assert.Equal(t, "/a/b", treepath.Path{"a", "b"}.String())
}

func TestChild(t *testing.T) {
	t.Parallel()

	base := treepath.Path{"users"}
	child := base.Child("123", "name")

	assert.Equal(t, treepath.Path{"users", "123", "name"}, child)
	assert.Equal(t, treepath.Path{"users"}, base, "receiver must not be modified")
}
