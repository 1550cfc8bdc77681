package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_LookupDoesNotCreate(t *testing.T) {
	r := NewRegistry()
	u, ok := r.Lookup("Alice")
	require.False(t, ok)
	require.Nil(t, u)
	require.Zero(t, r.Len())
}

func TestRegistry_GetOrCreateIsUnique(t *testing.T) {
	r := NewRegistry()
	a1 := r.GetOrCreate("Alice")
	a2 := r.GetOrCreate("Alice")
	require.Same(t, a1, a2)
	require.Equal(t, 1, r.Len())

	lower := r.GetOrCreate("alice")
	require.NotSame(t, a1, lower, "names are case-sensitive")
	require.Equal(t, 2, r.Len())
}

func TestRegistry_UsersInFirstReferenceOrder(t *testing.T) {
	r := NewRegistry()
	r.GetOrCreate("Carol")
	r.GetOrCreate("Alice")
	r.GetOrCreate("Carol")
	r.GetOrCreate("Bob")

	var names []string
	for _, u := range r.Users() {
		names = append(names, u.Name())
	}
	require.Equal(t, []string{"Carol", "Alice", "Bob"}, names)
}
