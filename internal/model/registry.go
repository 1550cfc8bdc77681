package model

// Registry maps usernames to users. Names are case-sensitive and each maps
// to at most one User. Users are kept in first-reference order.
type Registry struct {
	byName map[string]*User
	order  []*User
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*User)}
}

// Lookup never creates a user.
func (r *Registry) Lookup(name string) (*User, bool) {
	u, ok := r.byName[name]
	return u, ok
}

// GetOrCreate returns the named user, registering a new one on first reference.
func (r *Registry) GetOrCreate(name string) *User {
	if u, ok := r.byName[name]; ok {
		return u
	}
	u := NewUser(name)
	r.byName[name] = u
	r.order = append(r.order, u)
	return u
}

func (r *Registry) Users() []*User {
	out := make([]*User, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int { return len(r.order) }
