package readable

import "github.com/specialistvlad/finsheet/internal/model"

// Lookup maps variable ids to display names and back. It is built for a
// single translation and is not safe for concurrent modification.
type Lookup struct {
	names map[string]string
	ids   map[string]string
	// ambiguous holds names shared by more than one id.
	ambiguous map[string]struct{}
}

// NewLookup builds a lookup from an id to name map.
func NewLookup(names map[string]string) *Lookup {
	l := &Lookup{
		names:     make(map[string]string, len(names)),
		ids:       make(map[string]string, len(names)),
		ambiguous: make(map[string]struct{}),
	}
	for id, name := range names {
		l.add(id, name)
	}
	return l
}

// LookupFromVariables builds a lookup from the ids and names of vars.
func LookupFromVariables(vars []model.Variable) *Lookup {
	names := make(map[string]string, len(vars))
	for _, v := range vars {
		names[v.ID] = v.Name
	}
	return NewLookup(names)
}

func (l *Lookup) add(id, name string) {
	l.names[id] = name
	if _, ok := l.ids[name]; ok {
		l.ambiguous[name] = struct{}{}
		return
	}
	l.ids[name] = id
}

// Name returns the display name of id.
func (l *Lookup) Name(id string) (string, bool) {
	name, ok := l.names[id]
	return name, ok
}

// ID returns the id displayed as name. Names shared by several variables do
// not resolve.
func (l *Lookup) ID(name string) (string, bool) {
	if _, ok := l.ambiguous[name]; ok {
		return "", false
	}
	id, ok := l.ids[name]
	return id, ok
}
