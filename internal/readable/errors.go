package readable

import "fmt"

// ParseError reports display syntax that cannot be converted to storage
// syntax.
type ParseError struct {
	Input  string
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at offset %d: %s", e.Input, e.Pos, e.Reason)
}

// UnknownIDError is returned when a storage formula references an id that has
// no display name.
type UnknownIDError struct {
	ID string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("no variable with id %q", e.ID)
}
