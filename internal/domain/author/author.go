package author

// Author is the author value object. Two authors are equal when all fields are equal.
type Author struct {
	id   string
	name string
}

// New creates an Author. No validation: any id and name are accepted.
func New(id, name string) Author {
	return Author{id: id, name: name}
}

// ID returns the author identifier.
func (a Author) ID() string { return a.id }

// Name returns the display name.
func (a Author) Name() string { return a.name }
