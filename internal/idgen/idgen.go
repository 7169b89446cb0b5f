// Package idgen provides collision-free document identifier generators.
package idgen

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ErrUnknownKind signals an unsupported generator name.
var ErrUnknownKind = errors.New("unknown id generator")

// Generator kinds accepted by New.
const (
	KindUUID = "uuid"
	KindULID = "ulid"
)

// Generator produces unique identifiers.
type Generator interface {
	NewID() string
}

// Func adapts a plain function to Generator.
type Func func() string

// NewID implements Generator.
func (f Func) NewID() string { return f() }

// UUID returns a generator of random (v4) UUID strings.
func UUID() Generator {
	return Func(uuid.NewString)
}

// ULID returns a generator of lexicographically sortable ULID strings.
// ulid.Make is monotonic within a process and safe for concurrent use.
func ULID() Generator {
	return Func(func() string { return ulid.Make().String() })
}

// New returns the generator for kind. Empty kind means UUID.
func New(kind string) (Generator, error) {
	switch kind {
	case "", KindUUID:
		return UUID(), nil
	case KindULID:
		return ULID(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
