package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrTagMismatch is returned by Update when the live element's tag
	// differs from the description's tag. The caller should mount a fresh
	// element instead.
	ErrTagMismatch = errors.New("reconcile: tag mismatch")

	// ErrNotElement is returned when an element operation is given a
	// non-element description.
	ErrNotElement = errors.New("reconcile: description is not an element")

	// ErrNilNode is returned when a nil description or element is passed.
	ErrNilNode = errors.New("reconcile: nil node")
)

func tagMismatch(have, want string) error {
	return fmt.Errorf("%w: live <%s>, description <%s>", ErrTagMismatch, have, want)
}
