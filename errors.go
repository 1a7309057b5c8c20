package ob

import "github.com/cockroachdb/errors"

var (
	// ErrNotValueType is raised when an identity operation receives a type
	// that does not embed Ob.
	ErrNotValueType = errors.New("ob: not a value type")

	// ErrAmbiguousAncestor is raised when one level embeds more than one value type.
	ErrAmbiguousAncestor = errors.New("ob: more than one embedded value type")

	// ErrInaccessibleField is raised when a field cannot be read reflectively.
	ErrInaccessibleField = errors.New("ob: inaccessible field")

	// ErrInvalidNormalizer is raised for a Normalizer without a type or function.
	ErrInvalidNormalizer = errors.New("ob: invalid normalizer")
)
