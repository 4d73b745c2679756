package stroke

import "errors"

var (
	// ErrStrokeCountMismatch means a drawing has a different number of paths and labels.
	ErrStrokeCountMismatch = errors.New("stroke count mismatch")
	// ErrPathIndexMismatch means path indexes do not run 1..N.
	ErrPathIndexMismatch = errors.New("path index mismatch")
	// ErrLabelIndexMismatch means label indexes do not run 1..N.
	ErrLabelIndexMismatch = errors.New("label index mismatch")
	// ErrMalformedRecord means a descriptor has no readable annotation.
	ErrMalformedRecord = errors.New("malformed stroke record")
)
