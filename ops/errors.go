package ops

import "errors"

// ErrUnknownRelation indicates a relation label passed to an ops function
// is not known to the graph's relation bijection.
var ErrUnknownRelation = errors.New("ops: unknown relation label")
