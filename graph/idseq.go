package graph

import (
	"strconv"

	"github.com/google/uuid"
)

// IDSeq is a pull-based, infinite, non-repeating producer of ids, plus an
// explicit push-back slot for the at-most-one id a remove operation returns
// for reuse on the same lineage (spec's "id generators as lazy sequences").
//
// Implementations are immutable values: Pull and Push both return a new
// IDSeq rather than mutating the receiver, so the sequence's state travels
// with the Graph value that owns it. Infinite-and-non-repeating is a
// caller contract; the graph package does not and cannot verify it beyond
// detecting a live-id collision at the point of use (ErrIdSeqCollision).
type IDSeq interface {
	// Pull returns the next id and the successor sequence. ok is false if
	// the sequence is (unexpectedly) exhausted.
	Pull() (id string, rest IDSeq, ok bool)

	// Push returns a successor sequence that will yield id on the very
	// next Pull, for reuse of an id discarded by a remove operation.
	Push(id string) IDSeq
}

// intSeq is the default IDSeq: an arithmetic progression rendered as a
// decimal string, with a single push-back slot. NewNodeIDSeq/NewEdgeIDSeq
// start it at 0 (step 2) and 1 (step 2) respectively, producing the
// canonical even/odd split spec.md §3 describes.
type intSeq struct {
	next    int64
	step    int64
	pending *string
}

// NewNodeIDSeq returns the default node id sequence: 0, 2, 4, ...
func NewNodeIDSeq() IDSeq { return intSeq{next: 0, step: 2} }

// NewEdgeIDSeq returns the default edge id sequence: 1, 3, 5, ...
func NewEdgeIDSeq() IDSeq { return intSeq{next: 1, step: 2} }

func (s intSeq) Pull() (string, IDSeq, bool) {
	if s.pending != nil {
		id := *s.pending
		return id, intSeq{next: s.next, step: s.step, pending: nil}, true
	}
	id := strconv.FormatInt(s.next, 10)
	return id, intSeq{next: s.next + s.step, step: s.step}, true
}

func (s intSeq) Push(id string) IDSeq {
	cp := id
	return intSeq{next: s.next, step: s.step, pending: &cp}
}

// uuidSeq is an IDSeq backed by github.com/google/uuid, demonstrating that
// callers may plug in any infinite, non-repeating generator — not just the
// default integer progressions. Push-back keeps the contract's "at most one
// id held for reuse" even though UUID collisions are not a practical
// concern.
type uuidSeq struct {
	pending *string
}

// UUIDSeq returns an IDSeq that mints random UUIDv4 strings.
func UUIDSeq() IDSeq { return uuidSeq{} }

func (s uuidSeq) Pull() (string, IDSeq, bool) {
	if s.pending != nil {
		id := *s.pending
		return id, uuidSeq{}, true
	}
	return uuid.NewString(), uuidSeq{}, true
}

func (s uuidSeq) Push(id string) IDSeq {
	cp := id
	return uuidSeq{pending: &cp}
}
