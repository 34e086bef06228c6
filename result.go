package combo

// CommittedStatus of a failed evaluation.
//
// An Uncommitted failure lets an enclosing alternative try another branch, a
// Committed one does not.
type CommittedStatus uint8

const (
	Uncommitted CommittedStatus = iota
	Committed
)

// Or returns Committed if either status is Committed.
func (c CommittedStatus) Or(other CommittedStatus) CommittedStatus {
	if c == Committed || other == Committed {
		return Committed
	}
	return Uncommitted
}

// IsCommitted reports whether the status is Committed.
func (c CommittedStatus) IsCommitted() bool { return c == Committed }

func (c CommittedStatus) String() string {
	if c == Committed {
		return "committed"
	}
	return "uncommitted"
}

func committedIf(b bool) CommittedStatus {
	if b {
		return Committed
	}
	return Uncommitted
}

// Result of evaluating a Parser at one Cursor.
//
// On success Err is nil, Value holds the parsed value and Length the number of
// symbols consumed from the Cursor the Result was produced at. On failure Err is
// set and Status says whether the failure is committed.
type Result[A any] struct {
	Value  A
	Length int
	Err    *ParseError
	Status CommittedStatus
}

// Success constructs a successful Result.
func Success[A any](value A, length int) Result[A] {
	return Result[A]{Value: value, Length: length}
}

// Failure constructs a failed Result.
func Failure[A any](err *ParseError, status CommittedStatus) Result[A] {
	return Result[A]{Err: err, Status: status}
}

// Ok reports whether the Result is a success.
func (r Result[A]) Ok() bool { return r.Err == nil }

// Committed reports whether the Result is a committed failure.
func (r Result[A]) Committed() bool { return r.Err != nil && r.Status == Committed }

// WithUncommitted demotes a committed failure to uncommitted.
func (r Result[A]) WithUncommitted() Result[A] {
	if r.Err != nil {
		r.Status = Uncommitted
	}
	return r
}

// WithCommittedFallback promotes a failure to committed if consumed is true.
//
// This is the sequencing rule: once input has been consumed, a subsequent failure
// may no longer be backtracked over.
func (r Result[A]) WithCommittedFallback(consumed bool) Result[A] {
	if r.Err != nil {
		r.Status = r.Status.Or(committedIf(consumed))
	}
	return r
}

// WithAddedLength adds n to the consumed length of a success.
func (r Result[A]) WithAddedLength(n int) Result[A] {
	if r.Err == nil {
		r.Length += n
	}
	return r
}

// MapError transforms the error of a failure.
func (r Result[A]) MapError(f func(*ParseError) *ParseError) Result[A] {
	if r.Err != nil {
		r.Err = f(r.Err)
	}
	return r
}

// Unwrap returns the value and error of the Result.
func (r Result[A]) Unwrap() (A, error) {
	if r.Err != nil {
		var zero A
		return zero, r.Err
	}
	return r.Value, nil
}

// MapSuccess transforms the value of a successful Result.
func MapSuccess[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.Err != nil {
		return Result[B]{Err: r.Err, Status: r.Status}
	}
	return Result[B]{Value: f(r.Value), Length: r.Length}
}

// failed propagates a failure into a Result of another type.
func failed[B, A any](r Result[A]) Result[B] {
	return Result[B]{Err: r.Err, Status: r.Status}
}
