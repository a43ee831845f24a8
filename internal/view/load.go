package view

// Phase is the progress of a single load.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// Load tracks one request/response cycle: idle -> loading -> success | error.
// A finished load may be started again. Transitions that do not follow the
// graph are ignored and reported by a false return.
type Load[T any] struct {
	phase Phase
	value T
	err   error
}

// Start moves to loading from any phase except loading.
func (l *Load[T]) Start() bool {
	if l.phase == PhaseLoading {
		return false
	}
	l.phase = PhaseLoading
	l.err = nil
	return true
}

// Succeed records the result of a running load.
func (l *Load[T]) Succeed(v T) bool {
	if l.phase != PhaseLoading {
		return false
	}
	l.phase = PhaseSuccess
	l.value = v
	return true
}

// Fail records the error of a running load. The previous value is dropped.
func (l *Load[T]) Fail(err error) bool {
	if l.phase != PhaseLoading {
		return false
	}
	var zero T
	l.phase = PhaseError
	l.value = zero
	l.err = err
	return true
}

func (l *Load[T]) Phase() Phase { return l.phase }
func (l *Load[T]) Value() T     { return l.value }
func (l *Load[T]) Err() error   { return l.err }

// Done reports whether the load reached success or error.
func (l *Load[T]) Done() bool {
	return l.phase == PhaseSuccess || l.phase == PhaseError
}
