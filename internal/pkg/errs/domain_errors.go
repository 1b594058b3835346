package errs

// Error kinds shared by every layer. Specific sentinels are created with NewKind
// so transports can classify them without knowing each one.
var (
	ErrValidation = New("kind: validation")
	ErrNotFound   = New("kind: not found")
	ErrConflict   = New("kind: conflict")
	ErrForbidden  = New("kind: forbidden")
	ErrInternal   = New("kind: internal")

	// ErrTransient marks Internal errors that a caller may retry (timeouts,
	// unavailable storage).
	ErrTransient = New("kind: transient")
)

type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindForbidden  Kind = "FORBIDDEN"
	KindInternal   Kind = "INTERNAL"
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NewKind returns a sentinel that matches both itself and kind under Is.
// Messages must be unique: errors with equal messages and types are treated
// as equivalent by Is.
func NewKind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// KindOf reports the taxonomy bucket of err. Unclassified errors are Internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrValidation):
		return KindValidation
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrConflict):
		return KindConflict
	case Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindInternal
	}
}

func IsTransient(err error) bool {
	return Is(err, ErrTransient)
}
