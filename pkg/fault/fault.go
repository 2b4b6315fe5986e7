package fault

import (
	"errors"
	"io/fs"

	"cindererr/pkg/catalog"
)

// Classified is the capability shared by every engine error that can carry a
// stable error class. Both accessors use the empty string as the single
// "absent" encoding: ErrorClass() == "" means the error is unclassified, and
// SQLState() == "" means no SQL state is defined. Consumers must treat ""
// as "none", never as a valid value.
//
// Programmatic error matching must key on ErrorClass(), never on message
// text: messages come from the catalog and may be reworded or localized
// without notice.
type Classified interface {
	// ErrorClass returns the stable error class identifier, or "" for
	// legacy/unclassified errors.
	ErrorClass() string

	// SQLState returns the SQL state derived from the error class, or ""
	// when the class is absent or defines none. It is always a pure
	// function of ErrorClass.
	SQLState() string
}

// Kind is the native failure category of an engine error. The set is
// closed: a new category means a new Kind constant, not a new error type.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors this package cannot
	// classify. It is not a constructible category.
	KindUnknown Kind = iota
	// KindGeneric represents a general engine failure
	KindGeneric
	// KindRuntime represents an unexpected failure during execution
	KindRuntime
	// KindArithmetic represents an arithmetic failure such as overflow or
	// division by zero
	KindArithmetic
	// KindIO represents an input/output failure
	KindIO
	// KindFileNotFound represents a missing file or path
	KindFileNotFound
	// KindFileAlreadyExists represents a path that unexpectedly exists
	KindFileAlreadyExists
	// KindSecurity represents an authorization or permission failure
	KindSecurity
	// KindSQL represents a SQL execution failure
	KindSQL
	// KindSQLFeatureUnsupported represents use of an unsupported SQL feature
	KindSQLFeatureUnsupported
	// KindConcurrentModification represents a conflicting concurrent change
	KindConcurrentModification
	// KindDateTime represents an invalid datetime value or operation
	KindDateTime
	// KindIndexOutOfBounds represents an out-of-range index access
	KindIndexOutOfBounds
	// KindMethodNotFound represents a failed method lookup
	KindMethodNotFound
	// KindTypeNotFound represents a failed type lookup
	KindTypeNotFound
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "Generic"
	case KindRuntime:
		return "Runtime"
	case KindArithmetic:
		return "Arithmetic"
	case KindIO:
		return "IO"
	case KindFileNotFound:
		return "FileNotFound"
	case KindFileAlreadyExists:
		return "FileAlreadyExists"
	case KindSecurity:
		return "Security"
	case KindSQL:
		return "SQL"
	case KindSQLFeatureUnsupported:
		return "SQLFeatureUnsupported"
	case KindConcurrentModification:
		return "ConcurrentModification"
	case KindDateTime:
		return "DateTime"
	case KindIndexOutOfBounds:
		return "IndexOutOfBounds"
	case KindMethodNotFound:
		return "MethodNotFound"
	case KindTypeNotFound:
		return "TypeNotFound"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per native category. Errors constructed by this
// package match their kind's sentinel (and the sentinels of its parent
// categories) under errors.Is. The file kinds reuse the fs sentinels so
// engine errors interoperate with code that checks fs.ErrNotExist and
// fs.ErrExist.
var (
	// ErrGeneric indicates a general engine failure
	ErrGeneric = errors.New("engine failure")

	// ErrRuntime indicates an unexpected failure during execution
	ErrRuntime = errors.New("runtime failure")

	// ErrArithmetic indicates an arithmetic failure
	ErrArithmetic = errors.New("arithmetic failure")

	// ErrIO indicates an input/output failure
	ErrIO = errors.New("i/o failure")

	// ErrFileNotFound indicates a missing file or path
	ErrFileNotFound = fs.ErrNotExist

	// ErrFileAlreadyExists indicates a path that unexpectedly exists
	ErrFileAlreadyExists = fs.ErrExist

	// ErrSecurity indicates an authorization or permission failure
	ErrSecurity = errors.New("security failure")

	// ErrSQL indicates a SQL execution failure
	ErrSQL = errors.New("sql failure")

	// ErrSQLFeatureUnsupported indicates use of an unsupported SQL feature
	ErrSQLFeatureUnsupported = errors.New("sql feature not supported")

	// ErrConcurrentModification indicates a conflicting concurrent change
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrDateTime indicates an invalid datetime value or operation
	ErrDateTime = errors.New("datetime failure")

	// ErrIndexOutOfBounds indicates an out-of-range index access
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrMethodNotFound indicates a failed method lookup
	ErrMethodNotFound = errors.New("method not found")

	// ErrTypeNotFound indicates a failed type lookup
	ErrTypeNotFound = errors.New("type not found")
)

// kindSentinels maps each kind to its sentinel error.
var kindSentinels = map[Kind]error{
	KindGeneric:                ErrGeneric,
	KindRuntime:                ErrRuntime,
	KindArithmetic:             ErrArithmetic,
	KindIO:                     ErrIO,
	KindFileNotFound:           ErrFileNotFound,
	KindFileAlreadyExists:      ErrFileAlreadyExists,
	KindSecurity:               ErrSecurity,
	KindSQL:                    ErrSQL,
	KindSQLFeatureUnsupported:  ErrSQLFeatureUnsupported,
	KindConcurrentModification: ErrConcurrentModification,
	KindDateTime:               ErrDateTime,
	KindIndexOutOfBounds:       ErrIndexOutOfBounds,
	KindMethodNotFound:         ErrMethodNotFound,
	KindTypeNotFound:           ErrTypeNotFound,
}

// kindParents encodes the category hierarchy: a kind also matches its
// parent's sentinel under errors.Is. File failures are a specialization of
// I/O failures, an unsupported SQL feature is a SQL failure, and the
// arithmetic/datetime/bounds/concurrency/security categories are
// specializations of runtime failures.
var kindParents = map[Kind]Kind{
	KindFileNotFound:           KindIO,
	KindFileAlreadyExists:      KindIO,
	KindSQLFeatureUnsupported:  KindSQL,
	KindArithmetic:             KindRuntime,
	KindDateTime:               KindRuntime,
	KindIndexOutOfBounds:       KindRuntime,
	KindConcurrentModification: KindRuntime,
	KindSecurity:               KindRuntime,
}

// kindPriorities is the deterministic order KindOf checks sentinels in.
// Specialized kinds come before their parents so a file-not-found error is
// reported as FileNotFound, not IO.
var kindPriorities = []Kind{
	KindFileNotFound,
	KindFileAlreadyExists,
	KindSQLFeatureUnsupported,
	KindArithmetic,
	KindDateTime,
	KindIndexOutOfBounds,
	KindConcurrentModification,
	KindSecurity,
	KindMethodNotFound,
	KindTypeNotFound,
	KindIO,
	KindSQL,
	KindRuntime,
	KindGeneric,
}

// Error is an engine error: one native failure category (the Kind, fixed at
// construction) combined with the Classified capability. Instances are
// immutable after construction and safe to read from any goroutine.
type Error struct {
	kind  Kind
	class string
	msg   string
	cause error
	cat   *catalog.Catalog // catalog the message came from; nil when unclassified
}

var _ Classified = (*Error)(nil)

// New constructs a classified error of the given kind. The message is
// produced by the process catalog from class and params.
//
// New panics when class is unknown to the catalog or params does not match
// the template arity: a broken catalog reference is a bug at the call site
// or in the catalog, and must surface immediately rather than produce a
// placeholder message. The panic value wraps catalog.ErrUnknownClass or
// catalog.ErrArityMismatch.
func New(kind Kind, class string, params ...string) *Error {
	return newError(kind, nil, class, params)
}

// Wrap is New with an underlying cause retained for chaining.
func Wrap(kind Kind, cause error, class string, params ...string) *Error {
	return newError(kind, cause, class, params)
}

// NewMessage constructs an unclassified error of the given kind from a
// caller-supplied message. This is the legacy path for call sites not yet
// migrated to the catalog: ErrorClass and SQLState both report "".
func NewMessage(kind Kind, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

// newError is the single generic constructor every classified variant
// delegates to. The catalog pointer is captured here so SQLState stays
// stable for the lifetime of the instance even if SetDefault is called
// afterwards.
func newError(kind Kind, cause error, class string, params []string) *Error {
	cat := catalog.Default()
	msg, err := cat.Format(class, params)
	if err != nil {
		panic(err)
	}
	return &Error{kind: kind, class: class, msg: msg, cause: cause, cat: cat}
}

// Error renders the message, appending the cause chain the way fmt.Errorf
// with %w does. Use Message for the bare catalog-formatted text.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Message returns the error message exactly as computed at construction:
// the catalog-formatted string for classified errors, the caller-supplied
// text otherwise.
func (e *Error) Message() string { return e.msg }

// Kind returns the native failure category, fixed at construction.
func (e *Error) Kind() Kind { return e.kind }

// ErrorClass implements Classified.
func (e *Error) ErrorClass() string { return e.class }

// SQLState implements Classified. It is derived from the error class via
// the catalog the error was constructed against; unclassified errors
// report "".
func (e *Error) SQLState() string {
	if e.class == "" {
		return ""
	}
	return e.cat.SQLState(e.class)
}

// Unwrap returns the cause, or nil.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is the sentinel of this error's kind or of one
// of its parent categories. This is what makes
// errors.Is(err, fault.ErrIO) true for a file-not-found error.
func (e *Error) Is(target error) bool {
	for k := e.kind; ; {
		if target == kindSentinels[k] {
			return true
		}
		parent, ok := kindParents[k]
		if !ok {
			return false
		}
		k = parent
	}
}

// KindOf classifies an arbitrary error chain by matching kind sentinels in
// deterministic priority order (most specific first). It returns
// KindUnknown for errors this package did not produce and that do not match
// any sentinel.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kindPriorities {
		if errors.Is(err, kindSentinels[k]) {
			return k
		}
	}
	return KindUnknown
}

// HasKind reports whether err classifies as kind. Equivalent to
// KindOf(err) == kind.
func HasKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ClassOf returns the error class carried anywhere in err's chain, or ""
// when no error in the chain is classified.
func ClassOf(err error) string {
	var c Classified
	if errors.As(err, &c) {
		return c.ErrorClass()
	}
	return ""
}

// SQLStateOf returns the SQL state carried anywhere in err's chain, or ""
// when none is defined.
func SQLStateOf(err error) string {
	var c Classified
	if errors.As(err, &c) {
		return c.SQLState()
	}
	return ""
}
