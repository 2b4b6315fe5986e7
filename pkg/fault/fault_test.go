package fault_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cindererr/pkg/catalog"
	"cindererr/pkg/fault"
)

func TestNew_Classified(t *testing.T) {
	tests := []struct {
		name     string
		kind     fault.Kind
		class    string
		params   []string
		message  string
		sqlState string
	}{
		{
			name:     "arithmetic divide by zero",
			kind:     fault.KindArithmetic,
			class:    "DIVIDE_BY_ZERO",
			params:   []string{"7"},
			message:  "cannot divide 7 by zero",
			sqlState: "22012",
		},
		{
			name:     "sql duplicate key",
			kind:     fault.KindSQL,
			class:    "DUPLICATE_KEY",
			params:   []string{"users_email_key"},
			message:  "duplicate key violates unique constraint users_email_key",
			sqlState: "23505",
		},
		{
			name:     "file not found",
			kind:     fault.KindFileNotFound,
			class:    "PATH_NOT_FOUND",
			params:   []string{"/data/part-0001"},
			message:  "path /data/part-0001 does not exist",
			sqlState: "42K03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fault.New(tt.kind, tt.class, tt.params...)

			// Message is exactly the catalog-formatted string.
			assert.Equal(t, tt.message, err.Message())
			assert.Equal(t, tt.message, err.Error())
			assert.Equal(t, tt.class, err.ErrorClass())
			assert.Equal(t, tt.sqlState, err.SQLState())
			assert.Equal(t, tt.kind, err.Kind())
			assert.Nil(t, err.Unwrap())
		})
	}
}

func TestNewMessage_Unclassified(t *testing.T) {
	err := fault.NewMessage(fault.KindIO, "disk full", nil)

	assert.Equal(t, "disk full", err.Message())
	assert.Equal(t, "disk full", err.Error())
	assert.Equal(t, "", err.ErrorClass(), "legacy errors carry no class")
	assert.Equal(t, "", err.SQLState(), "no class means no SQL state")
	assert.Equal(t, fault.KindIO, err.Kind())
}

func TestAccessorIdempotence(t *testing.T) {
	err := fault.New(fault.KindArithmetic, "DIVIDE_BY_ZERO", "7")

	first, second := err.ErrorClass(), err.SQLState()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, err.ErrorClass())
		assert.Equal(t, second, err.SQLState())
	}

	// Swapping the process catalog must not change an existing instance.
	orig := catalog.Default()
	defer catalog.SetDefault(orig)
	empty, cerr := catalog.New(nil)
	require.NoError(t, cerr)
	catalog.SetDefault(empty)

	assert.Equal(t, "cannot divide 7 by zero", err.Message())
	assert.Equal(t, "22012", err.SQLState())
}

func TestCauseChaining(t *testing.T) {
	cause := errors.New("socket closed")
	err := fault.Wrap(fault.KindSQL, cause, "SQL_SYNTAX_ERROR", "near SELECT")

	assert.Same(t, cause, errors.Unwrap(error(err)))
	assert.True(t, errors.Is(err, cause))
	assert.NotSame(t, error(err), err.Unwrap(), "cause is never the error itself")
	assert.Equal(t, "syntax error: near SELECT", err.Message())
	assert.Equal(t, "syntax error: near SELECT: socket closed", err.Error())
}

func TestNew_PanicsOnBrokenCatalogReference(t *testing.T) {
	tests := []struct {
		name    string
		fn      func()
		wantErr error
	}{
		{
			name:    "unknown class",
			fn:      func() { fault.New(fault.KindGeneric, "NO_SUCH_CLASS") },
			wantErr: catalog.ErrUnknownClass,
		},
		{
			name:    "too many params",
			fn:      func() { fault.New(fault.KindArithmetic, "DIVIDE_BY_ZERO", "7", "extra") },
			wantErr: catalog.ErrArityMismatch,
		},
		{
			name:    "too few params",
			fn:      func() { fault.New(fault.KindArithmetic, "DIVIDE_BY_ZERO") },
			wantErr: catalog.ErrArityMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "construction must not succeed")
				err, ok := r.(error)
				require.True(t, ok, "panic value must be the catalog error")
				assert.ErrorIs(t, err, tt.wantErr)
			}()
			tt.fn()
		})
	}
}

func TestIs_CategoryHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "file not found matches its own sentinel",
			err:      fault.New(fault.KindFileNotFound, "PATH_NOT_FOUND", "/tmp/x"),
			target:   fault.ErrFileNotFound,
			expected: true,
		},
		{
			name:     "file not found matches fs.ErrNotExist",
			err:      fault.New(fault.KindFileNotFound, "PATH_NOT_FOUND", "/tmp/x"),
			target:   fs.ErrNotExist,
			expected: true,
		},
		{
			name:     "file not found is an i/o failure",
			err:      fault.New(fault.KindFileNotFound, "PATH_NOT_FOUND", "/tmp/x"),
			target:   fault.ErrIO,
			expected: true,
		},
		{
			name:     "file not found is not a sql failure",
			err:      fault.New(fault.KindFileNotFound, "PATH_NOT_FOUND", "/tmp/x"),
			target:   fault.ErrSQL,
			expected: false,
		},
		{
			name:     "file already exists matches fs.ErrExist",
			err:      fault.New(fault.KindFileAlreadyExists, "PATH_ALREADY_EXISTS", "/tmp/x"),
			target:   fs.ErrExist,
			expected: true,
		},
		{
			name:     "unsupported feature is a sql failure",
			err:      fault.New(fault.KindSQLFeatureUnsupported, "UNSUPPORTED_FEATURE", "MERGE"),
			target:   fault.ErrSQL,
			expected: true,
		},
		{
			name:     "arithmetic is a runtime failure",
			err:      fault.New(fault.KindArithmetic, "DIVISION_BY_ZERO"),
			target:   fault.ErrRuntime,
			expected: true,
		},
		{
			name:     "plain sql is not an unsupported feature",
			err:      fault.NewMessage(fault.KindSQL, "boom", nil),
			target:   fault.ErrSQLFeatureUnsupported,
			expected: false,
		},
		{
			name:     "generic matches only generic",
			err:      fault.NewMessage(fault.KindGeneric, "boom", nil),
			target:   fault.ErrGeneric,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected fault.Kind
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: fault.KindUnknown,
		},
		{
			name:     "foreign error",
			err:      errors.New("who knows"),
			expected: fault.KindUnknown,
		},
		{
			name:     "specialized kind wins over parent",
			err:      fault.New(fault.KindFileNotFound, "PATH_NOT_FOUND", "/x"),
			expected: fault.KindFileNotFound,
		},
		{
			name:     "plain io stays io",
			err:      fault.NewMessage(fault.KindIO, "disk full", nil),
			expected: fault.KindIO,
		},
		{
			name:     "wrapped fault keeps its kind",
			err:      fault.Wrap(fault.KindSecurity, errors.New("denied"), "ACCESS_DENIED", "catalog s3://secrets"),
			expected: fault.KindSecurity,
		},
		{
			name:     "stdlib fs error classifies as file not found",
			err:      fs.ErrNotExist,
			expected: fault.KindFileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fault.KindOf(tt.err))
			assert.True(t, fault.HasKind(tt.err, tt.expected))
		})
	}
}

func TestClassOfAndSQLStateOf(t *testing.T) {
	inner := fault.New(fault.KindArithmetic, "DIVIDE_BY_ZERO", "7")
	wrapped := errors.Join(errors.New("outer"), inner)

	assert.Equal(t, "DIVIDE_BY_ZERO", fault.ClassOf(wrapped))
	assert.Equal(t, "22012", fault.SQLStateOf(wrapped))

	assert.Equal(t, "", fault.ClassOf(errors.New("plain")))
	assert.Equal(t, "", fault.SQLStateOf(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Arithmetic", fault.KindArithmetic.String())
	assert.Equal(t, "SQLFeatureUnsupported", fault.KindSQLFeatureUnsupported.String())
	assert.Equal(t, "Unknown", fault.KindUnknown.String())
	assert.Equal(t, "Unknown", fault.Kind(999).String())
}
