package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Lookup failures returned by Format. A Format failure always means the
// call site and the catalog disagree, which is a bug in one of them.
var (
	// ErrUnknownClass indicates the requested error class is not registered.
	ErrUnknownClass = errors.New("unknown error class")

	// ErrArityMismatch indicates the number of message parameters does not
	// match the template's placeholder count.
	ErrArityMismatch = errors.New("message parameter arity mismatch")
)

// Entry describes a single error class: a message template with positional
// {0}, {1}, ... placeholders and an optional SQL standard state code.
type Entry struct {
	Message  string `json:"message" validate:"required"`
	SQLState string `json:"sqlState,omitempty" validate:"omitempty,len=5,alphanum"`
}

// Catalog is an immutable registry of error classes. Once constructed it is
// never mutated, so it is safe for concurrent reads from any goroutine.
type Catalog struct {
	entries map[string]entry
}

// entry is the parsed form of an Entry: the template plus its placeholder
// count, computed once at load time.
type entry struct {
	template string
	sqlState string
	arity    int
}

var (
	validate    = validator.New()
	classIDRe   = regexp.MustCompile(`^[A-Z][A-Z0-9_.]*$`)
	placeholder = regexp.MustCompile(`\{(\d+)\}`)
)

// New builds a Catalog from class-id -> Entry pairs. Every entry is
// validated: the class id must be an uppercase dotted/underscored code, the
// template's placeholders must be contiguous starting at {0}, and the SQL
// state (when present) must be a five-character uppercase alphanumeric code.
func New(entries map[string]Entry) (*Catalog, error) {
	parsed := make(map[string]entry, len(entries))
	for id, e := range entries {
		p, err := parseEntry(id, e)
		if err != nil {
			return nil, err
		}
		parsed[id] = p
	}
	return &Catalog{entries: parsed}, nil
}

func parseEntry(id string, e Entry) (entry, error) {
	if err := validateClassID(id); err != nil {
		return entry{}, err
	}
	if err := validate.Struct(e); err != nil {
		return entry{}, fmt.Errorf("error class %s: %w", id, err)
	}
	if e.SQLState != strings.ToUpper(e.SQLState) {
		return entry{}, fmt.Errorf("error class %s: SQL state %q must be uppercase", id, e.SQLState)
	}
	arity, err := templateArity(e.Message)
	if err != nil {
		return entry{}, fmt.Errorf("error class %s: %w", id, err)
	}
	return entry{template: e.Message, sqlState: e.SQLState, arity: arity}, nil
}

func validateClassID(id string) error {
	if !classIDRe.MatchString(id) {
		return fmt.Errorf("invalid error class id %q", id)
	}
	return nil
}

// templateArity returns the number of parameters a template expects. The
// placeholder indices must be exactly {0}..{n-1}; gaps make the template
// ambiguous and are rejected.
func templateArity(template string) (int, error) {
	seen := map[int]bool{}
	max := -1
	for _, m := range placeholder.FindAllStringSubmatch(template, -1) {
		i, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, fmt.Errorf("bad placeholder %q", m[0])
		}
		seen[i] = true
		if i > max {
			max = i
		}
	}
	for i := 0; i <= max; i++ {
		if !seen[i] {
			return 0, fmt.Errorf("template %q is missing placeholder {%d}", template, i)
		}
	}
	return max + 1, nil
}

// Format renders the message template for class, substituting params
// positionally. It fails when the class is unknown or len(params) does not
// match the template arity; parameters are never truncated or padded.
func (c *Catalog) Format(class string, params []string) (string, error) {
	e, ok := c.entries[class]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}
	if len(params) != e.arity {
		return "", fmt.Errorf("%w: class %s expects %d parameter(s), got %d",
			ErrArityMismatch, class, e.arity, len(params))
	}
	msg := placeholder.ReplaceAllStringFunc(e.template, func(m string) string {
		i, _ := strconv.Atoi(m[1 : len(m)-1])
		return params[i]
	})
	return msg, nil
}

// SQLState returns the SQL state code registered for class, or "" when the
// class is unknown or defines none.
func (c *Catalog) SQLState(class string) string {
	return c.entries[class].sqlState
}

// Has reports whether class is registered.
func (c *Catalog) Has(class string) bool {
	_, ok := c.entries[class]
	return ok
}

// Classes returns all registered class ids in sorted order.
func (c *Catalog) Classes() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
