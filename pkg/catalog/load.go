package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

//go:embed error-classes.json
var builtinJSON []byte

var defaultCatalog atomic.Pointer[Catalog]

func init() {
	c, err := Load(bytes.NewReader(builtinJSON))
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in error-classes.json is broken: %v", err))
	}
	defaultCatalog.Store(c)
}

// Load reads a catalog from a JSON document of the form
//
//	{"CLASS_ID": {"message": "...", "sqlState": "..."}, ...}
//
// and validates every entry.
func Load(r io.Reader) (*Catalog, error) {
	var raw map[string]Entry
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(raw)
}

// LoadFile reads a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// BuiltinJSON returns the raw bytes of the embedded engine catalog.
func BuiltinJSON() []byte {
	out := make([]byte, len(builtinJSON))
	copy(out, builtinJSON)
	return out
}

// Default returns the process-wide catalog. Unless SetDefault has been
// called it is the embedded engine catalog.
func Default() *Catalog {
	return defaultCatalog.Load()
}

// SetDefault replaces the process-wide catalog. It is intended to be called
// once at startup, before any errors are constructed.
func SetDefault(c *Catalog) {
	if c == nil {
		panic("catalog: SetDefault called with nil catalog")
	}
	defaultCatalog.Store(c)
}
