package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Finding is a single problem discovered while linting a catalog document.
type Finding struct {
	// Class is the error class the finding refers to, or "" for
	// document-level problems.
	Class string

	// Problem describes what is wrong.
	Problem string

	// Warning findings do not make the catalog unusable; everything else
	// does.
	Warning bool
}

func (f Finding) String() string {
	if f.Class == "" {
		return f.Problem
	}
	return fmt.Sprintf("%s: %s", f.Class, f.Problem)
}

// Lint checks a raw catalog JSON document and reports every problem it can
// find, rather than stopping at the first one the way Load does. Beyond
// Load's validation it also detects duplicate class ids (which json decoding
// silently collapses) and ids that are out of sorted order (a convention
// that keeps catalog diffs reviewable).
func Lint(data []byte) []Finding {
	var findings []Finding

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return []Finding{{Problem: fmt.Sprintf("invalid JSON: %v", err)}}
	}
	if tok != json.Delim('{') {
		return []Finding{{Problem: "catalog document must be a JSON object"}}
	}

	seen := map[string]bool{}
	prev := ""
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return append(findings, Finding{Problem: fmt.Sprintf("invalid JSON: %v", err)})
		}
		id := tok.(string)

		var e Entry
		if err := dec.Decode(&e); err != nil {
			return append(findings, Finding{Class: id, Problem: fmt.Sprintf("invalid entry: %v", err)})
		}

		if seen[id] {
			findings = append(findings, Finding{Class: id, Problem: "duplicate error class"})
		}
		seen[id] = true

		if prev != "" && id < prev {
			findings = append(findings, Finding{Class: id, Problem: fmt.Sprintf("out of order (after %s)", prev), Warning: true})
		}
		prev = id

		if _, err := parseEntry(id, e); err != nil {
			findings = append(findings, Finding{Class: id, Problem: err.Error()})
		}
	}

	return findings
}
