// Package catalog implements the engine's error-class registry: a static
// mapping from stable error class identifiers to message templates and SQL
// state codes.
//
// # Error classes
//
// An error class is an opaque uppercase identifier such as "DIVIDE_BY_ZERO"
// naming one category of failure. Each class maps to a message template with
// positional {0}, {1}, ... placeholders and, optionally, a five-character
// SQL standard state code:
//
//	{
//	  "DIVIDE_BY_ZERO": {"message": "cannot divide {0} by zero", "sqlState": "22012"}
//	}
//
// # Lookup
//
// A Catalog is immutable after construction, so Format and SQLState are safe
// to call concurrently from any goroutine:
//
//	msg, err := catalog.Default().Format("DIVIDE_BY_ZERO", []string{"7"})
//	// msg == "cannot divide 7 by zero"
//	state := catalog.Default().SQLState("DIVIDE_BY_ZERO") // "22012"
//
// Format fails when the class is unknown or the parameter count does not
// match the template; it never truncates or pads parameters.
//
// # The process catalog
//
// Default returns the process-wide catalog used by pkg/fault when it formats
// classified errors. It starts out as the embedded engine catalog
// (error-classes.json) and may be replaced once at startup with SetDefault,
// typically after loading a deployment-specific catalog file with LoadFile.
//
// # Tooling
//
// Lint checks a raw catalog document and reports every problem it can find
// (duplicates, ordering, malformed templates or SQL states). The errlint
// command wraps it for CI use.
package catalog
