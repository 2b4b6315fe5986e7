// Package fault defines the typed error values used throughout the engine.
//
// Every fault pairs two independent facets:
//
//   - a native failure category (Kind) fixed at construction, which decides
//     what the error behaves as under errors.Is (arithmetic, I/O,
//     file-not-found, SQL, ...)
//   - the Classified capability: a stable error class identifier and the
//     SQL state derived from it via the process catalog
//
// # Construction
//
// The preferred path is classified construction, where the message comes
// from the catalog:
//
//	err := fault.New(fault.KindArithmetic, "DIVIDE_BY_ZERO", "7")
//	err.Message()    // "cannot divide 7 by zero"
//	err.ErrorClass() // "DIVIDE_BY_ZERO"
//	err.SQLState()   // "22012"
//
// New and Wrap panic when the class is not registered or the parameter count
// is wrong. That mismatch is a bug between the call site and the catalog and
// must never degrade into a placeholder message; catalog contents are
// verified ahead of time (see cmd/errlint), not at the failure site.
//
// Call sites not yet migrated to the catalog use NewMessage, which produces
// an unclassified fault: ErrorClass and SQLState both report "".
//
// # Matching
//
// Handlers match errors programmatically either by native category:
//
//	if errors.Is(err, fault.ErrIO) { ... }      // any I/O-category fault
//	switch fault.KindOf(err) { ... }            // deterministic priority order
//
// or, preferably, by error class:
//
//	if fault.ClassOf(err) == "DUPLICATE_KEY" { ... }
//
// Message text is for humans and logs only; it may be reworded or localized
// through the catalog without notice.
//
// # Category hierarchy
//
// Specialized kinds also match their parent category's sentinel: a
// KindFileNotFound fault satisfies errors.Is against ErrFileNotFound
// (an alias of fs.ErrNotExist), ErrIO, and nothing else. The hierarchy is
// data (kindParents), not a type hierarchy; the set of kinds is closed.
//
// # Control signals
//
// ExecutionError, UserAppExitError and DeadWorkerError carry
// process-control information rather than failure diagnostics; they are
// unclassified by definition. UpgradeError is informational and does not
// implement Classified at all.
//
// Faults are immutable after construction and safe to share across
// goroutines.
package fault
