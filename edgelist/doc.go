// Package edgelist defines the canonical edge list consumed by every
// netsmith kernel, together with its pre-flight validation and the table
// loaders that produce it.
//
// What
//
//   - EdgeList: parallel source/destination index slices, optional finite
//     weights, a directed flag and the node count N. Built once with New,
//     immutable afterwards.
//   - Validate: the standalone pre-flight check callers may run before
//     constructing an EdgeList. New runs it too.
//   - ValidationError: the single error type for malformed input. It names
//     the offending field, position and bound so a failure can be debugged
//     without re-deriving the check.
//   - ReadCSV / LoadFile / FromRows: turn a (source, destination, weight?)
//     table into an EdgeList.
//
// Validation order
//
// Validate reports the first violation found, checking in this order:
//
//  1. length mismatch (len(u) != len(v), then len(w) != len(u))
//  2. negative node index
//  3. non-finite weight (NaN, ±Inf)
//  4. node index >= declared node count
//
// Node count
//
// When WithNodes is not given, N is derived as max(max(u), max(v)) + 1.
// An empty edge list without WithNodes has zero nodes. Isolated trailing
// nodes must therefore be declared explicitly.
//
// Ownership
//
// New copies its inputs. The accessors U, V and W return the internal
// slices without copying; callers must treat them as read-only.
//
// Errors
//
//   - ErrValidation      matched by every *ValidationError via errors.Is.
//   - ErrMissingColumn   a requested column is absent from the table header.
//   - ErrMalformedRow    a table cell cannot be parsed as a node id or weight.
//   - ErrUnsupportedFormat LoadFile was given an extension it cannot read.
package edgelist
