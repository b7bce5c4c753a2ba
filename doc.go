// Package loompy provides the attribute value normalization engine for
// loom-style datasets: a pair of conversion pipelines that collapse
// loosely-typed, array-like caller input into a small closed set of
// canonical persisted forms, and restore caller-facing values on read.
//
// The write path (normalize) accepts slices, untyped []interface{} lists,
// dense matrices with a singleton axis, and sparse matrices, and produces
// exactly one of:
//   - a numeric array with the caller's element width preserved
//   - an unsigned single-byte boolean array (0/1)
//   - a fixed-width ASCII byte-string array, with every character outside
//     the 7-bit range written as a decimal XML character reference
//   - a generic text-object array, when object-string mode is requested
//
// The read path (materialize) reverses the escaping and tolerates arrays
// written by legacy, non-conforming producers: unescaped UTF-8 bytes,
// already-decoded native text, and an enumerated set of known malformed
// byte patterns repaired through an explicit recovery policy.
//
// # Quick Start
//
//	import (
//	    "github.com/jlikhuva/loompy/pkg/normalize"
//	)
//
//	stored, err := normalize.Normalize([]string{"café"}, normalize.DefaultOptions())
//	if err != nil {
//	    // the caller supplied an unsupported container or element kind
//	}
//	// hand stored.Array to the store ...
//
//	back, err := normalize.Materialize(stored.Array)
//	// back.Interface() == []string{"café"}
//
// # Package Layout
//
//   - pkg/attr: the attribute value model (kinds, arrays, matrices, sparse)
//   - pkg/shape: reduction of any accepted container to a 1-D array
//   - pkg/textenc: ASCII escaping/unescaping of text arrays
//   - pkg/normalize: the two pipeline entry points and the recovery policy
//   - pkg/arrowcompat: adapter from Apache Arrow arrays
//
// All operations are synchronous, stateless pure functions over in-memory
// arrays and are safe for concurrent use as long as the caller does not
// mutate the input slices during a call.
package loompy
