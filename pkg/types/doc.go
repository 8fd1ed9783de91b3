// Package types defines the error vocabulary shared by the cursor codecs.
//
// Errors carry a stable Kind so callers can branch on intent rather than
// text:
//
//	f, err := ani.Decode(r)
//	switch {
//	case types.IsKind(err, types.ErrKindFormat):
//	    // not a cursor at all
//	case types.IsKind(err, types.ErrKindTruncated):
//	    // cut short; errors.Unwrap yields the I/O error
//	}
//
// This package has no dependencies beyond the standard library.
package types
