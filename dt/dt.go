// Package dt provides the concrete containers used by the collection
// packages: the mutable Vector and its bidirectional Cursor, the
// insertion-ordered Set and Groups, the Map wrapper, inclusive integer
// Ranges, and the Optional, Tuple and Memo value types.
//
// All top level structures in this package can be trivially
// constructed. These structures are not safe for access from multiple
// concurrent go routines.
package dt

import "github.com/tychoish/coll/ers"

// ErrUninitializedContainer is the content of the panic produced when you
// attempt to perform an operation on an uninitialized container.
const ErrUninitializedContainer ers.Error = ers.Error("uninitialized container")
