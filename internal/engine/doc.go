// Package engine resolves production requirements over a catalog: the
// transitive ingredient totals for one unit of a component, and the number
// of concurrent producers needed to sustain a target output rate.
//
// Every operation is a pure, synchronous, in-memory computation. The
// engine never logs and never mutates the catalog; results are memoized
// internally but the cache is invisible to callers.
package engine
