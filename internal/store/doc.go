// Package store holds the trajectory records of one interactive session.
//
// Each record is styled from a fixed six-entry palette by its insertion
// index, so the first record is always [Blue]/[Solid] and the seventh
// repeats it. The store supports only [Store.Append] and [Store.Clear]; it
// lives as long as the session that owns it and is never persisted.
package store
