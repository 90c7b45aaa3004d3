// Package types defines the genealogical record model (Person, Family,
// Event, Date), the Repository read contract, the Finding produced by
// verification rules, and standard error types for the lineage system.
// See docs/ARCHITECTURE.md § Data Model.
package types
