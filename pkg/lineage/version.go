// Package lineage exposes module-level metadata.
package lineage

const Version = "0.1.0"
