// Package mmfile provides read-only access to cursor files, memory-mapped
// where the platform allows it.
package mmfile
