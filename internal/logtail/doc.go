// Package logtail reads and formats roster's activity log.
//
// Read returns the last N lines of a file with a single pass and a ring
// buffer, so memory is bounded by N rather than the file size. Missing files
// yield no lines rather than an error.
//
// The log is written by zerolog as one JSON object per line. ParseLine decodes
// a line into an Event and Format renders it for humans:
//
//	2026-01-02 15:04:05 WARN [browse] – list fetch failed
//	    - error: context deadline exceeded
//	    - query: luke
//
// Lines that are not JSON pass through FormatLines unchanged.
package logtail
