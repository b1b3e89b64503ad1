// Package preflight provides the fatal precondition checks that run before
// any scan work is dispatched: the external mediainfo tool must resolve and
// answer a version query, and the scan root must be a readable directory.
//
// These checks are deliberately stricter than per-file extraction failures.
// A broken tool or bad root fails the whole run up front (exit 1, nothing
// scanned); an unreadable individual file is merely skipped later.
package preflight
