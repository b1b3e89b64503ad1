// Package mediainfo wraps the external mediainfo utility for single-field
// codec metadata extraction.
//
// The package has one concern: pull the Format profile of the primary video
// stream out of a container file with a bounded wait. Per-file failures
// (corrupted files, missing video streams, tool crashes, timeouts) are
// deliberately swallowed and reported as an absent value, because a library
// scan must tolerate unreadable files. Tool availability is a separate,
// fatal concern handled by the preflight package.
package mediainfo
