// Command profilescan scans a media library for video files whose Format
// profile matches a configured set of problematic values.
//
// The root command performs the scan; `config` manages the TOML
// configuration, `doctor` checks external dependencies, and `selftest`
// (or --test) runs the built-in check suite.
package main
