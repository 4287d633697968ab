// Package session detects whether the tool runs inside a graphical
// session and, for diagnostics, which display server is running.
package session
