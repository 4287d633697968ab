// Package apply turns a resolved locale into observable system state:
// the X11 keyboard layout, the system timezone, and the shell-sourceable
// environment file consumed by session-startup scripts.
//
// All external invocations go through the runner wrapper and are
// non-fatal; the environment file is written regardless of whether the
// apply tools succeeded.
package apply
