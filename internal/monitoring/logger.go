// Package monitoring holds the replaceable diagnostic logger shared by the
// generator, the sweep runner and the commands.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Quiet mutes Logf and returns a function restoring the previous logger.
func Quiet() (restore func()) {
	prev := Logf
	SetLogger(nil)
	return func() { Logf = prev }
}
