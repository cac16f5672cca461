/*package logging controls how chatty the ldsgen tool is.*/
package logging

import (
	"fmt"
	"runtime"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// Mode is consulted by the command modes directly, so it doesn't need to be
// threaded through every function in the project.
var Mode Flag = Nil

// Set parses a -log flag value. Unrecognized names leave Mode untouched and
// return an error.
func Set(name string) error {
	switch name {
	case "nil":
		Mode = Nil
	case "performance":
		Mode = Performance
	case "debug":
		Mode = Debug
	default:
		return fmt.Errorf("The log mode '%s' isn't one I recognize. Valid "+
			"modes are 'nil', 'performance', and 'debug'.", name)
	}
	return nil
}

// MemString returns a string containing various statistics on the current
// memory usage of ldsgen.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB; Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}
