package fifo

import "log"

// Verbose gates the diagnostic logging mirror/unmirror/unmirror_all/poke
// emit. The FIFO core never logs errors — those are always signaled
// through return values — this is purely the "verbose" tracing the
// original ties to its logging subsystem's verbose level.
var Verbose = false

func verbosef(format string, args ...any) {
	if Verbose {
		log.Printf("fifo: "+format, args...)
	}
}
