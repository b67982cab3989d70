package layeranim

import (
	"fmt"
	"io"
	"os"
)

// debugOutput is where debug and warning lines go.
var debugOutput io.Writer = os.Stderr

// debugLogEvent prints one transition or gesture event.
func debugLogEvent(layer string, e TransitionEvent) {
	_, _ = fmt.Fprintf(debugOutput,
		"[layeranim] t=%.3f layer %q: %s %s %.4f -> %.4f\n",
		e.Time, layer, e.Key, e.Type, e.From, e.To)
}

// logWarning prints a non-fatal diagnostic.
func logWarning(err error) {
	_, _ = fmt.Fprintf(debugOutput, "[layeranim] warning: %v\n", err)
}
