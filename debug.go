package confetti

import (
	"fmt"
	"os"
)

// frameStats holds per-frame simulation counts.
// Only populated when debug mode is on.
type frameStats struct {
	frame   uint64
	alive   int
	spawned int
	removed int
}

// globalDebug mirrors the most recently set debug flag so that node
// operations (which lack a Confetti pointer) can check it cheaply.
var globalDebug bool

// debugLog prints per-frame simulation counts to stderr.
func debugLog(stats frameStats) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[confetti] frame %d | alive: %d | spawned: %d | removed: %d\n",
		stats.frame, stats.alive, stats.spawned, stats.removed)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("confetti debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[confetti] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
