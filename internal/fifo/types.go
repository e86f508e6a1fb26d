package fifo

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by FIFO operations. Re-exported by the root
// txfifo package as the stable public contract.
var (
	ErrInvalidArgument = errors.New("fifo: invalid argument")
	ErrQueueFull       = errors.New("fifo: queue full")
	ErrTryAgain        = errors.New("fifo: try again")
	ErrOutOfMemory     = errors.New("fifo: out of memory")
)

// BlockFlags is a bitmask controlling blocking behavior. The low three
// bits (BlockNoInput, BlockMaxOutput, PullNoBlock) persist on a FIFO as
// its configured policy and are also the only tokens ParseBlockFlags
// accepts. PullPoke is call-site only: it is never stored on a FIFO and
// never appears in a parsed string.
type BlockFlags uint8

const (
	// BlockNoInput makes pulls against an empty queue block until an
	// item, a poke, or an unmirror_all wakes the waiter.
	BlockNoInput BlockFlags = 1 << iota

	// BlockMaxOutput makes pushes against an over-capacity queue block
	// until a pop signals room, instead of failing with ErrQueueFull.
	BlockMaxOutput

	// PullNoBlock forces a pull to return ErrTryAgain immediately when
	// the queue is empty, overriding BlockNoInput for that one call.
	PullNoBlock

	// PullPoke asks a blocking pull to return ErrTryAgain (instead of
	// re-blocking) when woken by Poke rather than by a push.
	PullPoke
)

// Has reports whether all bits in want are set.
func (f BlockFlags) Has(want BlockFlags) bool {
	return f&want == want
}

// String renders f as the comma-separated token form ParseBlockFlags
// accepts (PullPoke has no token and is rendered as "pull_poke" for
// diagnostics only).
func (f BlockFlags) String() string {
	var tokens []string
	if f.Has(BlockNoInput) {
		tokens = append(tokens, "block_no_input")
	}
	if f.Has(BlockMaxOutput) {
		tokens = append(tokens, "block_max_output")
	}
	if f.Has(PullNoBlock) {
		tokens = append(tokens, "pull_no_block")
	}
	if f.Has(PullPoke) {
		tokens = append(tokens, "pull_poke")
	}
	if len(tokens) == 0 {
		return ""
	}
	return strings.Join(tokens, ",")
}

// ParseBlockFlags parses a comma-separated list of the three lowercase
// block-flag tokens (no spaces). An unknown token is ErrInvalidArgument.
func ParseBlockFlags(s string) (BlockFlags, error) {
	var out BlockFlags
	if s == "" {
		return 0, nil
	}
	for _, tok := range strings.Split(s, ",") {
		switch tok {
		case "block_no_input":
			out |= BlockNoInput
		case "block_max_output":
			out |= BlockMaxOutput
		case "pull_no_block":
			out |= PullNoBlock
		default:
			return 0, fmt.Errorf("%w: unknown block flag %q", ErrInvalidArgument, tok)
		}
	}
	return out, nil
}

// Unbounded is the max_queued value meaning "no capacity limit".
const Unbounded = -1

// Infinity is the sentinel GetMaxSize reports for an unbounded FIFO.
const Infinity = int(^uint(0) >> 1) // math.MaxInt, without importing math for one constant

// ItemOps supplies the clone/free capability set an Item type needs at
// FIFO instantiation — the Go equivalent of the original's macro-bound
// CLONE_FN/FREE_FN pair. IsNil distinguishes the null sentinel push from
// a real item without requiring T to be comparable to the predeclared
// nil identifier (T is unconstrained, so the compiler can't do that for
// us generically).
type ItemOps[T any] struct {
	Clone func(T) T
	Free  func(T)
	IsNil func(T) bool
}

// Stats is a point-in-time snapshot of a FIFO's operational counters,
// additive to the original API for observability (see SPEC_FULL.md).
type Stats struct {
	Queued    int
	MaxQueued int
	Pushed    uint64
	Popped    uint64
	Dropped   uint64
	Pokes     uint64
	HighWater int
}
