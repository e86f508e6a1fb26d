package txfifo

import "github.com/visiona/txfifo/internal/fifo"

// Public API - re-export internal/fifo's types as a stable contract.

// BlockFlags controls blocking behavior on push and pull. See BlockNoInput,
// BlockMaxOutput, PullNoBlock, and PullPoke.
type BlockFlags = fifo.BlockFlags

const (
	BlockNoInput   = fifo.BlockNoInput
	BlockMaxOutput = fifo.BlockMaxOutput
	PullNoBlock    = fifo.PullNoBlock
	PullPoke       = fifo.PullPoke
)

// Unbounded is the max_queued value meaning "no capacity limit".
const Unbounded = fifo.Unbounded

// Infinity is the sentinel GetMaxSize reports for an unbounded FIFO.
const Infinity = fifo.Infinity

// ParseBlockFlags parses a comma-separated list of block-flag tokens
// ("block_no_input", "block_max_output", "pull_no_block").
func ParseBlockFlags(s string) (BlockFlags, error) {
	return fifo.ParseBlockFlags(s)
}

// Stats is a point-in-time snapshot of a FIFO's operational counters.
type Stats = fifo.Stats

// Public API errors - re-export internal/fifo's sentinels as a stable contract.
var (
	ErrInvalidArgument = fifo.ErrInvalidArgument
	ErrQueueFull       = fifo.ErrQueueFull
	ErrTryAgain        = fifo.ErrTryAgain
	ErrOutOfMemory     = fifo.ErrOutOfMemory
)

// SetVerbose toggles diagnostic logging on mirror/unmirror/unmirror_all/poke.
func SetVerbose(v bool) {
	fifo.Verbose = v
}
