package txfifo

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FifoConfig declares the construction parameters for one FIFO, loadable
// from a YAML document — the declarative equivalent of a pipeline
// driver's per-node command-line flags.
type FifoConfig struct {
	Name       string `yaml:"name"`
	MaxQueued  int    `yaml:"max_queued"`
	BlockFlags string `yaml:"block_flags"`
}

// PipelineConfig is a flat list of FIFO declarations, meant to describe
// the queues wired between the nodes of one pipeline.
type PipelineConfig struct {
	Fifos []FifoConfig `yaml:"fifos"`
}

// ParsePipelineConfig decodes a YAML document into a PipelineConfig.
func ParsePipelineConfig(data []byte) (*PipelineConfig, error) {
	var cfg PipelineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("txfifo: parsing pipeline config: %w", err)
	}
	return &cfg, nil
}

// resolveBlockFlags parses the config's block_flags string, defaulting to no
// flags set when empty.
func (c FifoConfig) resolveBlockFlags() (BlockFlags, error) {
	if c.BlockFlags == "" {
		return 0, nil
	}
	flags, err := ParseBlockFlags(c.BlockFlags)
	if err != nil {
		return 0, fmt.Errorf("txfifo: fifo %q: %w", c.Name, err)
	}
	return flags, nil
}

// NewFrameFifo builds a FrameFifo from a FifoConfig entry.
func (c FifoConfig) NewFrameFifo() (*FrameFifo, error) {
	flags, err := c.resolveBlockFlags()
	if err != nil {
		return nil, err
	}
	return NewFrameFifo(c.Name, c.MaxQueued, flags), nil
}

// NewPacketFifo builds a PacketFifo from a FifoConfig entry.
func (c FifoConfig) NewPacketFifo() (*PacketFifo, error) {
	flags, err := c.resolveBlockFlags()
	if err != nil {
		return nil, err
	}
	return NewPacketFifo(c.Name, c.MaxQueued, flags), nil
}
