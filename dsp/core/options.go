package core

// ProcessorConfig describes how a host drives a streaming processor: the
// sample rate of the stream, the size of the blocks it hands over per
// callback and which channel of an interleaved source is processed.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	Channel    int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults of a typical real-time host
// (44.1 kHz, 128-sample render quantum, first channel).
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		BlockSize:  128,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the host block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithChannel selects the source channel to process.
func WithChannel(channel int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if channel >= 0 {
			cfg.Channel = channel
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
