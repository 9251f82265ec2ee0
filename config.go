package wasmencode

import "go.uber.org/zap"

// EncoderConfig controls encoder-local behavior, with the default
// implementation as NewEncoderConfig. Unlike a validating runtime's config,
// this encoder emits every instruction family unconditionally: there are
// no feature-proposal gates here, only knobs for the encoder's own
// allocation and diagnostic behavior.
type EncoderConfig struct {
	sinkCapacityHint int
	logger           *zap.Logger
}

// defaultConfig holds the zero-value defaults so NewEncoderConfig and every
// With* method share one source of truth.
var defaultConfig = &EncoderConfig{
	sinkCapacityHint: 256,
	logger:           zap.NewNop(),
}

// clone ensures all fields are copied even if nil.
func (c *EncoderConfig) clone() *EncoderConfig {
	return &EncoderConfig{
		sinkCapacityHint: c.sinkCapacityHint,
		logger:           c.logger,
	}
}

// NewEncoderConfig returns the default configuration: a modest initial
// sink capacity hint and no logging.
func NewEncoderConfig() *EncoderConfig {
	return defaultConfig.clone()
}

// WithSinkCapacityHint sets the initial byte capacity pre-allocated for the
// top-level output buffer. Section working sinks keep their own fixed
// initial sizes and are not affected. Tune this up when encoding large
// modules to avoid reallocating the output buffer; it has no effect on the
// encoded bytes themselves.
func (c *EncoderConfig) WithSinkCapacityHint(n int) *EncoderConfig {
	ret := c.clone()
	if n > 0 {
		ret.sinkCapacityHint = n
	}
	return ret
}

// WithLogger sets the logger used for one debug line per emitted numbered
// section (section name, byte length); custom sections are not logged. Defaults to zap.NewNop(), so encoding stays silent
// unless a logger is configured. Passing nil restores the no-op default.
func (c *EncoderConfig) WithLogger(logger *zap.Logger) *EncoderConfig {
	ret := c.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	ret.logger = logger
	return ret
}
