package ob

import "go.uber.org/zap"

// DefaultTagName is the struct tag key read by the registry.
const DefaultTagName = "ob"

type config struct {
	logger       *zap.Logger
	tagName      string
	normalizers  []Normalizer
	skipDefaults bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:  zap.NewNop(),
		tagName: DefaultTagName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures an Engine or a Registry.
type Option func(*config)

// WithLogger sets the logger used to report type indexing.
// A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

// WithTagName changes the struct tag key. An empty name resets to DefaultTagName.
func WithTagName(name string) Option {
	return func(c *config) {
		if name == "" {
			name = DefaultTagName
		}
		c.tagName = name
	}
}

// WithNormalizer registers a normalizer. It replaces a default one for the same type.
func WithNormalizer(n Normalizer) Option {
	return func(c *config) {
		c.normalizers = append(c.normalizers, n)
	}
}

// WithoutDefaultNormalizers drops the normalizers returned by DefaultNormalizers.
func WithoutDefaultNormalizers() Option {
	return func(c *config) {
		c.skipDefaults = true
	}
}
