package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the gzip compression level, 1-9
	Level int
}

func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
	}
}

// NewCompressionMiddleware creates a compression middleware with the given configuration.
// JSON envelopes and GPX downloads are both gzipped when the client accepts it.
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(config.MinSize),
		gzhttp.CompressionLevel(config.Level),
	)
	return func(next http.Handler) http.Handler {
		if err != nil {
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}
