package bundle

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option to configure a bundle
type Option func(*Bundle)

// Filesystem on which scene documents are read and assets copied (defaults to the OS filesystem)
func Filesystem(fs afero.Fs) Option {
	return func(b *Bundle) {
		if fs != nil {
			b.fs = fs
		}
	}
}

// Root directory of the bundle (defaults to "output", relative to the working directory)
func Root(root string) Option {
	return func(b *Bundle) {
		if root != "" {
			b.root = root
		}
	}
}

// Placeholder token prefixed to rewritten references (defaults to "<REPLACE|ME>")
func Placeholder(token string) Option {
	return func(b *Bundle) {
		b.placeholder = token
	}
}

// WithManifest writes a manifest of the relocated assets along with the document
func WithManifest(enabled bool) Option {
	return func(b *Bundle) {
		b.withManifest = enabled
	}
}

// Logger sets a logger for this bundle
func Logger(l *zap.Logger) Option {
	return func(b *Bundle) {
		if l != nil {
			b.l = l
		}
	}
}
