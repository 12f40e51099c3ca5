package reflectfile

import (
	"context"

	"github.com/marijnvanwezel/reflection-file/reflection"
	"github.com/viant/afs"
)

// Option configures Open
type Option func(*options)

type options struct {
	ctx      context.Context
	fs       afs.Service
	strategy reflection.Strategy
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.ctx == nil {
		ret.ctx = context.Background()
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.strategy == nil {
		ret.strategy = reflection.Lexical{}
	}
	return ret
}

// WithContext sets the context used to read the file
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithFS sets the file system service, any afs supported location can then be opened
func WithFS(fs afs.Service) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithStrategy sets the strategy used to name declarations
func WithStrategy(strategy reflection.Strategy) Option {
	return func(o *options) {
		o.strategy = strategy
	}
}
