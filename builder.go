package idtree

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
)

// Builder configures and creates a Tree.
// Capacities only pre-size storage; they never limit the tree.
type Builder[T any] struct {
	nodeCapacity     int
	freeListCapacity int
	root             *T
	logger           zerolog.Logger
}

// NewBuilder creates a Builder for an empty tree with no reserved capacity.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{
		logger: zerolog.Nop(),
	}
}

// WithRoot makes the built tree start with a root holding data.
func (b *Builder[T]) WithRoot(data T) *Builder[T] {
	b.root = &data
	return b
}

// WithNodeCapacity reserves room for n nodes.
func (b *Builder[T]) WithNodeCapacity(n int) *Builder[T] {
	b.nodeCapacity = max(n, 0)
	return b
}

// WithFreeListCapacity reserves room for n reclaimed slots.
func (b *Builder[T]) WithFreeListCapacity(n int) *Builder[T] {
	b.freeListCapacity = max(n, 0)
	return b
}

// WithLogger sets the logger that receives rejected operations (debug) and
// mutations (trace).
func (b *Builder[T]) WithLogger(logger zerolog.Logger) *Builder[T] {
	b.logger = logger
	return b
}

// Build creates the tree.
func (b *Builder[T]) Build() *Tree[T] {
	t := &Tree[T]{
		arena:  newArena[T](b.nodeCapacity, b.freeListCapacity),
		logger: b.logger,
	}
	if b.root != nil {
		t.setRoot(*b.root)
	}
	return t
}

// Options is the decodable form of a Builder's settings, typically read from
// a configuration document.
type Options[T any] struct {
	InitialNodeCapacity     int `mapstructure:"initial_node_capacity"`
	InitialFreeListCapacity int `mapstructure:"initial_free_list_capacity"`
	Root                    *T  `mapstructure:"root"`
}

// DecodeOptions decodes raw into Options. Unknown keys are an error so that
// misspelled settings do not pass silently.
func DecodeOptions[T any](raw map[string]any) (Options[T], error) {
	var opts Options[T]

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return opts, err
	}
	if err := decoder.Decode(raw); err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	if opts.InitialNodeCapacity < 0 {
		return opts, fmt.Errorf("%w: initial_node_capacity must not be negative", ErrInvalidOptions)
	}
	if opts.InitialFreeListCapacity < 0 {
		return opts, fmt.Errorf("%w: initial_free_list_capacity must not be negative", ErrInvalidOptions)
	}
	return opts, nil
}

// Builder returns a Builder carrying these options.
func (o Options[T]) Builder() *Builder[T] {
	b := NewBuilder[T]().
		WithNodeCapacity(o.InitialNodeCapacity).
		WithFreeListCapacity(o.InitialFreeListCapacity)
	if o.Root != nil {
		b.WithRoot(*o.Root)
	}
	return b
}
