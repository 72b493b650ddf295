package contract

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/framecheck/framecheck/frame"
	"github.com/framecheck/framecheck/schema"
)

// Sentinel errors for contract violations, usable with errors.Is.
var (
	// ErrArgumentType indicates an argument whose runtime shape does not
	// match its declaration.
	ErrArgumentType = errors.New("argument type mismatch")

	// ErrMissingOutput indicates a declared output absent from the result.
	ErrMissingOutput = errors.New("missing output")

	// ErrOutputType indicates a declared output that is not a frame.
	ErrOutputType = errors.New("output must be a frame")
)

// Func is the function shape a contract wraps: named arguments in, named
// outputs out.
type Func func(args map[string]any) (map[string]any, error)

// Contract holds the declared argument and output expectations.
type Contract struct {
	argOrder []string
	args     map[string]any // *schema.Schema or reflect.Type
	outOrder []string
	outputs  map[string]*schema.Schema
	logger   *slog.Logger
}

// Option configures a Contract.
type Option func(*Contract)

// WithArg declares an expectation for one argument. spec is either a
// *schema.Schema, requiring a *frame.Frame argument validating against it,
// or a reflect.Type, requiring exactly that runtime type. Arguments without
// a declaration pass through unchecked.
func WithArg(name string, spec any) Option {
	return func(c *Contract) {
		if _, ok := c.args[name]; !ok {
			c.argOrder = append(c.argOrder, name)
		}
		c.args[name] = spec
	}
}

// WithOutput declares that the result must contain a frame under the given
// name validating against s.
func WithOutput(name string, s *schema.Schema) Option {
	return func(c *Contract) {
		if _, ok := c.outputs[name]; !ok {
			c.outOrder = append(c.outOrder, name)
		}
		c.outputs[name] = s
	}
}

// WithLogger attaches a logger; contract violations are then logged at warn
// level before being returned.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Contract) {
		c.logger = logger
	}
}

// New builds a contract from the given declarations.
func New(opts ...Option) *Contract {
	c := &Contract{
		args:    make(map[string]any),
		outputs: make(map[string]*schema.Schema),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Wrap returns fn guarded by the contract: declared arguments are checked
// before the call, declared outputs after it. The first violation aborts
// with an error; fn's own error passes through untouched.
func (c *Contract) Wrap(fn Func) Func {
	return func(args map[string]any) (map[string]any, error) {
		if err := c.checkArgs(args); err != nil {
			c.warn("argument contract violated", err)
			return nil, err
		}

		out, err := fn(args)
		if err != nil {
			return nil, err
		}

		if err := c.checkOutputs(out); err != nil {
			c.warn("output contract violated", err)
			return nil, err
		}
		return out, nil
	}
}

func (c *Contract) checkArgs(args map[string]any) error {
	for _, name := range c.argOrder {
		value, ok := args[name]
		if !ok {
			continue
		}
		switch spec := c.args[name].(type) {
		case *schema.Schema:
			df, ok := value.(*frame.Frame)
			if !ok {
				return fmt.Errorf("argument %q: %w: want *frame.Frame, got %T", name, ErrArgumentType, value)
			}
			if err := spec.Validate(df); err != nil {
				return fmt.Errorf("argument %q: %w", name, err)
			}
		case reflect.Type:
			if value == nil || reflect.TypeOf(value) != spec {
				return fmt.Errorf("argument %q: %w: want %s, got %T", name, ErrArgumentType, spec, value)
			}
		default:
			return fmt.Errorf("argument %q: unsupported contract declaration %T", name, c.args[name])
		}
	}
	return nil
}

func (c *Contract) checkOutputs(out map[string]any) error {
	for _, name := range c.outOrder {
		value, ok := out[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingOutput, name)
		}
		df, ok := value.(*frame.Frame)
		if !ok {
			return fmt.Errorf("output %q: %w, got %T", name, ErrOutputType, value)
		}
		if err := c.outputs[name].Validate(df); err != nil {
			return fmt.Errorf("output %q: %w", name, err)
		}
	}
	return nil
}

func (c *Contract) warn(msg string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn(msg, "error", err)
}
