// Package cmd implements the command line interface for gqlcgen.
package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gqlcgen/gqlcgen/build"
	"github.com/gqlcgen/gqlcgen/compiler"
)

type option func(*CommandLine)

// WithFS configures the underlying afero.Fs used to read/write files.
func WithFS(fs afero.Fs) option {
	return func(c *CommandLine) {
		c.fs = fs
	}
}

// WithCompiler configures the compiler backend directly, bypassing plugin
// lookup.
func WithCompiler(comp compiler.Compiler) option {
	return func(c *CommandLine) {
		c.comp = comp
	}
}

// WithRegistry configures the source-root registry shared with the host
// build.
func WithRegistry(reg *build.Registry) option {
	return func(c *CommandLine) {
		c.registry = reg
	}
}

// CommandLine provides a convenient API for embedding gqlcgen in a host
// build.
type CommandLine struct {
	prefix   string
	fs       afero.Fs
	comp     compiler.Compiler
	registry *build.Registry

	cmds []cmder
}

type cmder interface {
	getCommand() *cobra.Command
}

type baseCmd struct {
	*cobra.Command
}

func (cmd *baseCmd) getCommand() *cobra.Command { return cmd.Command }

func (c *CommandLine) addCommand(cmds ...cmder) *CommandLine {
	c.cmds = append(c.cmds, cmds...)
	return c
}

func (c *CommandLine) build() *cobra.Command {
	cmd := c.newRootCmd()
	for _, cmdr := range c.cmds {
		cmd.AddCommand(cmdr.getCommand())
	}

	return cmd.Command
}

// NewCLI returns a CommandLine implementation.
func NewCLI(opts ...option) (c *CommandLine) {
	c = new(CommandLine)

	for _, opt := range opts {
		opt(c)
	}

	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.registry == nil {
		c.registry = build.NewRegistry()
	}

	return
}

// AllowPlugins sets the executable prefix used when looking up the
// compiler plugin named by the --compiler flag.
func (c *CommandLine) AllowPlugins(prefix string) { c.prefix = prefix }

// Registry exposes the compile source roots registered by runs of this
// CLI, for the host build to consume.
func (c *CommandLine) Registry() *build.Registry { return c.registry }

func wrapPanic(err error, stack []byte) error {
	return fmt.Errorf("gqlcgen: recovered from unexpected panic: %w\n\n%s", err, stack)
}

// Run executes the orchestrator.
func (c *CommandLine) Run(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			rerr, ok := r.(error)
			if ok {
				err = wrapPanic(rerr, stack)
				return
			}

			err = wrapPanic(fmt.Errorf("%#v", r), stack)
		}
	}()

	cmd := c.addCommand(c.newVersionCmd()).build()

	cmd.SetArgs(args[1:])
	return cmd.Execute()
}
