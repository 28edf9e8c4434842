// Package pipeline sequences a single code generation run: schema
// acquisition, document discovery, configuration, compiler invocation and
// build registration. Every run starts from Idle; there is no checkpointing
// between runs because correctness depends on regenerating from the
// current inputs every time.
package pipeline

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gqlcgen/gqlcgen/build"
	"github.com/gqlcgen/gqlcgen/compiler"
	"github.com/gqlcgen/gqlcgen/document"
	"github.com/gqlcgen/gqlcgen/gen"
	"github.com/gqlcgen/gqlcgen/schema"
)

// Config is the full configuration surface of one run.
type Config struct {
	// SchemaFile is the local introspection schema path. When Endpoint is
	// set and Regenerate is true, the fetched schema is written here first.
	SchemaFile string

	// Endpoint is the remote introspection URL, if any.
	Endpoint string

	// Headers are merged into the introspection request.
	Headers http.Header

	// Insecure relaxes certificate validation for the introspection call.
	Insecure bool

	// SourceDir is searched recursively for operation documents.
	SourceDir string

	// Extension filters discovered documents. Defaults to ".graphql".
	Extension string

	// OutputDir receives generated sources.
	OutputDir string

	// Regenerate refreshes SchemaFile from Endpoint before the run.
	Regenerate bool

	// Skip bypasses the whole run without side effects.
	Skip bool

	// AddSourceRoot registers OutputDir with the host build afterwards.
	AddSourceRoot bool

	// Options is handed to the compiler through the generation request.
	Options gen.Options
}

// Pipeline drives one generation run at a time through its states.
type Pipeline struct {
	fs       afero.Fs
	acquirer *schema.Acquirer
	compiler compiler.Compiler
	registry *build.Registry

	state State
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithAcquirer overrides the schema acquirer; tests use it to inject
// custom HTTP clients.
func WithAcquirer(a *schema.Acquirer) Option {
	return func(p *Pipeline) { p.acquirer = a }
}

// New returns a Pipeline writing through fs, generating with comp and
// registering source roots with reg.
func New(fs afero.Fs, comp compiler.Compiler, reg *build.Registry, opts ...Option) *Pipeline {
	p := &Pipeline{
		fs:       fs,
		compiler: comp,
		registry: reg,
		state:    Idle,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.acquirer == nil {
		p.acquirer = schema.NewAcquirer(fs)
	}

	return p
}

// State returns the state the last run ended in.
func (p *Pipeline) State() State { return p.state }

// Run executes the whole pipeline once. Any stage failure aborts the run
// immediately; nothing is retried and nothing is generated partially.
func (p *Pipeline) Run(ctx context.Context, cfg Config) error {
	p.state = Idle

	if cfg.Skip {
		zap.L().Info("generation skipped by configuration")
		p.state = Skipped
		return nil
	}

	if cfg.Extension == "" {
		cfg.Extension = ".graphql"
	}

	// Schema first, documents second. The state machine order is part of
	// the contract and is what the tests pin down.
	if err := p.acquireSchema(ctx, cfg); err != nil {
		return p.fail(err)
	}
	if err := p.transition(SchemaReady); err != nil {
		return p.fail(err)
	}

	docs, err := document.Discover(p.fs, cfg.SourceDir, cfg.Extension)
	if err != nil {
		return p.fail(err)
	}
	if err = p.transition(DocumentsReady); err != nil {
		return p.fail(err)
	}

	req, err := gen.NewRequest(docs, cfg.SchemaFile, cfg.OutputDir, cfg.Options)
	if err != nil {
		return p.fail(err)
	}
	if err = p.transition(Configured); err != nil {
		return p.fail(err)
	}

	if err = p.generate(ctx, req); err != nil {
		return p.fail(err)
	}
	if err = p.transition(Generated); err != nil {
		return p.fail(err)
	}

	// Registration is in-memory bookkeeping with no failure path.
	if cfg.AddSourceRoot {
		p.registry.Register(req.OutputDir)
	}
	if err = p.transition(Integrated); err != nil {
		return p.fail(err)
	}

	return nil
}

func (p *Pipeline) acquireSchema(ctx context.Context, cfg Config) error {
	if cfg.Regenerate && cfg.Endpoint != "" {
		src := schema.Remote(cfg.Endpoint, cfg.Headers, cfg.Insecure)
		if err := p.acquirer.Acquire(ctx, src, cfg.SchemaFile); err != nil {
			return err
		}
	}

	// The local file is verified even right after a refresh; a run never
	// proceeds on a schema it cannot read back.
	return p.acquirer.Acquire(ctx, schema.Local(cfg.SchemaFile), "")
}

// generate invokes the compiler exactly once, synchronously, for the whole
// document set. The compiler is all-or-nothing: its failures surface with
// its own diagnostics and abort the run.
func (p *Pipeline) generate(ctx context.Context, req *gen.Request) error {
	schemaBytes, err := afero.ReadFile(p.fs, req.SchemaFile)
	if err != nil {
		return fmt.Errorf("pipeline: reading schema %s: %w", req.SchemaFile, err)
	}

	docs := make([]compiler.Document, req.Documents.Len())
	for i := range docs {
		content, err := req.Documents.Read(p.fs, i)
		if err != nil {
			return fmt.Errorf("pipeline: reading document %s: %w", req.Documents.Files[i], err)
		}

		name := req.Documents.Rel(i)
		docs[i] = compiler.Document{
			Name:    name,
			Content: content,
			ID:      req.OperationID.OperationID(name, content),
		}
	}

	ir, err := p.compiler.Parse(ctx, schemaBytes, docs)
	if err != nil {
		return err
	}

	return p.compiler.Generate(ctx, ir, req)
}

func (p *Pipeline) fail(err error) error {
	p.state = Failed
	zap.L().Error("generation run failed", zap.Error(err))
	return err
}
