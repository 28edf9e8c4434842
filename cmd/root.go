package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gqlcgen/gqlcgen/compiler"
	"github.com/gqlcgen/gqlcgen/gen"
	"github.com/gqlcgen/gqlcgen/pipeline"
)

// defaultConfigFile is picked up from the working directory when --config
// is not given.
const defaultConfigFile = "gqlcgen.yml"

type rootCmd struct {
	*cobra.Command

	cli *CommandLine

	cfg          pipeline.Config
	compilerName string
	configFile   string
	verbose      bool
}

func (c *CommandLine) newRootCmd() *baseCmd {
	rc := &rootCmd{cli: c}
	rc.cfg.Options = gen.DefaultOptions()

	rc.Command = &cobra.Command{
		Use:   "gqlcgen",
		Short: "A typed GraphQL client generator",
		Long: `gqlcgen generates typed GraphQL client sources from a schema and a
directory of operation documents, and registers the output directory as a
compile source root of the host build.

The schema is either a local introspection file (--schema) or fetched from
a remote endpoint (--endpoint with --regenerate). Generation itself is
performed by a compiler plugin looked up on PATH; see --compiler.`,
		Example:       "gqlcgen --schema schema.json --source src/graphql --out build/generated --package api.client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       chainPreRunEs(rc.setupLogging, rc.loadConfigFile),
		RunE:          rc.run,
	}

	flags := rc.Flags()
	flags.StringVar(&rc.cfg.SchemaFile, "schema", "schema.json", "Path of the local introspection schema file.")
	flags.StringVar(&rc.cfg.Endpoint, "endpoint", "", "Remote introspection endpoint. http(s) or ws(s).")
	flags.VarP(&headerFlag{value: &rc.cfg.Headers}, "header", "H", `Headers to merge into the introspection request.
May be specified multiple times; repeats append.`)
	flags.BoolVar(&rc.cfg.Insecure, "insecure", false, `Accept self-signed server certificates for the
introspection call only.`)
	flags.StringVarP(&rc.cfg.SourceDir, "source", "s", ".", "Directory searched recursively for operation documents.")
	flags.StringVar(&rc.cfg.Extension, "extension", ".graphql", "Operation document file extension.")
	flags.StringVarP(&rc.cfg.OutputDir, "out", "o", "generated", "Directory receiving generated sources.")
	flags.BoolVar(&rc.cfg.Regenerate, "regenerate", false, "Refresh the local schema file from --endpoint before generating.")
	flags.BoolVar(&rc.cfg.Skip, "skip", false, "Skip generation entirely. Not an error.")
	flags.BoolVar(&rc.cfg.AddSourceRoot, "add-source-root", true, "Register the output directory as a compile source root.")

	opts := &rc.cfg.Options
	flags.StringVarP(&opts.Package, "package", "p", opts.Package, "Root package name for generated sources.")
	flags.Var(&mapFlag{value: &opts.ScalarTypes}, "scalar", "Custom scalar mapping, e.g. DateTime=time.Time.")
	flags.StringVar((*string)(&opts.Nullable), "nullable", string(opts.Nullable), "Nullable field representation: pointer, optional or annotated.")
	flags.StringVar(&opts.OperationIDStrategy, "operation-ids", "", `Operation id strategy. Defaults to a content hash
of the operation document.`)
	flags.BoolVar(&opts.SemanticNaming, "semantic-naming", opts.SemanticNaming, "Suffix operation types with their kind, e.g. GetUserQuery.")
	flags.BoolVar(&opts.BeanAccessors, "bean-accessors", false, "Emit get-prefixed accessors.")
	flags.BoolVar(&opts.Builders, "builders", false, "Emit builders for input types.")
	flags.BoolVar(&opts.SuppressRawTypeWarnings, "suppress-raw-type-warnings", false, "Silence raw-type warnings in generated sources.")
	flags.BoolVar(&opts.AltModels, "alt-models", false, "Emit models for the alternate target language.")
	flags.BoolVar(&opts.Internal, "internal", false, "Emit generated types with internal visibility.")
	flags.BoolVar(&opts.Visitors, "visitors", false, "Emit visitors for polymorphic types.")
	flags.StringSliceVar(&opts.EnumFilters, "enum-filter", nil, `Patterns selecting enums for the rich representation.
May be specified multiple times.`)

	flags.StringVar(&rc.compilerName, "compiler", "client", "Name of the compiler plugin backend.")
	flags.StringVar(&rc.configFile, "config", "", "YAML config file. gqlcgen.yml is read when present.")
	flags.BoolVarP(&rc.verbose, "verbose", "v", false, "Output logging")

	return &baseCmd{Command: rc.Command}
}

func chainPreRunEs(preRunEs ...func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		for i := 0; i < len(preRunEs) && err == nil; i++ {
			err = preRunEs[i](cmd, args)
		}
		return
	}
}

func (rc *rootCmd) setupLogging(*cobra.Command, []string) error {
	if !rc.verbose {
		zap.ReplaceGlobals(zap.NewNop())
		return nil
	}

	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}

func (rc *rootCmd) run(cmd *cobra.Command, _ []string) error {
	comp := rc.cli.comp
	if comp == nil {
		comp = &compiler.Plugin{
			Name:   rc.compilerName,
			Prefix: rc.cli.prefix,
			FS:     rc.cli.fs,
		}
	}

	p := pipeline.New(rc.cli.fs, comp, rc.cli.registry)
	return p.Run(cmd.Context(), rc.cfg)
}
