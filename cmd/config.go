package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the flag surface in gqlcgen.yml. File values fill in
// only flags the caller did not set explicitly; flags always win.
type fileConfig struct {
	Schema        string            `yaml:"schema"`
	Endpoint      string            `yaml:"endpoint"`
	Headers       map[string]string `yaml:"headers"`
	Insecure      *bool             `yaml:"insecure"`
	Source        string            `yaml:"source"`
	Extension     string            `yaml:"extension"`
	Out           string            `yaml:"out"`
	Regenerate    *bool             `yaml:"regenerate"`
	Skip          *bool             `yaml:"skip"`
	AddSourceRoot *bool             `yaml:"add_source_root"`
	Compiler      string            `yaml:"compiler"`

	Package             string            `yaml:"package"`
	ScalarTypes         map[string]string `yaml:"scalar_types"`
	Nullable            string            `yaml:"nullable"`
	OperationIDStrategy string            `yaml:"operation_id_strategy"`
	SemanticNaming      *bool             `yaml:"semantic_naming"`
	BeanAccessors       *bool             `yaml:"bean_accessors"`
	Builders            *bool             `yaml:"builders"`
	SuppressRawWarnings *bool             `yaml:"suppress_raw_type_warnings"`
	AltModels           *bool             `yaml:"alt_models"`
	Internal            *bool             `yaml:"internal"`
	Visitors            *bool             `yaml:"visitors"`
	EnumFilters         []string          `yaml:"enum_filters"`
}

func (rc *rootCmd) loadConfigFile(cmd *cobra.Command, _ []string) error {
	path := rc.configFile
	if path == "" {
		exists, _ := afero.Exists(rc.cli.fs, defaultConfigFile)
		if !exists {
			return nil
		}
		path = defaultConfigFile
	}

	b, err := afero.ReadFile(rc.cli.fs, path)
	if err != nil {
		return fmt.Errorf("gqlcgen: reading config file: %w", err)
	}

	var fc fileConfig
	if err = yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("gqlcgen: parsing config file %s: %w", path, err)
	}

	zap.L().Info("applying config file", zap.String("file", path))
	fc.apply(cmd.Flags(), rc)
	return nil
}

func (fc *fileConfig) apply(flags *pflag.FlagSet, rc *rootCmd) {
	setString(flags, "schema", &rc.cfg.SchemaFile, fc.Schema)
	setString(flags, "endpoint", &rc.cfg.Endpoint, fc.Endpoint)
	setString(flags, "source", &rc.cfg.SourceDir, fc.Source)
	setString(flags, "extension", &rc.cfg.Extension, fc.Extension)
	setString(flags, "out", &rc.cfg.OutputDir, fc.Out)
	setString(flags, "compiler", &rc.compilerName, fc.Compiler)
	setBool(flags, "insecure", &rc.cfg.Insecure, fc.Insecure)
	setBool(flags, "regenerate", &rc.cfg.Regenerate, fc.Regenerate)
	setBool(flags, "skip", &rc.cfg.Skip, fc.Skip)
	setBool(flags, "add-source-root", &rc.cfg.AddSourceRoot, fc.AddSourceRoot)

	if len(fc.Headers) > 0 && !flags.Changed("header") {
		h := make(http.Header, len(fc.Headers))
		for k, v := range fc.Headers {
			h.Set(k, v)
		}
		rc.cfg.Headers = h
	}

	opts := &rc.cfg.Options
	setString(flags, "package", &opts.Package, fc.Package)
	setString(flags, "nullable", (*string)(&opts.Nullable), fc.Nullable)
	setString(flags, "operation-ids", &opts.OperationIDStrategy, fc.OperationIDStrategy)
	setBool(flags, "semantic-naming", &opts.SemanticNaming, fc.SemanticNaming)
	setBool(flags, "bean-accessors", &opts.BeanAccessors, fc.BeanAccessors)
	setBool(flags, "builders", &opts.Builders, fc.Builders)
	setBool(flags, "suppress-raw-type-warnings", &opts.SuppressRawTypeWarnings, fc.SuppressRawWarnings)
	setBool(flags, "alt-models", &opts.AltModels, fc.AltModels)
	setBool(flags, "internal", &opts.Internal, fc.Internal)
	setBool(flags, "visitors", &opts.Visitors, fc.Visitors)

	if len(fc.ScalarTypes) > 0 && !flags.Changed("scalar") {
		opts.ScalarTypes = fc.ScalarTypes
	}
	if len(fc.EnumFilters) > 0 && !flags.Changed("enum-filter") {
		opts.EnumFilters = fc.EnumFilters
	}
}

func setString(flags *pflag.FlagSet, name string, dst *string, v string) {
	if v != "" && !flags.Changed(name) {
		*dst = v
	}
}

func setBool(flags *pflag.FlagSet, name string, dst, v *bool) {
	if v != nil && !flags.Changed(name) {
		*dst = *v
	}
}
