package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gqlcgen/gqlcgen/gen"
)

// Plugin runs an external compiler executable. The executable is looked up
// on PATH as Prefix+Name, receives a JSON request on stdin and answers
// with a JSON response on stdout.
type Plugin struct {
	*exec.Cmd

	Name   string
	Prefix string

	// FS receives the generated files. Defaults to the OS filesystem.
	FS afero.Fs

	lookOnce    sync.Once
	path        string
	lookPathErr error
	log         *zap.Logger
}

type pluginRequest struct {
	Schema    []byte      `json:"schema"`
	Documents []Document  `json:"documents"`
	Options   gen.Options `json:"options"`
	OutputDir string      `json:"output_dir"`
}

type pluginFile struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type pluginResponse struct {
	File  []pluginFile `json:"file"`
	Error string       `json:"error"`
}

// Parse bundles the inputs; a plugin parses in its own process at
// Generate time, so there is no eager work to do here.
func (p *Plugin) Parse(_ context.Context, schema []byte, docs []Document) (*IR, error) {
	return NewIR(schema, docs, nil), nil
}

// Generate executes the plugin once for the whole document set and writes
// every returned file under req.OutputDir.
func (p *Plugin) Generate(ctx context.Context, ir *IR, req *gen.Request) (err error) {
	defer func() {
		if err != nil {
			err = &Error{
				Backend: p.Prefix + p.Name,
				Msg:     err.Error(),
			}
		}
	}()

	if p.log == nil {
		p.log = zap.L().Named(p.Name)
	}
	if p.FS == nil {
		p.FS = afero.NewOsFs()
	}

	p.log.Info("marshalling request")
	b, err := json.Marshal(pluginRequest{
		Schema:    ir.Schema,
		Documents: ir.Documents,
		Options:   req.Options,
		OutputDir: req.OutputDir,
	})
	if err != nil {
		return err
	}

	if p.Cmd == nil {
		// Lookup plugin only once
		p.lookOnce.Do(func() {
			pluginName := p.Prefix + p.Name
			p.path, p.lookPathErr = exec.LookPath(pluginName)
		})
		if p.lookPathErr != nil {
			return p.lookPathErr
		}

		p.Cmd = exec.CommandContext(ctx, p.path)
	}
	out := new(bytes.Buffer)
	p.Stdin = bytes.NewReader(b)
	p.Stdout = out

	p.log.Info("executing plugin", zap.String("path", p.path))
	err = p.Run()
	p.Cmd = nil
	if err != nil {
		return err
	}

	var resp pluginResponse
	if err = json.Unmarshal(out.Bytes(), &resp); err != nil {
		return err
	}
	if resp.Error != "" {
		return errors.New(resp.Error)
	}

	for _, f := range resp.File {
		p.log.Info("writing content from plugin", zap.String("file", f.Name))

		name := filepath.Join(req.OutputDir, f.Name)
		if err = p.FS.MkdirAll(filepath.Dir(name), 0755); err != nil {
			return err
		}
		if err = afero.WriteFile(p.FS, name, []byte(f.Content), 0644); err != nil {
			return err
		}
	}
	return nil
}
