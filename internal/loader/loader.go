//go:generate mockgen -destination=./mock/mock_loader.go -package=mock_loader . Compiler,Parser

// Package loader reads matched files and shapes compiler/parser output into
// the transform results the host expects.
package loader

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/idleberg/bun-plugin-coffeescript/cson"
	"github.com/idleberg/bun-plugin-coffeescript/pluginapi"
)

// Compiler compiles script source text to JavaScript. The path is attached
// as the diagnostic filename of any reported error.
type Compiler interface {
	Compile(ctx context.Context, path string, source []byte) (string, error)
}

// Parser parses object-notation source text into a value tree.
type Parser interface {
	Parse(path string, source []byte) (cson.Value, error)
}

// ParserFunc adapts a plain parse function to the Parser interface.
type ParserFunc func(path string, source []byte) (cson.Value, error)

func (f ParserFunc) Parse(path string, source []byte) (cson.Value, error) {
	return f(path, source)
}

// Loader performs one read-then-transform pass per file. It holds no mutable
// state, so concurrent loads need no coordination.
type Loader struct {
	fs       afero.Fs
	compiler Compiler
	parser   Parser
}

func New(fs afero.Fs, compiler Compiler, parser Parser) *Loader {
	return &Loader{
		fs:       fs,
		compiler: compiler,
		parser:   parser,
	}
}

// LoadScript compiles a script file and wraps it in a source-text result.
// Read and compile errors propagate unmodified; there is no retry, no
// fallback content and no caching.
func (l *Loader) LoadScript(ctx context.Context, path string) (pluginapi.OnLoadResult, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading script")

	source, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return pluginapi.OnLoadResult{}, err
	}
	contents, err := l.compiler.Compile(ctx, path, source)
	if err != nil {
		return pluginapi.OnLoadResult{}, err
	}
	return pluginapi.OnLoadResult{
		Contents: contents,
		Loader:   pluginapi.LoaderJS,
	}, nil
}

// LoadObject parses an object-notation file and wraps the value tree in an
// object result. The tree passes through verbatim.
func (l *Loader) LoadObject(ctx context.Context, path string) (pluginapi.OnLoadResult, error) {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("loading object notation")

	source, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return pluginapi.OnLoadResult{}, err
	}
	exports, err := l.parser.Parse(path, source)
	if err != nil {
		return pluginapi.OnLoadResult{}, err
	}
	return pluginapi.OnLoadResult{
		Exports: exports,
		Loader:  pluginapi.LoaderObject,
	}, nil
}
