// Package coffeeplugin wires CoffeeScript and CSON sources into a bundler
// build. It registers a single load hook: script files compile to JavaScript
// source text, object-notation files parse to an exported value tree.
package coffeeplugin

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/idleberg/bun-plugin-coffeescript/cson"
	"github.com/idleberg/bun-plugin-coffeescript/internal/coffee"
	"github.com/idleberg/bun-plugin-coffeescript/internal/config"
	"github.com/idleberg/bun-plugin-coffeescript/internal/loader"
	"github.com/idleberg/bun-plugin-coffeescript/pluginapi"
)

const PluginName = "coffeescript"

const csonSuffix = ".cson"

// loadFilter matches every path the plugin claims. One registration covers
// all three extensions; the callback dispatches per path.
var loadFilter = regexp.MustCompile(`\.(coffee|litcoffee|cson)$`)

// New builds the plugin against the host filesystem.
func New(options pluginapi.CompilerOptions) (pluginapi.Plugin, error) {
	return NewWithFs(afero.NewOsFs(), options)
}

// NewWithFs builds the plugin against an explicit filesystem. The option bag
// is sanitized before it reaches the compiler; load callbacks keep whatever
// logger the host put on the context.
func NewWithFs(fs afero.Fs, options pluginapi.CompilerOptions) (pluginapi.Plugin, error) {
	return build(fs, options, nil)
}

func build(fs afero.Fs, options pluginapi.CompilerOptions, log *zerolog.Logger) (pluginapi.Plugin, error) {
	compiler, err := coffee.New(loader.SanitizeOptions(options))
	if err != nil {
		return pluginapi.Plugin{}, fmt.Errorf("failed to configure compiler: %w", err)
	}

	files := loader.New(fs, compiler, loader.ParserFunc(cson.Parse))

	return pluginapi.Plugin{
		Name: PluginName,
		Setup: func(b pluginapi.Build) error {
			b.OnLoad(pluginapi.OnLoadOptions{Filter: loadFilter}, func(ctx context.Context, args pluginapi.OnLoadArgs) (pluginapi.OnLoadResult, error) {
				if log != nil {
					ctx = log.WithContext(ctx)
				}

				if strings.HasSuffix(args.Path, csonSuffix) {
					return files.LoadObject(ctx, args.Path)
				}
				return files.LoadScript(ctx, args.Path)
			})
			return nil
		},
	}, nil
}

func provideFs() afero.Fs {
	return afero.NewOsFs()
}

func newConfiguredPlugin(fs afero.Fs, cfg *config.Config, log *zerolog.Logger) (pluginapi.Plugin, error) {
	return build(fs, cfg.CompilerOptions(), log)
}
