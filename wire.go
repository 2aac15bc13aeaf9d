//go:build wireinject
// +build wireinject

package coffeeplugin

import (
	"github.com/google/wire"

	"github.com/idleberg/bun-plugin-coffeescript/internal/config"
	"github.com/idleberg/bun-plugin-coffeescript/internal/logger"
	"github.com/idleberg/bun-plugin-coffeescript/pluginapi"
)

// NewFromConfig builds the plugin from the file and environment
// configuration.
func NewFromConfig() (pluginapi.Plugin, error) {
	wire.Build(
		config.Load,
		provideFs,
		logger.DefaultSet,
		newConfiguredPlugin,
	)

	return pluginapi.Plugin{}, nil
}
