//go:generate mockgen -destination=./mock/mock_build.go -package=mock_pluginapi . Build

package pluginapi

import (
	"context"
	"regexp"
)

// OnLoadOptions selects which paths a load callback receives.
type OnLoadOptions struct {
	Filter *regexp.Regexp
}

// OnLoadCallback transforms one matched file. An error rejects the load;
// the host does not retry and never sees a partial result.
type OnLoadCallback func(ctx context.Context, args OnLoadArgs) (OnLoadResult, error)

// Build is the registration surface the host passes to Plugin.Setup.
type Build interface {
	OnLoad(options OnLoadOptions, callback OnLoadCallback)
}
