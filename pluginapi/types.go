package pluginapi

// CompilerOptions holds the option bag forwarded to the script compiler.
// It is fixed once at plugin construction and never mutated afterwards.
type CompilerOptions map[string]any

// Loader tells the host how to interpret a load result.
type Loader string

const (
	// LoaderJS marks the result contents as executable JavaScript text.
	LoaderJS Loader = "js"
	// LoaderObject marks the result exports as a structured data export.
	LoaderObject Loader = "object"
)

// OnLoadArgs carries the matched file path for a single load request.
type OnLoadArgs struct {
	Path string
}

// OnLoadResult is the transform result returned to the host. Exactly one of
// Contents (with LoaderJS) or Exports (with LoaderObject) is populated.
type OnLoadResult struct {
	Contents string
	Exports  any
	Loader   Loader
}

// Plugin is the value handed to the host at registration time.
type Plugin struct {
	Name  string
	Setup func(build Build) error
}
