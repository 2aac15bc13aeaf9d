package loader

import "github.com/idleberg/bun-plugin-coffeescript/pluginapi"

// inlineMapKey would make the compiler embed an inline source map in the
// emitted text; the host pipeline does its own source-map handling, so the
// key is unconditionally dropped.
const inlineMapKey = "inlineMap"

// SanitizeOptions returns a copy of the option bag with the inline-map key
// removed. The input is never mutated and no other key is touched.
func SanitizeOptions(options pluginapi.CompilerOptions) pluginapi.CompilerOptions {
	sanitized := make(pluginapi.CompilerOptions, len(options))
	for key, value := range options {
		if key == inlineMapKey {
			continue
		}
		sanitized[key] = value
	}
	return sanitized
}
