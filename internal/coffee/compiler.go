// Package coffee compiles a CoffeeScript subset to JavaScript: an
// indentation-aware lexer, a recursive-descent parser and a deterministic
// code generator, plus literate-source extraction.
package coffee

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"

	"github.com/idleberg/bun-plugin-coffeescript/pluginapi"
)

const litcoffeeSuffix = ".litcoffee"

// Compiler turns CoffeeScript source text into JavaScript. A Compiler is
// immutable after construction and safe for concurrent use.
type Compiler struct {
	opts Options
}

// New decodes the option bag into typed options. Unknown keys are ignored;
// keys with the wrong type fail here rather than at compile time.
func New(options pluginapi.CompilerOptions) (*Compiler, error) {
	var opts Options
	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode compiler options: %w", err)
	}
	return &Compiler{opts: opts}, nil
}

// Compile compiles one source file. The path always becomes the diagnostic
// filename, taking precedence over any filename key from the option bag.
func (c *Compiler) Compile(ctx context.Context, path string, source []byte) (string, error) {
	opts := c.opts
	opts.Filename = path

	src := string(source)
	if opts.Literate || strings.HasSuffix(path, litcoffeeSuffix) {
		src = extractCode(src)
	}

	toks, err := lex(opts.Filename, src)
	if err != nil {
		return "", err
	}
	prog, err := parse(opts.Filename, toks)
	if err != nil {
		return "", err
	}
	out := generate(prog, opts)

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("bytes", len(out)).
		Msg("compiled script")
	return out, nil
}
