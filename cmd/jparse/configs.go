package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jparse/ast"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/tailscale/hujson"
)

type MainConfig struct {
	Comments bool `cli:"name=c aliases=comments desc='accept comments and trailing commas'"`
	Strict   bool `cli:"name=strict desc='reject trailing input and literals run into names'"`
	Depth    int  `cli:"name=depth desc='maximum nesting depth, 0 for the default, negative for none'"`
	Color    bool `cli:"name=color desc='color output even when not writing to a terminal'"`

	Main *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type RenderConfig struct {
	*MainConfig

	Render *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type RoutesConfig struct {
	*MainConfig

	Routes *cli.Command
}

func (cfg *MainConfig) parser() ast.Parser {
	return ast.Parser{
		MaxDepth:       cfg.Depth,
		StrictLiterals: cfg.Strict,
		RequireEOF:     cfg.Strict,
	}
}

// parseInput reads all of r and parses it as a single value.
func (cfg *MainConfig) parseInput(r io.Reader) (ast.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	if cfg.Comments {
		// Standardize blanks out comments and trailing commas in place, so
		// offsets in parse errors still refer to the original text.
		data, err = hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("error standardizing: %w", err)
		}
	}
	return cfg.parser().ParseBytes(data)
}

// eachInput parses each named file, or standard input if there are none or
// the name is "-", and calls f with the name and the resulting value.
func (cfg *MainConfig) eachInput(cc *cli.Context, files []string, f func(string, ast.Value) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		v, err := cfg.parseFile(cc.In, file)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", file, err)
		}
		if err := f(file, v); err != nil {
			return err
		}
	}
	return nil
}

// parseFile parses the named file, or stdin if the name is "-".
func (cfg *MainConfig) parseFile(stdin io.Reader, file string) (ast.Value, error) {
	if file == "-" {
		return cfg.parseInput(stdin)
	}
	fp, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return cfg.parseInput(fp)
}

// highlight returns a function that colors text written to w, if color is
// requested or w is a terminal, and otherwise returns the text unchanged.
func (cfg *MainConfig) highlight(w io.Writer, attr color.Attribute) func(a ...any) string {
	c := color.New(attr)
	if cfg.Color {
		c.EnableColor()
		return c.SprintFunc()
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}
