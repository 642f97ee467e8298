package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creachadair/jparse/ast"
	"github.com/creachadair/jparse/jpath"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jparse").
		WithSynopsis("jparse [opts] command [files]").
		WithDescription("jparse parses JSON documents and extracts values from them.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jparseMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			RenderCommand(cfg),
			GetCommand(cfg),
			RoutesCommand(cfg))
}

func jparseMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("check that files parse").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render [files]").
		WithDescription("print a readable rendering of parsed files").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <jsonpath> [files]").
		WithDescription("print the values selected by a JSONPath expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func RoutesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RoutesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Routes, "routes").
		WithSynopsis("routes [files]").
		WithDescription("print the path of each entry of the top-level routes array").
		WithRun(func(cc *cli.Context, args []string) error {
			return routes(cfg, cc, args)
		})
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args, func(string, ast.Value) error {
		fmt.Fprintln(cc.Out, "JSON parsed successfully!")
		return nil
	})
}

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, args, func(_ string, v ast.Value) error {
		if err := ast.Render(cc.Out, v); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cc.Out)
		return err
	})
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a JSONPath expression", cli.ErrUsage)
	}
	expr, err := parsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid path %q: %w", cli.ErrUsage, args[0], err)
	}
	hi := cfg.highlight(cc.Out, color.FgCyan)
	return cfg.eachInput(cc, args[1:], func(_ string, v ast.Value) error {
		for _, m := range jpath.Eval(v, expr) {
			fmt.Fprintln(cc.Out, hi(m.JSON()))
		}
		return nil
	})
}

// parsePath parses s as a JSONPath expression. The root marker may be
// omitted, so "routes[0]" is read as "$.routes[0]" and ".a" as "$.a".
func parsePath(s string) (jpath.Expr, error) {
	switch {
	case strings.HasPrefix(s, "$"):
	case strings.HasPrefix(s, ".") || strings.HasPrefix(s, "["):
		s = "$" + s
	default:
		s = "$." + s
	}
	return jpath.Parse(s)
}

func routes(cfg *RoutesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Routes.Parse(cc, args)
	if err != nil {
		return err
	}
	hi := cfg.highlight(cc.Out, color.FgGreen)
	return cfg.eachInput(cc, args, func(file string, v ast.Value) error {
		paths, err := routePaths(v)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, p := range paths {
			fmt.Fprintln(cc.Out, hi(p))
		}
		return nil
	})
}
