// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"go.astrophena.name/headers/cli"
	"go.astrophena.name/headers/header"
	"go.astrophena.name/headers/logger"
	"go.astrophena.name/headers/version"
)

func main() { cli.Main(new(app)) }

type app struct {
	configPath  string
	installHook bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.configPath, "config", defaultConfigPath, "Read configuration from `file`.")
	fs.BoolVar(&a.installHook, "install-hook", false, "Install a Git pre-commit hook that checks license headers, then exit.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) > 1 {
		return fmt.Errorf("%w: want at most one argument, got %q", cli.ErrInvalidArgs, env.Args)
	}
	if a.installHook {
		return installHook(env)
	}

	cfg, err := parseConfig(a.configPath)
	if err != nil {
		return err
	}

	h, err := header.Load(afero.NewOsFs(), cfg.headerPath)
	if err != nil {
		return err
	}
	rules, err := header.CompileRules(cfg.exclusions)
	if err != nil {
		return err
	}
	root, err := os.Getwd()
	if err != nil {
		return err
	}

	mode := header.ParseMode(env.Args)
	out, err := header.Enforce(ctx, afero.NewBasePathFs(afero.NewOsFs(), root), &header.Config{
		Header:     h,
		FileTypes:  cfg.fileTypes,
		Exclusions: rules,
		Mode:       mode,
		Stdout:     env.Stdout,
		Color:      env.IsTerminal(env.Stdout),
	})
	if err != nil {
		return err
	}

	logger.Debug(ctx, "done",
		slog.String("mode", mode.String()),
		slog.Int("compliant", out.Count(header.Compliant)),
		slog.Int("inserted", out.Count(header.Inserted)),
		slog.Int("replaced", out.Count(header.Replaced)),
		slog.Int("missing", out.Count(header.Missing)),
	)

	if mode == header.ModeCI && !out.OK() {
		fmt.Fprintf(env.Stdout, "Invalid copyright headers found.  Please run the %s script locally to fix and commit again.\n", version.CmdName())
		return cli.Silent(fmt.Errorf("%w in %d files", header.ErrMissingHeaders, len(out.Missing())))
	}
	return nil
}
