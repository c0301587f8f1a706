// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.astrophena.name/headers/cli"
)

const hookShellScript = `#!/bin/sh
echo "==> Checking license headers..."
go tool licenseheaders ci
`

// installHook creates .git/hooks/pre-commit unless a hook already exists.
func installHook(env *cli.Env) error {
	if _, err := os.Stat(".git"); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: -install-hook must be run in the root of a Git repository", cli.ErrInvalidArgs)
		}
		return err
	}

	hookPath := filepath.Join(".git", "hooks", "pre-commit")
	if _, err := os.Stat(hookPath); err == nil {
		env.Logf("%s already exists, leaving it untouched.", hookPath)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(hookPath, []byte(hookShellScript), 0o755); err != nil {
		return err
	}
	env.Logf("Installed %s.", hookPath)
	return nil
}
