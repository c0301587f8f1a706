// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp/syntax"
	"testing"

	"go.astrophena.name/headers/cli"
	"go.astrophena.name/headers/cli/clitest"
	"go.astrophena.name/headers/header"
	"go.astrophena.name/headers/testutil"
	"go.astrophena.name/headers/txtar"
)

const licenseHeader = `-- license_header.txt --
---- Copyright Start ----
Example license.
---- Copyright End ----
`

const wantPython = `"""
---- Copyright Start ----
Example license.
---- Copyright End ----
"""

print("a")
`

// inTree returns a function that extracts archive into a temporary directory
// and makes it the working directory.
func inTree(archive string) func(t *testing.T) {
	return func(t *testing.T) {
		dir := t.TempDir()
		testutil.ExtractTxtar(t, txtar.Parse([]byte(archive)), dir)
		t.Chdir(dir)
	}
}

// inTreeWithConfig is like inTree, but also writes the configuration archive
// config to the file name, since archives can't be nested.
func inTreeWithConfig(name, config, archive string) func(t *testing.T) {
	return func(t *testing.T) {
		inTree(archive)(t)
		if err := os.WriteFile(name, []byte(config), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

const configArchive = `-- header_path --
HEADER.txt
-- file_types.json --
{".go": ["/*", "*/"]}
-- exclusions.json --
[".*/vendor/.*"]
`

func readFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func sep(path string) string { return filepath.FromSlash(path) }

func TestRun(t *testing.T) {
	setup := func(t *testing.T) *app { return new(app) }

	cases := map[string]clitest.Case[*app]{
		"local inserts header": {
			Before:     inTree(licenseHeader + "-- a.py --\nprint(\"a\")\n-- bin/b.cs --\nclass B {}\n"),
			WantStdout: "[" + sep("./a.py") + "]: insert new header\n",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, readFile(t, "a.py"), wantPython)
				testutil.AssertEqual(t, readFile(t, sep("bin/b.cs")), "class B {}\n")
			},
		},
		"local with nothing to do": {
			Before:             inTree(licenseHeader + "-- a.py --\n" + wantPython),
			WantNothingPrinted: true,
		},
		"ci reports missing headers": {
			Args:    []string{"ci"},
			Before:  inTree(licenseHeader + "-- a.py --\nprint(\"a\")\n-- b.py --\n" + wantPython),
			WantErr: header.ErrMissingHeaders,
			WantInStdout: "[" + sep("./a.py") + "]: no or invalid copyright header.\n" +
				"Invalid copyright headers found.  Please run the ",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, readFile(t, "a.py"), "print(\"a\")\n")
			},
		},
		"ci is case-insensitive": {
			Args:         []string{"CI"},
			Before:       inTree(licenseHeader + "-- a.py --\nprint(\"a\")\n"),
			WantErr:      header.ErrMissingHeaders,
			WantInStdout: "no or invalid copyright header.",
		},
		"ci passes": {
			Args:               []string{"ci"},
			Before:             inTree(licenseHeader + "-- a.py --\n" + wantPython + "-- obj/x.cs --\nclass X {}\n"),
			WantNothingPrinted: true,
		},
		"ci ignores conflicting copyright": {
			Args:         []string{"ci"},
			Before:       inTree(licenseHeader + "-- a.py --\n# Copyright 2020 Someone\n"),
			WantErr:      header.ErrMissingHeaders,
			WantInStdout: "[" + sep("./a.py") + "]: no or invalid copyright header.\n",
		},
		"other mode argument means local": {
			Args:       []string{"fix"},
			Before:     inTree(licenseHeader + "-- a.py --\nprint(\"a\")\n"),
			WantStdout: "[" + sep("./a.py") + "]: insert new header\n",
		},
		"conflicting copyright stops the run": {
			Before:     inTree(licenseHeader + "-- a.py --\n# Copyright 2020 Someone\n"),
			WantErr:    header.ErrConflictingCopyright,
			WantStdout: "[" + sep("./a.py") + "]: found different copyright header - please remove\n",
		},
		"inconsistent markers stop the run": {
			Before:  inTree(licenseHeader + "-- a.py --\n# ---- Copyright End ----\n# ---- Copyright Start ----\n"),
			WantErr: header.ErrInconsistentMarkers,
		},
		"missing header file": {
			Before:  inTree("-- a.py --\nprint(\"a\")\n"),
			WantErr: fs.ErrNotExist,
		},
		"too many arguments": {
			Args:    []string{"ci", "extra"},
			WantErr: cli.ErrInvalidArgs,
		},
		"configuration archive": {
			Before: inTreeWithConfig(defaultConfigPath, configArchive, `-- HEADER.txt --
Copyright 2026 Example.
-- main.go --
package main
-- vendor/dep.go --
package dep
-- a.py --
print("a")
`),
			WantStdout: "[" + sep("./main.go") + "]: insert new header\n",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, readFile(t, "main.go"), "/*\nCopyright 2026 Example.\n*/\n\npackage main\n")
				testutil.AssertEqual(t, readFile(t, sep("vendor/dep.go")), "package dep\n")
				testutil.AssertEqual(t, readFile(t, "a.py"), "print(\"a\")\n")
			},
		},
		"configuration from flag": {
			Args: []string{"-config", "headers.txtar", "ci"},
			Before: inTreeWithConfig("headers.txtar", "-- header_path --\nHEADER.txt\n", `-- HEADER.txt --
Copyright 2026 Example.
-- a.py --
"""
Copyright 2026 Example.
"""
`),
			WantNothingPrinted: true,
		},
		"invalid configuration": {
			Before:      inTreeWithConfig(defaultConfigPath, "-- exclusions.json --\n[\"(\"]\n", licenseHeader),
			WantErrType: &syntax.Error{},
		},
	}

	clitest.Run(t, setup, cases)
}

func TestInstallHook(t *testing.T) {
	setup := func(t *testing.T) *app { return new(app) }
	hookPath := filepath.Join(".git", "hooks", "pre-commit")

	cases := map[string]clitest.Case[*app]{
		"installs hook": {
			Args:         []string{"-install-hook"},
			Before:       inTree("-- .git/HEAD --\nref: refs/heads/main\n"),
			WantInStderr: "Installed " + hookPath,
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, readFile(t, hookPath), hookShellScript)
				fi, err := os.Stat(hookPath)
				if err != nil {
					t.Fatal(err)
				}
				if fi.Mode().Perm()&0o100 == 0 {
					t.Errorf("hook is not executable: %v", fi.Mode())
				}
			},
		},
		"keeps existing hook": {
			Args:         []string{"-install-hook"},
			Before:       inTree("-- .git/hooks/pre-commit --\n#!/bin/sh\nexit 0\n"),
			WantInStderr: "already exists",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, readFile(t, hookPath), "#!/bin/sh\nexit 0\n")
			},
		},
		"outside of a repository": {
			Args:    []string{"-install-hook"},
			Before:  inTree("-- a.py --\nprint(\"a\")\n"),
			WantErr: cli.ErrInvalidArgs,
		},
	}

	clitest.Run(t, setup, cases)
}
