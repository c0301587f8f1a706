// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Licenseheaders makes sure every source file carries the project license header.

Usage:

	licenseheaders [flags] [ci]

It recursively walks through the current directory and looks at every file
whose extension is supported (by default .cs, .py and .proto) and whose path
is not excluded.

Without arguments, files that lack the license header get it: a previous
version of the header, recognized by its first and last lines, is replaced,
otherwise the header is inserted at the top of the file, wrapped in a block
comment. A file that mentions a copyright but has no recognizable header
stops the run, since it most likely carries a different license header that
has to be removed by hand.

With the "ci" argument, files are only checked. Every file that lacks the
header is reported and the tool exits with a non-zero status.

The tool is configured through a .licenseheaders.txtar file in the current
directory. This file is a txtar archive and can contain the following files,
all optional:

  - header_path: The path of the file containing the license header.
    Defaults to license_header.txt.
  - file_types.json: A JSON object mapping file extensions to a pair of
    block comment markers, e.g. {".py": ["\"\"\"", "\"\"\""]}.
  - exclusions.json: A JSON array of regular expressions. A file is skipped
    if one of them matches the beginning of its path, written as
    ./dir/file with '/' as separator.

Pass -install-hook to install a Git pre-commit hook that runs the check.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/headers/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
