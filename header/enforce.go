// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"

	"go.astrophena.name/headers/logger"
)

// Config configures a run of [Enforce].
type Config struct {
	// Header is the canonical header. Required.
	Header *Header
	// FileTypes lists the file types to process. Files of other types are
	// skipped.
	FileTypes Registry
	// Exclusions lists paths to skip. Paths are matched in the form
	// "./dir/file" with the platform path separator.
	Exclusions *Rules
	// Mode selects between checking and fixing.
	Mode Mode
	// Stdout receives one line per file that is rewritten or lacks the
	// header. If nil, output is discarded.
	Stdout io.Writer
	// Color enables colored output on Stdout.
	Color bool
}

// Result is the outcome for a single file.
type Result struct {
	// Path is the file path as matched against exclusions, e.g. "./src/a.py".
	Path   string
	Action Action
}

// Outcome collects the results of a run in walk order.
type Outcome struct {
	Results []Result
}

// Missing returns the paths of files without the header.
func (o *Outcome) Missing() []string {
	var paths []string
	for _, r := range o.Results {
		if r.Action == Missing {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// OK reports whether no file lacks the header.
func (o *Outcome) OK() bool { return len(o.Missing()) == 0 }

// Count returns the number of files with the given action.
func (o *Outcome) Count(a Action) int {
	var n int
	for _, r := range o.Results {
		if r.Action == a {
			n++
		}
	}
	return n
}

// FileError is returned when processing a file stops the run.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *FileError) Unwrap() error { return e.Err }

// Enforce walks the root of fsys and checks or fixes the header in every
// eligible file, one file at a time.
//
// Directories that cannot be listed are skipped with a warning.
//
// In ModeCI files are never written. Files lacking the header are reported
// as Missing and the walk goes on.
//
// In ModeLocal every eligible file without the header is rewritten in place.
// A file with inconsistent header markers or a conflicting copyright stops
// the run with a *FileError wrapping ErrInconsistentMarkers or
// ErrConflictingCopyright. Files rewritten before that stay rewritten. I/O
// errors stop the run as well.
//
// The returned Outcome is never nil and holds the results up to the point
// where the run stopped.
func Enforce(ctx context.Context, fsys afero.Fs, cfg *Config) (*Outcome, error) {
	out := new(Outcome)
	if cfg.Header == nil {
		return out, errors.New("header: no license header configured")
	}
	if cfg.Mode == ModeCI {
		fsys = afero.NewReadOnlyFs(fsys)
	}

	e := &enforcer{
		fsys: fsys,
		cfg:  cfg,
		p:    newPrinter(cfg.Stdout, cfg.Color),
		out:  out,
	}
	logger.Debug(ctx, "walking tree", slog.String("mode", cfg.Mode.String()))
	err := afero.Walk(fsys, ".", func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			// Unreadable directories are skipped, as is everything below them.
			if info != nil && info.IsDir() {
				logger.Warn(ctx, "skipping unreadable directory", slog.String("path", path), slog.Any("err", err))
				return filepath.SkipDir
			}
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		return e.visit(ctx, path, info)
	})
	if errors.Is(err, filepath.SkipDir) {
		// The root itself could not be listed.
		err = nil
	}
	return out, err
}

type enforcer struct {
	fsys afero.Fs
	cfg  *Config
	p    *printer
	out  *Outcome
}

func (e *enforcer) visit(ctx context.Context, path string, info fs.FileInfo) error {
	display := "." + string(filepath.Separator) + path

	if rule, ok := e.cfg.Exclusions.Match(display); ok {
		logger.Debug(ctx, "excluded", slog.String("path", display), slog.String("rule", rule))
		return nil
	}
	m, ok := e.cfg.FileTypes.Lookup(info.Name())
	if !ok {
		return nil
	}

	// Symbolic links to regular files are processed like the files they
	// point to.
	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := e.fsys.Stat(path)
		if err != nil {
			return err
		}
		info = target
	}
	if !info.Mode().IsRegular() {
		logger.Debug(ctx, "not a regular file", slog.String("path", display))
		return nil
	}

	a, err := e.file(path, display, m, info.Mode().Perm())
	if err != nil {
		return err
	}
	logger.Debug(ctx, "processed", slog.String("path", display), slog.String("action", a.String()))
	e.out.Results = append(e.out.Results, Result{Path: display, Action: a})
	return nil
}

func (e *enforcer) file(path, display string, m Markers, perm fs.FileMode) (Action, error) {
	b, err := afero.ReadFile(e.fsys, path)
	if err != nil {
		return 0, err
	}

	content, a, err := Rewrite(string(b), e.cfg.Header, m)
	if a == Compliant && err == nil {
		return Compliant, nil
	}
	if e.cfg.Mode == ModeCI {
		e.p.missing(display)
		return Missing, nil
	}

	switch {
	case errors.Is(err, ErrConflictingCopyright):
		e.p.conflict(display)
		return 0, &FileError{Path: display, Err: err}
	case err != nil:
		return 0, &FileError{Path: display, Err: err}
	case a == Replaced:
		e.p.replaced(display)
	case a == Inserted:
		e.p.inserted(display)
	}

	if err := afero.WriteFile(e.fsys, path, []byte(content), perm); err != nil {
		return 0, fmt.Errorf("writing %s: %w", display, err)
	}
	return a, nil
}
