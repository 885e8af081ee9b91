/*
Copyright © 2026 Emilio Dominguez <emiliodominguez@users.noreply.github.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
// Package resolve maps an import specifier to a file on disk using Sass's
// load-path/partial/index resolution order.
package resolve

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"github.com/emiliodominguez/sass-dep/fs"
)

// Kind classifies why a specifier failed to resolve cleanly.
type Kind int

const (
	NotFound Kind = iota
	Ambiguous
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Ambiguous:
		return "ambiguous"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// ResolveError describes a specifier that didn't resolve to exactly one
// unambiguous file. Ambiguous is non-fatal: a Result is still produced
// alongside it, using the deterministic tiebreak.
type ResolveError struct {
	Kind      Kind
	Specifier string
	Importer  string
	Msg       string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: resolving %q from %q: %s", e.Kind, e.Specifier, e.Importer, e.Msg)
}

// Config controls resolution. Each With* method returns a modified copy,
// leaving the receiver untouched.
type Config struct {
	LoadPaths  []string
	Extensions []string
	Logger     logr.Logger
}

// NewConfig returns the default configuration: no load paths, extensions
// tried in the order ["scss", "sass"], and a discarding logger.
func NewConfig() Config {
	return Config{Extensions: []string{"scss", "sass"}, Logger: logr.Discard()}
}

// WithLogger returns a copy of c that logs through log instead of
// discarding.
func (c Config) WithLogger(log logr.Logger) Config {
	next := c
	next.Logger = log
	return next
}

// WithLoadPaths appends to the load path list, preserving order.
func (c Config) WithLoadPaths(paths ...string) Config {
	next := c
	next.LoadPaths = append(append([]string{}, c.LoadPaths...), paths...)
	return next
}

// WithExtensions replaces the extension precedence list.
func (c Config) WithExtensions(exts ...string) Config {
	next := c
	next.Extensions = append([]string{}, exts...)
	return next
}

// Result is a successful (possibly warned) resolution.
type Result struct {
	Path    string // canonicalized absolute path
	Warning *ResolveError
}

// Resolve maps specifier, imported from importer, to a file under cfg's
// load paths. The returned *ResolveError is non-nil only for NotFound and
// Unsupported; an Ambiguous classification is reported as Result.Warning
// alongside a usable Path chosen by the documented tiebreak.
func Resolve(fsys fs.FileSystem, importer, specifier string, cfg Config) (Result, *ResolveError) {
	if err := classifySpecifier(specifier, importer); err != nil {
		return Result{}, err
	}

	for _, base := range searchBases(importer, specifier, cfg) {
		path, warn, found := resolveAtBase(fsys, base, specifier, cfg)
		if !found {
			continue
		}
		canon, err := fsys.Realpath(path)
		if err != nil {
			canon = filepath.Clean(path)
		}
		if warn != nil {
			warn.Importer = importer
			cfg.Logger.V(1).Info("ambiguous resolution", "specifier", specifier, "importer", importer, "chose", canon)
		}
		return Result{Path: canon, Warning: warn}, nil
	}

	return Result{}, &ResolveError{
		Kind:      NotFound,
		Specifier: specifier,
		Importer:  importer,
		Msg:       "no matching file found in any search base",
	}
}

// searchBases returns the ordered list of directories to try. A relative
// specifier ("./x" or "../x") only ever searches relative to the importer;
// anything else tries the importer's directory first, then each load path.
func searchBases(importer, specifier string, cfg Config) []string {
	importerDir := filepath.Dir(importer)
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		return []string{importerDir}
	}
	return append([]string{importerDir}, cfg.LoadPaths...)
}

func classifySpecifier(specifier, importer string) *ResolveError {
	switch {
	case strings.HasPrefix(specifier, "http://") || strings.HasPrefix(specifier, "https://"):
		return &ResolveError{Kind: Unsupported, Specifier: specifier, Importer: importer, Msg: "URL imports are not resolved"}
	case strings.HasPrefix(specifier, "pkg:"):
		return &ResolveError{Kind: Unsupported, Specifier: specifier, Importer: importer, Msg: "pkg: imports are not resolved"}
	case strings.HasSuffix(specifier, ".css"):
		return &ResolveError{Kind: Unsupported, Specifier: specifier, Importer: importer, Msg: "plain .css imports are not resolved"}
	default:
		return nil
	}
}

// resolveAtBase tries every extension, in precedence order, against the
// four candidate forms for one search base.
func resolveAtBase(fsys fs.FileSystem, base, specifier string, cfg Config) (path string, warn *ResolveError, found bool) {
	joined := filepath.Join(base, specifier)
	dir := filepath.Dir(joined)
	name := filepath.Base(joined)

	for _, ext := range cfg.Extensions {
		fileCand := filepath.Join(dir, name+"."+ext)
		partialFileCand := filepath.Join(dir, "_"+name+"."+ext)
		indexCand := filepath.Join(dir, name, "index."+ext)
		partialIndexCand := filepath.Join(dir, name, "_index."+ext)

		fileExists := isRegularFile(fsys, fileCand)
		partialFileExists := isRegularFile(fsys, partialFileCand)

		switch {
		case fileExists && partialFileExists:
			return fileCand, ambiguous(specifier, fileCand, partialFileCand), true
		case fileExists:
			return fileCand, nil, true
		case partialFileExists:
			return partialFileCand, nil, true
		}

		indexExists := isRegularFile(fsys, indexCand)
		partialIndexExists := isRegularFile(fsys, partialIndexCand)

		switch {
		case indexExists && partialIndexExists:
			return indexCand, ambiguous(specifier, indexCand, partialIndexCand), true
		case indexExists:
			return indexCand, nil, true
		case partialIndexExists:
			return partialIndexCand, nil, true
		}
	}

	return "", nil, false
}

func ambiguous(specifier, winner, loser string) *ResolveError {
	return &ResolveError{
		Kind:      Ambiguous,
		Specifier: specifier,
		Msg:       fmt.Sprintf("both %q and %q exist; using %q", winner, loser, winner),
	}
}

func isRegularFile(fsys fs.FileSystem, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
