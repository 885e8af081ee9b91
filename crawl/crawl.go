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
// Package crawl builds a graph.Graph by walking the transitive closure of
// directives reachable from a set of entry points, resolving each one with
// the resolve package and parsing each file once with scan.
package crawl

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-logr/logr"

	"github.com/emiliodominguez/sass-dep/fs"
	"github.com/emiliodominguez/sass-dep/graph"
	"github.com/emiliodominguez/sass-dep/resolve"
	"github.com/emiliodominguez/sass-dep/scan"
)

// IoError wraps a file read failure encountered mid-crawl. The offending
// node is retained in the graph with zero directives; only the crawl's
// caller decides whether this should be fatal for the whole run.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// orphanPatterns are the file globs eligible for orphan discovery. Hardcoded
// to the two Sass source extensions regardless of the resolver's configured
// extension precedence, per the orphan walk's own file-type definition.
var orphanPatterns = []string{"**/*.scss", "**/*.sass"}

// Options configures a Crawler.
type Options struct {
	RootDir        string
	Resolver       resolve.Config
	IncludeOrphans bool
	Logger         logr.Logger
}

// Crawler performs one recursive depth-first crawl. It owns the visited-set
// and diagnostics accumulated along the way; a Crawler is single-use.
type Crawler struct {
	fsys        fs.FileSystem
	opts        Options
	log         logr.Logger
	graph       *graph.Graph
	visited     map[string]bool
	diagnostics []error
}

// New returns a Crawler that will build its graph against fsys.
func New(fsys fs.FileSystem, opts Options) *Crawler {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Crawler{
		fsys:    fsys,
		opts:    opts,
		log:     log,
		graph:   graph.New(),
		visited: make(map[string]bool),
	}
}

// Crawl crawls from entryPoints, in the given order, and returns the built
// graph plus every non-fatal diagnostic collected (IoErrors, ParseErrors,
// ResolveErrors, StatementErrors). The crawl itself never aborts early
// except when an entry point itself can't be read or tokenized: those are
// fatal and returned directly rather than folded into diagnostics.
func (c *Crawler) Crawl(entryPoints []string) (*graph.Graph, []error, error) {
	for _, ep := range entryPoints {
		canon := c.canonicalize(ep)
		id := c.nodeId(canon)
		c.graph.EnsureNode(id, canon)
		c.graph.MarkEntryPoint(id)

		if err := c.visit(canon); err != nil {
			c.log.Error(err, "entry point failed", "path", canon)
			return c.graph, c.diagnostics, err
		}
	}

	if c.opts.IncludeOrphans {
		c.collectOrphans()
	}

	return c.graph, c.diagnostics, nil
}

func (c *Crawler) canonicalize(path string) string {
	canon, err := c.fsys.Realpath(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return canon
}

// nodeId derives a NodeId from an absolute path: the path relative to the
// configured root, forward-slash separated, with no leading "./".
func (c *Crawler) nodeId(absPath string) graph.NodeId {
	rel, err := filepath.Rel(c.opts.RootDir, absPath)
	if err != nil {
		rel = absPath
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimPrefix(rel, "./")
	return graph.NodeId(rel)
}

// visit parses path (if not already visited) and recurses into every
// resolved target immediately, so the graph's insertion order matches a
// sequential depth-first discovery order. The returned error is non-nil
// only when this file itself could not be read or tokenized; the caller
// decides whether that is fatal (entry points) or a diagnostic.
func (c *Crawler) visit(path string) error {
	if c.visited[path] {
		return nil
	}
	c.visited[path] = true
	return c.crawlFile(path)
}

func (c *Crawler) crawlFile(path string) error {
	id := c.nodeId(path)
	c.graph.EnsureNode(id, path)

	content, err := c.fsys.ReadFile(path)
	if err != nil {
		c.log.Error(err, "failed to read file", "path", path)
		return &IoError{Path: path, Err: err}
	}

	result, perr := scan.ParseDirectives(content)
	if perr != nil {
		c.log.Error(perr, "failed to parse file", "path", path)
		return fmt.Errorf("%s: %w", path, perr)
	}
	for _, diag := range result.Diagnostics {
		c.log.V(1).Info("recoverable parse diagnostic", "path", path, "error", diag.Error())
		c.diagnostics = append(c.diagnostics, fmt.Errorf("%s: %w", path, diag))
	}

	for _, d := range result.Directives {
		res, rerr := resolve.Resolve(c.fsys, path, d.Specifier, c.opts.Resolver)
		if rerr != nil {
			c.log.V(1).Info("unresolved directive", "path", path, "specifier", d.Specifier, "kind", rerr.Kind.String())
			c.diagnostics = append(c.diagnostics, rerr)
			continue
		}
		if res.Warning != nil {
			c.diagnostics = append(c.diagnostics, res.Warning)
		}

		targetId := c.nodeId(res.Path)
		c.graph.EnsureNode(targetId, res.Path)
		c.graph.AddEdge(graph.DependencyEdge{
			From:          id,
			To:            targetId,
			DirectiveType: d.Kind,
			Location:      d.Location,
			Namespace:     d.Namespace,
			Configured:    d.Configured,
		})

		if err := c.visit(res.Path); err != nil {
			c.diagnostics = append(c.diagnostics, err)
		}
	}
	return nil
}

// collectOrphans walks the root tree and inserts every .scss/.sass file not
// already present in the graph. Orphans are never parsed for dependencies;
// isolation is exactly what marks them as orphans later, in analyze.
func (c *Crawler) collectOrphans() {
	_ = walkFiles(c.fsys, c.opts.RootDir, func(path string) error {
		rel, err := filepath.Rel(c.opts.RootDir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		matched := false
		for _, pattern := range orphanPatterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				matched = true
				break
			}
		}
		if !matched {
			return nil
		}

		canon := c.canonicalize(path)
		if c.visited[canon] {
			return nil
		}
		c.graph.EnsureNode(c.nodeId(canon), canon)
		return nil
	})
}

// walkFiles recursively visits every regular file under root, calling fn
// with its absolute path.
func walkFiles(fsys fs.FileSystem, root string, fn func(path string) error) error {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		full := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			if err := walkFiles(fsys, full, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(full); err != nil {
			return err
		}
	}
	return nil
}
