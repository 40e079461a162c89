package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/bind"
	"github.com/gogpu/bind/datasource"
	"github.com/gogpu/bind/layout"
	"github.com/gogpu/bind/measure"
	"github.com/gogpu/bind/pagefile"
)

// session holds everything needed to run one page.
type session struct {
	opts     options
	binder   *bind.Binder[string]
	data     bind.DataAccess[string]
	measurer layout.Measurer
	tree     *layout.Tree
	closers  []io.Closer
}

func openSession(c *cli.Context) (*session, error) {
	opts, err := loadOptions(c)
	if err != nil {
		return nil, err
	}
	setLogger(c.App.ErrWriter, opts.Verbose)

	s := &session{opts: opts, binder: bind.NewBinder[string]()}
	file, err := pagefile.Load(opts.Pages)
	if err != nil {
		return nil, err
	}
	if err := file.Register(s.binder); err != nil {
		return nil, err
	}
	if _, ok := s.binder.Page(opts.Page); !ok {
		return nil, fmt.Errorf("page %q not in %s (have %s)", opts.Page, opts.Pages, strings.Join(file.PageNames(), ", "))
	}

	if s.data, err = openData(opts.Data, s); err != nil {
		return nil, err
	}
	if s.measurer, err = measure.New(opts.Measurer); err != nil {
		_ = s.Close()
		return nil, err
	}
	s.tree = layout.NewTree(measure.NewCached(s.measurer, 0))
	return s, nil
}

func openData(path string, s *session) (bind.DataAccess[string], error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		if path == "" {
			return bind.NoData[string]{}, nil
		}
	case ".db", ".bolt":
		st, err := datasource.Open(path)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, st)
		return st, nil
	}
	return datasource.LoadMap(path)
}

func (s *session) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

// run interprets the page and returns the result of the last pass and the
// render commands of the laid out tree. With a pointer the page is laid
// out once first so that hover tests see the element boxes. The last pass
// drives final, which must forward to the session tree; nil drives the
// tree directly.
func (s *session) run(final layout.Engine) (bind.Result[string], []layout.RenderCommand, error) {
	x, y, hasPointer, err := parsePointer(s.opts.Pointer)
	if err != nil {
		return bind.Result[string]{}, nil, err
	}
	w, h := float64(s.opts.Width), float64(s.opts.Height)

	var input bind.Input
	if hasPointer {
		s.tree.SetPointer(x, y)
		s.tree.BeginLayout(w, h)
		if _, err := s.binder.Run(s.opts.Page, s.tree, s.data, bind.Input{}); err != nil {
			return bind.Result[string]{}, nil, err
		}
		s.tree.EndLayout()
		if s.opts.Click {
			input.Left = bind.MouseButton{Pressed: true, Released: true, Clicked: true}
		}
	}

	if final == nil {
		final = s.tree
	}
	s.tree.BeginLayout(w, h)
	res, err := s.binder.Run(s.opts.Page, final, s.data, input)
	if err != nil {
		return res, nil, err
	}
	return res, s.tree.EndLayout(), nil
}

func setLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	bind.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}
