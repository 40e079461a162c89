package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/bind"
	"github.com/gogpu/bind/layout"
	"github.com/gogpu/bind/pagefile"
	"github.com/gogpu/bind/preview"
	"github.com/gogpu/bind/recording"
)

func renderAction(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	res, cmds, err := s.run(nil)
	if err != nil {
		return err
	}

	// Draw text with the measuring faces when the measurer has them.
	faces, _ := s.measurer.(preview.FaceSource)
	r := preview.NewRenderer(faces)
	r.Background = layout.White
	img, err := r.Render(cmds, s.opts.Width, s.opts.Height)
	if err != nil {
		return err
	}
	if err := preview.SavePNG(s.opts.Out, img); err != nil {
		return err
	}

	w := c.App.Writer
	st := stylesFor(w)
	fmt.Fprintf(w, "wrote %s (%dx%d, %d render commands)\n", s.opts.Out, s.opts.Width, s.opts.Height, len(cmds))
	printResult(w, st, res)
	return nil
}

func inspectAction(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	rec := recording.NewRecorder(s.tree)
	res, _, err := s.run(rec)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := rec.FinishRecording().WriteTo(&buf); err != nil {
		return err
	}
	w := c.App.Writer
	st := stylesFor(w)
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		fmt.Fprintln(w, st.line(sc.Text()))
	}
	printResult(w, st, res)
	return sc.Err()
}

func pagesAction(c *cli.Context) error {
	opts, err := loadOptions(c)
	if err != nil {
		return err
	}
	setLogger(c.App.ErrWriter, opts.Verbose)

	file, err := pagefile.Load(opts.Pages)
	if err != nil {
		return err
	}

	w := c.App.Writer
	st := stylesFor(w)
	fmt.Fprintln(w, st.render(st.heading, "pages"))
	for _, name := range file.PageNames() {
		fmt.Fprintf(w, "  %s %s\n", name, st.render(st.dim, fmt.Sprintf("(%d commands)", len(file.Pages[name]))))
	}
	if names := file.FragmentNames(); len(names) > 0 {
		fmt.Fprintln(w, st.render(st.heading, "fragments"))
		for _, name := range names {
			fmt.Fprintf(w, "  %s %s\n", name, st.render(st.dim, fmt.Sprintf("(%d commands)", len(file.Fragments[name]))))
		}
	}
	return nil
}

// printResult lists the events of a pass and the pointer and focus state
// it left behind.
func printResult(w io.Writer, st styles, res bind.Result[string]) {
	for _, ev := range res.Events {
		line := "event " + ev.Event
		if ctx := ev.Context; ctx != nil {
			if ctx.Text != nil {
				line += fmt.Sprintf(" text=%q", *ctx.Text)
			}
			if ctx.Code != nil {
				line += fmt.Sprintf(" code=%d", *ctx.Code)
			}
			if ctx.Code2 != nil {
				line += fmt.Sprintf(" code2=%d", *ctx.Code2)
			}
		}
		fmt.Fprintln(w, st.render(st.event, line))
	}
	if res.Pointer != bind.CursorDefault {
		fmt.Fprintf(w, "pointer %s\n", res.Pointer)
	}
	if res.FocusChanged {
		fmt.Fprintf(w, "focus %08x\n", res.Focus)
	}
}
