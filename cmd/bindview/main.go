// Command bindview loads a page file and a data file, runs one page
// through the interpreter and either rasterizes the result, prints the
// recorded engine calls or lists the pages of the file.
//
//	bindview render --pages ui.yaml --data data.yaml --page main --out main.png
//	bindview inspect --pages ui.yaml --data data.yaml --pointer 20,10 --click
//	bindview pages --pages ui.yaml
//
// A bindview.yaml file in the working directory supplies defaults for
// every flag that is not given on the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "bindview:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "bindview",
		Usage:     "render and inspect declarative pages",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:   "render",
				Usage:  "rasterize a page to PNG",
				Flags:  append(passFlags(), &cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output PNG file"}),
				Action: renderAction,
			},
			{
				Name:   "inspect",
				Usage:  "print the engine calls of one pass",
				Flags:  passFlags(),
				Action: inspectAction,
			},
			{
				Name:   "pages",
				Usage:  "list the pages and fragments of a page file",
				Flags:  commonFlags(),
				Action: pagesAction,
			},
		},
		HideHelpCommand: true,
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "project file with flag defaults", Value: defaultConfig},
		&cli.StringFlag{Name: "pages", Aliases: []string{"p"}, Usage: "YAML page file"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug output to stderr"},
	}
}

func passFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{Name: "data", Aliases: []string{"d"}, Usage: "YAML data file or bbolt store (.db)"},
		&cli.StringFlag{Name: "page", Usage: "page to run"},
		&cli.IntFlag{Name: "width", Usage: "viewport width"},
		&cli.IntFlag{Name: "height", Usage: "viewport height"},
		&cli.StringFlag{Name: "measurer", Aliases: []string{"m"}, Usage: "text measurer: cells, fixed, gotext or opentype"},
		&cli.StringFlag{Name: "pointer", Usage: "pointer position as x,y"},
		&cli.BoolFlag{Name: "click", Usage: "left click at the pointer"},
	)
}
