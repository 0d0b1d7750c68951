// Command rbtree builds red-black trees from the command line and
// prints their shape.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type metadata struct {
	log       *zap.SugaredLogger
	showColor bool
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "rbtree"
	app.Usage = "insert keys into a red-black tree and show the result"
	app.Version = version

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "verbose",
			Usage:  " log every insertion",
			EnvVar: "RBTREE_VERBOSE",
		},
		cli.BoolFlag{
			Name:   "no-color",
			Usage:  " omit node colours from the printed tree",
			EnvVar: "RBTREE_NO_COLOR",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert integer keys in the given order",
			ArgsUsage: "KEY...",
			Action:    runInsert,
		},
		{
			Name:  "random",
			Usage: "insert distinct pseudo-random keys and report the height",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 1000,
					Usage: " number of distinct keys `N`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 42,
					Usage: " random source seed `SEED`",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " print the resulting tree",
				},
			},
			Action: runRandom,
		},
	}

	app.Before = func(c *cli.Context) error {
		logger := newLogger(c.Bool("verbose"), c.App.ErrWriter)
		app.Metadata = map[string]interface{}{
			"config": &metadata{
				log:       logger.Sugar(),
				showColor: !c.Bool("no-color"),
				w:         c.App.Writer,
			},
		}
		return nil
	}
	app.After = func(c *cli.Context) error {
		if m, ok := c.App.Metadata["config"].(*metadata); ok {
			_ = m.log.Sync()
		}
		return nil
	}

	return app
}

// newLogger writes JSON at info level, or console-formatted debug
// output when verbose, to e.
func newLogger(verbose bool, e io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if verbose {
		level = zapcore.DebugLevel
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(e), level)
	return zap.New(core)
}
