// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command kontrepl reads a single s-expression program from a file (or
// stdin) and runs it to completion against the numeric/boolean host,
// optionally tracing the control term of every machine state.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"kontlang"
	"kontlang/internal/klog"
	"kontlang/ops"
	"kontlang/surface"
)

func main() {
	app := &cli.App{
		Name:  "kontrepl",
		Usage: "run a shift/reset s-expression program",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print the control term of every machine state before it steps",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Args:      true,
		ArgsUsage: "[file]",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("kontrepl: %s", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("no-color") {
		color.NoColor = true
	}

	src, filename, err := readSource(c)
	if err != nil {
		return err
	}

	node, err := surface.ParseString(filename, src)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	term, err := surface.Lower(node)
	if err != nil {
		return fmt.Errorf("lower: %w", err)
	}

	log := klog.Default()
	if c.Bool("trace") {
		log = klog.New(os.Stderr, klog.LevelTrace)
	}

	host := ops.New()
	ev := kontlang.New(host)
	state := kontlang.Inject(term)

	for {
		if c.Bool("trace") {
			log.Trace("control=%s", kontlang.String(state.Control))
		}
		res, err := ev.Step(state)
		if err != nil {
			return fmt.Errorf("step: %w", err)
		}
		if res.Done {
			fmt.Println(formatValue(res.Value))
			return nil
		}
		state = res.Next
	}
}

func readSource(c *cli.Context) (src, filename string, err error) {
	if c.Args().Len() > 0 {
		path := c.Args().First()
		b, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(b), path, nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), "<stdin>", nil
}

func formatValue(v kontlang.Value) string {
	switch val := v.(type) {
	case kontlang.Scalar:
		return fmt.Sprintf("%v", val.Payload)
	case kontlang.KontVal:
		return "<continuation>"
	default:
		return fmt.Sprintf("%v", v)
	}
}
