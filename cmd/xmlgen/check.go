package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/xmlgen/xmltree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.Model.check(); err != nil {
		return err
	}
	if cfg.Out == "" {
		return fmt.Errorf("%w: check needs -o", cli.ErrUsage)
	}
	p, err := cfg.Model.generate(xmltree.DefaultPrettyPrint(), theLog)
	if err != nil {
		return err
	}
	want, err := render(p, cfg.Package, cfg.Types, cfg.Out)
	if err != nil {
		return err
	}
	have, err := os.ReadFile(cfg.Out)
	if err != nil {
		return err
	}
	if !writeDiff(cc.Out, string(have), string(want), colorize(cc.Out)) {
		return nil
	}
	theLog.Warn("generated code is out of date", "file", cfg.Out, "model", cfg.Model.Path)
	return cli.ExitCodeErr(1)
}

func colorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// writeDiff writes the lines that differ between from and to, prefixed
// with "-" and "+", and reports whether there were any.
func writeDiff(w io.Writer, from, to string, colors bool) bool {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del, ins := fmt.Sprintf, fmt.Sprintf
	if colors {
		del, ins = color.RedString, color.GreenString
	}
	changed := false
	for _, d := range diffs {
		var prefix string
		var paint func(string, ...any) string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "-", del
		case diffpatch.DiffInsert:
			prefix, paint = "+", ins
		default:
			continue
		}
		changed = true
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprint(w, paint("%s%s", prefix, strings.TrimSuffix(line, "\n")), "\n")
		}
	}
	return changed
}
