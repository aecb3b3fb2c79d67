package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/xmlgen/xmlgen"
	"github.com/signadot/xmlgen/xmlgen/golang"
	"github.com/signadot/xmlgen/xmltree"
)

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.Model.check(); err != nil {
		return err
	}
	if cfg.Watch && cfg.Out == "" {
		return fmt.Errorf("%w: -watch needs -o", cli.ErrUsage)
	}
	if cfg.Verify && cfg.Out == "" {
		return fmt.Errorf("%w: -verify needs -o", cli.ErrUsage)
	}
	if err := genOnce(cfg, cc.Out); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		}
		defer agent.Close()
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := newWatcher(cfg.Model.files())
	if err != nil {
		return err
	}
	defer w.Close()
	theLog.Info("watching", "files", cfg.Model.files())
	return w.run(ctx, func() {
		if err := genOnce(cfg, cc.Out); err != nil {
			theLog.Error("generation failed", "error", err)
		}
	})
}

// genOnce renders the model to cfg.Out, or to w when no output file is
// set. An output file is only rewritten when its content changes.
func genOnce(cfg *GenConfig, w io.Writer) error {
	p, err := cfg.Model.generate(xmltree.DefaultPrettyPrint(), theLog)
	if err != nil {
		return err
	}
	src, err := render(p, cfg.Package, cfg.Types, cfg.Out)
	if err != nil {
		return err
	}
	if cfg.Verify {
		problems, err := golang.Verify(p, filepath.Dir(cfg.Out))
		if err != nil {
			return err
		}
		for _, msg := range problems {
			theLog.Warn("model type mismatch", "problem", msg)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d model type problems in %s", len(problems), filepath.Dir(cfg.Out))
		}
	}
	if cfg.Out == "" {
		_, err := w.Write(src)
		return err
	}
	old, err := os.ReadFile(cfg.Out)
	if err == nil && bytes.Equal(old, src) {
		theLog.Debug("up to date", "file", cfg.Out)
		return nil
	}
	if err := os.WriteFile(cfg.Out, src, 0644); err != nil {
		return err
	}
	theLog.Info("generated", "file", cfg.Out, "procedures", len(p.Procedures))
	return nil
}

func render(p *xmlgen.Program, pkg string, types bool, out string) ([]byte, error) {
	gc := golang.Config{Package: pkg, Types: types}
	if out != "" {
		gc.FileName = filepath.Base(out)
	}
	return golang.Render(p, gc)
}
