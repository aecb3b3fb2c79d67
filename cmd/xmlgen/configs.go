package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/xmlgen/model"
	"github.com/signadot/xmlgen/xmlgen"
	"github.com/signadot/xmlgen/xmltree"
)

type MainConfig struct {
	Verbose bool `cli:"name=v desc='log debug messages'"`

	Main *cli.Command
}

// ModelConfig holds the options every subcommand uses to load a model and
// generate its program.
type ModelConfig struct {
	Path         string `cli:"name=m desc='model file, yaml or json'"`
	Version      string `cli:"name=version desc='model version to generate for (default all versions)'"`
	RejectCycles bool   `cli:"name=reject-cycles desc='fail on association cycles instead of warning'"`
	LineSep      string `cli:"name=line-sep desc='line separator of written documents: lf or crlf'"`

	Overlays []string
}

func newModelConfig() *ModelConfig {
	return &ModelConfig{LineSep: "lf"}
}

func (mc *ModelConfig) opts() []*cli.Opt {
	opts, err := cli.StructOpts(mc)
	if err != nil {
		panic(err)
	}
	return append(opts, &cli.Opt{
		Name:        "p",
		Description: "overlay (json patch or merge patch) applied to the model, may be repeated",
		Type:        cli.NamedFuncOpt(mc.overlayOpt, "(file)"),
	})
}

func (mc *ModelConfig) overlayOpt(_ *cli.Context, a string) (any, error) {
	mc.Overlays = append(mc.Overlays, a)
	return a, nil
}

// files returns the files a model is read from.
func (mc *ModelConfig) files() []string {
	return append([]string{mc.Path}, mc.Overlays...)
}

func (mc *ModelConfig) check() error {
	if mc.Path == "" {
		return fmt.Errorf("%w: -m is required", cli.ErrUsage)
	}
	if mc.Version != "" && !model.ValidVersion(mc.Version) {
		return fmt.Errorf("%w: invalid version %q", cli.ErrUsage, mc.Version)
	}
	if _, err := lineSeparator(mc.LineSep); err != nil {
		return err
	}
	return nil
}

func (mc *ModelConfig) load() (*model.Schema, error) {
	var opts []model.LoadOption
	for _, o := range mc.Overlays {
		d, err := os.ReadFile(o)
		if err != nil {
			return nil, fmt.Errorf("could not read overlay: %w", err)
		}
		opts = append(opts, model.LoadOverlay(d))
	}
	return model.LoadFile(mc.Path, opts...)
}

// generate loads the model and generates its program. pp is adjusted to
// the configured line separator.
func (mc *ModelConfig) generate(pp xmltree.PrettyPrint, log *slog.Logger) (*xmlgen.Program, error) {
	sep, err := lineSeparator(mc.LineSep)
	if err != nil {
		return nil, err
	}
	pp.LineSeparator = sep
	s, err := mc.load()
	if err != nil {
		return nil, err
	}
	return xmlgen.Generate(s, xmlgen.Options{
		Version:      mc.Version,
		Pretty:       pp,
		RejectCycles: mc.RejectCycles,
		Log:          log,
	})
}

func lineSeparator(v string) (string, error) {
	switch strings.ToLower(v) {
	case "", "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	default:
		return "", fmt.Errorf("%w: bad line separator %q, want lf or crlf", cli.ErrUsage, v)
	}
}

type GenConfig struct {
	*MainConfig
	Model *ModelConfig

	Out     string `cli:"name=o desc='output file (default stdout)'"`
	Package string `cli:"name=package desc='package name of the generated file'"`
	Types   bool   `cli:"name=types desc='generate the model struct types too'"`
	Verify  bool   `cli:"name=verify desc='check the hand written model types next to the output file'"`
	Watch   bool   `cli:"name=watch desc='regenerate when the model or an overlay changes'"`
	Gops    bool   `cli:"name=gops desc='run a gops agent while watching'"`

	Gen *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Model *ModelConfig

	Out     string `cli:"name=o desc='generated file to check'"`
	Package string `cli:"name=package desc='package name of the generated file'"`
	Types   bool   `cli:"name=types desc='the generated file has the model struct types'"`

	Check *cli.Command
}

type WriteConfig struct {
	*MainConfig
	Model *ModelConfig

	Class   string `cli:"name=class desc='write the document as this class instead of the root class'"`
	Compact bool   `cli:"name=compact desc='write without indentation or line breaks'"`

	Write *cli.Command
}

type PlanConfig struct {
	*MainConfig
	Model *ModelConfig

	Plan *cli.Command
}
