package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/xmlgen/xmlgen"
	"github.com/signadot/xmlgen/xmltree"
)

func write(cfg *WriteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Write.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.Model.check(); err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: write takes at most one data file", cli.ErrUsage)
	}
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	pp := xmltree.DefaultPrettyPrint()
	if cfg.Compact {
		pp = xmltree.PrettyPrint{Compact: true}
	}
	p, err := cfg.Model.generate(pp, theLog)
	if err != nil {
		return err
	}
	inst, err := readData(path, cc.In)
	if err != nil {
		return err
	}
	if cfg.Class == "" {
		return p.Write(cc.Out, inst)
	}
	b := xmltree.NewBuilder(p.Pretty)
	doc := b.NewDocument()
	if err := xmlgen.WriteClass(p, b, cfg.Class, inst, xmlgen.Uncapitalize(cfg.Class), doc); err != nil {
		return err
	}
	return b.Serialize(doc, cc.Out)
}
