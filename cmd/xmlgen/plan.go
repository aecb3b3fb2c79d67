package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/xmlgen/xmlgen"
	"github.com/signadot/xmlgen/xmltree"
)

func plan(cfg *PlanConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Plan.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.Model.check(); err != nil {
		return err
	}
	p, err := cfg.Model.generate(xmltree.DefaultPrettyPrint(), theLog)
	if err != nil {
		return err
	}
	fmt.Fprint(cc.Out, p)
	if len(p.Cycles) > 0 {
		fmt.Fprintln(cc.Out, xmlgen.FormatCycles(p.Cycles))
	}
	return nil
}
