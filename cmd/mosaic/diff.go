package main

import (
	"fmt"

	mosaic "github.com/mosaicdb/go-mosaic"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two document files", cli.ErrUsage)
	}
	a, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := loadDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	fm := mosaic.DiffMask(a, b)
	for _, fp := range fm.Paths() {
		fmt.Fprintln(cc.Out, fp)
	}
	return nil
}
