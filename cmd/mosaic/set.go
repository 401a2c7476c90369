package main

import (
	"fmt"

	"github.com/mosaicdb/go-mosaic/fieldpath"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a field path and a value", cli.ErrUsage)
	}
	fp, err := fieldpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if fp.Empty() {
		return fmt.Errorf("%w: cannot set the empty field path", cli.ErrUsage)
	}
	v, err := parseValue([]byte(args[1]), cfg.inFormat(""))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file := "-"
	if len(args) > 2 {
		file = args[2]
	}
	doc, err := loadDoc(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	doc.Set(fp, v)
	return writeDoc(cfg.MainConfig, cc, doc)
}
