package main

import (
	"fmt"

	"github.com/mosaicdb/go-mosaic/fieldpath"

	"github.com/scott-cotton/cli"
)

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: delete requires a field path", cli.ErrUsage)
	}
	fp, err := fieldpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if fp.Empty() {
		return fmt.Errorf("%w: cannot delete the empty field path", cli.ErrUsage)
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := loadDoc(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	doc.Delete(fp)
	return writeDoc(cfg.MainConfig, cc, doc)
}
