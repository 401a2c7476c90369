package main

import (
	"fmt"

	"github.com/mosaicdb/go-mosaic/fieldpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a field path", cli.ErrUsage)
	}
	fp, err := fieldpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := loadDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		v := doc.Get(fp)
		if v == nil {
			return fmt.Errorf("%s: no value at %s", file, fp)
		}
		if err := writeValue(cfg.MainConfig, cc, v); err != nil {
			return err
		}
	}
	return nil
}
