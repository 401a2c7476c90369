package main

import (
	"fmt"
	"strings"

	mosaic "github.com/mosaicdb/go-mosaic"
	"github.com/mosaicdb/go-mosaic/fieldpath"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires a data file", cli.ErrUsage)
	}
	data, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := loadDoc(cfg.MainConfig, file)
	if err != nil {
		return err
	}
	fm, err := mergeMask(cfg, data)
	if err != nil {
		return err
	}
	doc.SetAll(fm, data)
	return writeDoc(cfg.MainConfig, cc, doc)
}

// mergeMask resolves the -mask flag, defaulting to the data document's
// own populated shape.
func mergeMask(cfg *MergeConfig, data *mosaic.ObjectValue) (fieldpath.FieldMask, error) {
	if cfg.Mask == "" {
		return data.ToFieldMask(), nil
	}
	var paths []fieldpath.FieldPath
	for _, s := range strings.Split(cfg.Mask, ",") {
		fp, err := fieldpath.Parse(strings.TrimSpace(s))
		if err != nil {
			return fieldpath.FieldMask{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		paths = append(paths, fp)
	}
	return fieldpath.NewMask(paths...), nil
}
