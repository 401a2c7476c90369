package main

import (
	"fmt"

	mosaic "github.com/mosaicdb/go-mosaic"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchData, err := readAll(args[0])
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
	if cfg.Merge {
		doc, err = mosaic.ApplyMergePatch(doc, patchData)
	} else {
		doc, err = mosaic.ApplyPatch(doc, patchData)
	}
	if err != nil {
		return err
	}
	return writeDoc(cfg.MainConfig, cc, doc)
}
