package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func mask(cfg *MaskConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Mask.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		doc, err := loadDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		fm := doc.ToFieldMask()
		for _, fp := range fm.Paths() {
			fmt.Fprintln(cc.Out, fp)
		}
	}
	return nil
}
