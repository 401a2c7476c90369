package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mosaicdb/go-mosaic/encode"
	"github.com/mosaicdb/go-mosaic/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render values with color'"`
	Compact bool `cli:"name=1 aliases=compact desc='render values on one line'"`

	J bool `cli:"name=j aliases=json desc='do document i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do document i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat picks the input format: explicit flags win, then the file
// suffix, then yaml.
func (cfg *MainConfig) inFormat(path string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	case strings.HasSuffix(path, format.JSONFormat.Suffix()):
		return format.JSONFormat
	default:
		return format.YAMLFormat
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.J:
		return format.JSONFormat
	default:
		return format.YAMLFormat
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeCompact(cfg.Compact),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type DeleteConfig struct {
	*MainConfig

	Delete *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type MaskConfig struct {
	*MainConfig

	Mask *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Mask string `cli:"name=mask desc='comma-separated field paths to merge'"`

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
