package main

import (
	"fmt"
	"io"
	"os"

	mosaic "github.com/mosaicdb/go-mosaic"
	"github.com/mosaicdb/go-mosaic/encode"
	"github.com/mosaicdb/go-mosaic/format"
	"github.com/mosaicdb/go-mosaic/govalue"
	"github.com/mosaicdb/go-mosaic/value"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

// readAll reads path, treating "-" as stdin.
func readAll(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func parseValue(data []byte, f format.Format) (*value.Value, error) {
	if f.IsJSON() {
		return govalue.UnmarshalJSON(data)
	}
	var a any
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return govalue.FromAny(a)
}

func loadValue(cfg *MainConfig, path string) (*value.Value, error) {
	data, err := readAll(path)
	if err != nil {
		return nil, err
	}
	v, err := parseValue(data, cfg.inFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func loadDoc(cfg *MainConfig, path string) (*mosaic.ObjectValue, error) {
	v, err := loadValue(cfg, path)
	if err != nil {
		return nil, err
	}
	if v == nil || v.Kind != value.MapKind {
		return nil, fmt.Errorf("%s: document root is not a map", path)
	}
	return mosaic.FromValue(v), nil
}

func writeValue(cfg *MainConfig, cc *cli.Context, v *value.Value) error {
	if cfg.OutFormat == nil && !cfg.J && !cfg.Y {
		return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
	}
	if cfg.outFormat().IsJSON() {
		data, err := govalue.MarshalJSON(v)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = cc.Out.Write(data)
		return err
	}
	data, err := yaml.Marshal(govalue.ToAny(v))
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(data)
	return err
}

func writeDoc(cfg *MainConfig, cc *cli.Context, doc *mosaic.ObjectValue) error {
	return writeValue(cfg, cc, doc.Value())
}
