package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Set    bool
	Delete bool
	Merge  bool
	Patch  bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Set = boolEnv("MOSAIC_DEBUG_SET")
	d.Delete = boolEnv("MOSAIC_DEBUG_DELETE")
	d.Merge = boolEnv("MOSAIC_DEBUG_MERGE")
	d.Patch = boolEnv("MOSAIC_DEBUG_PATCH")
	d.Diff = boolEnv("MOSAIC_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Set() bool {
	return d.Set
}
func Delete() bool {
	return d.Delete
}
func Merge() bool {
	return d.Merge
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
