package debug

import (
	"fmt"
	"os"

	"github.com/mosaicdb/go-mosaic/value"
)

// Val renders a *value.Value argument as its canonical ID when logged.
type Val struct{ *value.Value }

func (v Val) String() string {
	if v.Value == nil {
		return "<absent>"
	}
	return value.CanonicalID(v.Value)
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *value.Value:
			args[i] = Val{x}
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
