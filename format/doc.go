// Package format names the document file formats the mosaic CLI reads and
// writes (json, yaml) and parses format selections from flags.
package format
