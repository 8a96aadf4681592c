// Package csource renders a snapshot as a C source fragment for the HSLuv
// test suite. The fragment declares the TestVector type, the snapshot array
// and snapshot_n; test_hsluv.c reads the struct fields by position, so the
// field order follows snapshot.Spaces exactly.
package csource

import (
	_ "embed"
	"github.com/flosch/pongo2"
	"github.com/mmuldo/snapshot-json2c/snapshot"
	"io"
	"path/filepath"
)

// Generator is the tool name written into the header comment.
const Generator = "snapshot-json2c"

//go:embed templates/snapshot.h.tpl
var snapshotTemplate string

var tpl = pongo2.Must(pongo2.FromString(snapshotTemplate))

type record struct {
	Hex   string
	Lines []line
}

// line is one color space of a record: three literals and the space name.
type line struct {
	Space   string
	X, Y, Z string
}

// Render returns the C source for s. source is the input file it was read
// from; only its base name is written.
func Render(s snapshot.Snapshot, source string) ([]byte, error) {
	records := make([]record, len(s))
	for i, r := range s {
		ls := make([]line, len(snapshot.Spaces))
		for j, sp := range snapshot.Spaces {
			t := r.Triple(sp)
			ls[j] = line{sp.String(), t[0].Literal(), t[1].Literal(), t[2].Literal()}
		}
		records[i] = record{r.Hex, ls}
	}

	o, e := tpl.Execute(pongo2.Context{
		"source":    filepath.Base(source),
		"generator": Generator,
		"keysize":   snapshot.MaxKeyLen + 1,
		"fields":    snapshot.Fields(),
		"records":   records,
	})
	if e != nil {
		return nil, e
	}

	return []byte(o), nil
}

// Write renders s in memory and hands it to w in a single write, so nothing
// reaches w when rendering fails.
func Write(w io.Writer, s snapshot.Snapshot, source string) error {
	b, e := Render(s, source)
	if e != nil {
		return e
	}

	_, e = w.Write(b)
	return e
}
