package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"io"
	"io/ioutil"
	"math"
	"strings"
)

// MaxKeyLen is the longest key that fits the generated hex_str[8] buffer.
const MaxKeyLen = 7

var (
	ErrEmpty        = errors.New("empty document")
	ErrNotObject    = errors.New("not a JSON object")
	ErrTrailingData = errors.New("unexpected data after top-level object")
	ErrMissingSpace = errors.New("missing color space")
	ErrArity        = errors.New("want an array of exactly 3 values")
	ErrNotNumber    = errors.New("not a finite number")
	ErrKey          = errors.New("invalid key")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Options controls how strictly a document is checked.
type Options struct {
	// Strict requires every key to be a 6 digit hex color, "#" prefix optional.
	Strict bool
}

//**exported functions**//
// Load reads the whole document at path and decodes it. A leading "~" in path
// is expanded to the user's home directory.
func Load(path string, opts Options) (Snapshot, error) {
	p, e := homedir.Expand(path)
	if e != nil {
		return nil, e
	}

	b, e := ioutil.ReadFile(p)
	if e != nil {
		return nil, e
	}

	s, e := Decode(bytes.NewReader(b), opts)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}

	return s, nil
}

// Decode parses a snapshot document and returns its records sorted by key.
// Every record is checked; all problems found are returned together.
func Decode(r io.Reader, opts Options) (Snapshot, error) {
	dec := json.NewDecoder(r)

	t, e := dec.Token()
	if e == io.EOF {
		return nil, ErrEmpty
	}
	if e != nil {
		return nil, e
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("top level: %w", ErrNotObject)
	}

	var errs *multierror.Error
	records := make([]Record, 0)
	seen := make(map[string]bool)

	for dec.More() {
		t, e := dec.Token()
		if e != nil {
			return nil, e
		}
		key, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("top level: %w", ErrNotObject)
		}

		var raw json.RawMessage
		if e := dec.Decode(&raw); e != nil {
			return nil, e
		}

		if seen[key] {
			errs = multierror.Append(errs, fmt.Errorf("%q: %w", key, ErrDuplicateKey))
			continue
		}
		seen[key] = true

		if e := checkKey(key, opts.Strict); e != nil {
			errs = multierror.Append(errs, e)
		}

		rec, e := decodeRecord(key, raw)
		if e != nil {
			errs = multierror.Append(errs, e)
			continue
		}
		records = append(records, rec)
	}

	// closing brace
	if _, e := dec.Token(); e != nil {
		if e == io.EOF {
			e = io.ErrUnexpectedEOF
		}
		return nil, e
	}
	if _, e := dec.Token(); e != io.EOF {
		if e != nil {
			return nil, e
		}
		return nil, ErrTrailingData
	}

	if e := errs.ErrorOrNil(); e != nil {
		return nil, e
	}

	return newSnapshot(records), nil
}

//**helper functions**//
func checkKey(key string, strict bool) error {
	if key == "" || len(key) > MaxKeyLen {
		return fmt.Errorf("%q: %w: length %d, want 1 to %d bytes", key, ErrKey, len(key), MaxKeyLen)
	}

	for i := 0; i < len(key); i++ {
		c := key[i]
		if c < 0x20 || c > 0x7e || c == '"' || c == '\\' {
			return fmt.Errorf("%q: %w: byte %#x cannot appear in a C string literal", key, ErrKey, c)
		}
	}

	if strict {
		h := "#" + strings.TrimPrefix(key, "#")
		c, e := colorful.Hex(h)
		if e != nil || len(h) != 7 || c.Hex() != strings.ToLower(h) {
			return fmt.Errorf("%q: %w: not a 6 digit hex color", key, ErrKey)
		}
	}

	return nil
}

func decodeRecord(key string, raw json.RawMessage) (Record, error) {
	rec := Record{Hex: key}

	var fields map[string]json.RawMessage
	if e := json.Unmarshal(raw, &fields); e != nil || fields == nil {
		return rec, fmt.Errorf("%q: %w", key, ErrNotObject)
	}

	var errs *multierror.Error
	for _, s := range Spaces {
		v, ok := fields[s.String()]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("%q: %s: %w", key, s, ErrMissingSpace))
			continue
		}

		t, e := decodeTriple(v)
		if e != nil {
			errs = multierror.Append(errs, fmt.Errorf("%q: %s: %w", key, s, e))
			continue
		}
		rec.Triples[s] = t
	}

	return rec, errs.ErrorOrNil()
}

func decodeTriple(raw json.RawMessage) (Triple, error) {
	var t Triple
	var vs []interface{}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if e := dec.Decode(&vs); e != nil || vs == nil {
		return t, ErrArity
	}
	if len(vs) != len(t) {
		return t, fmt.Errorf("%w: got %d", ErrArity, len(vs))
	}

	for i, v := range vs {
		n, ok := v.(json.Number)
		if !ok {
			return t, fmt.Errorf("[%d] %v: %w", i, v, ErrNotNumber)
		}
		f, e := n.Float64()
		if e != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return t, fmt.Errorf("[%d] %s: %w", i, n, ErrNotNumber)
		}
		t[i] = Component(n)
	}

	return t, nil
}
