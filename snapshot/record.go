package snapshot

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Component is a single channel value, kept as the number text it was read from.
type Component json.Number

// Triple holds the three channel values of one color space.
type Triple [3]Component

// Record is one test vector: a hex color and its value in every Space.
type Record struct {
	Hex     string
	Triples [numSpaces]Triple
}

// Snapshot is the full set of test vectors, ordered by Hex.
type Snapshot []Record

func (c Component) Float64() (float64, error) {
	return strconv.ParseFloat(string(c), 64)
}

// Triple returns the values of the record in space s.
func (r Record) Triple(s Space) Triple {
	return r.Triples[s]
}

func (s Snapshot) Len() int           { return len(s) }
func (s Snapshot) Less(i, j int) bool { return s[i].Hex < s[j].Hex }
func (s Snapshot) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Keys returns the hex keys in snapshot order.
func (s Snapshot) Keys() []string {
	k := make([]string, len(s))
	for i, r := range s {
		k[i] = r.Hex
	}
	return k
}

func newSnapshot(rs []Record) Snapshot {
	s := Snapshot(rs)
	sort.Sort(s)
	return s
}
