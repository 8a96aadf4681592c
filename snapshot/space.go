package snapshot

// Space is one of the color spaces a test vector is expressed in.
type Space int

const (
	RGB Space = iota
	XYZ
	LUV
	LCH
	HSLuv
	HPLuv

	numSpaces
)

// Spaces lists every color space in record order. The generated C struct lays
// its fields out in this order, so it must not change.
var Spaces = [numSpaces]Space{RGB, XYZ, LUV, LCH, HSLuv, HPLuv}

var spaceInfo = [numSpaces]struct {
	name       string
	components [3]string
}{
	RGB:   {"rgb", [3]string{"r", "g", "b"}},
	XYZ:   {"xyz", [3]string{"x", "y", "z"}},
	LUV:   {"luv", [3]string{"l", "u", "v"}},
	LCH:   {"lch", [3]string{"l", "c", "h"}},
	HSLuv: {"hsluv", [3]string{"h", "s", "l"}},
	HPLuv: {"hpluv", [3]string{"h", "s", "l"}},
}

// String returns the JSON key of the space.
func (s Space) String() string {
	if s < 0 || s >= numSpaces {
		return "unknown"
	}
	return spaceInfo[s].name
}

// Fields returns the C field names of the space, e.g. rgb_r, rgb_g, rgb_b.
func (s Space) Fields() [3]string {
	var f [3]string
	for i, c := range spaceInfo[s].components {
		f[i] = spaceInfo[s].name + "_" + c
	}
	return f
}

// Fields returns all 18 field names in positional order.
func Fields() []string {
	f := make([]string, 0, 3*numSpaces)
	for _, s := range Spaces {
		fs := s.Fields()
		f = append(f, fs[:]...)
	}
	return f
}
