package feature

// Entry is the serialized form of one feature in the bit index.
type Entry struct {
	Label string `json:"label" yaml:"label"`
	B     uint64 `json:"b" yaml:"b"`
}

// Index maps every symbolic feature name to its label and bit value, so any
// consumer holding a flags integer can decode it without this package.
func Index() map[string]Entry {
	idx := make(map[string]Entry, numFeatures)
	for _, d := range vocabulary {
		idx[d.name] = Entry{Label: d.label, B: 1 << d.bit}
	}
	return idx
}

// Decode returns the set encoded by flags. Bits that no feature owns are
// dropped.
func Decode(flags uint64) Set {
	var s Set
	for _, f := range ordered {
		if flags&f.Bit() != 0 {
			s = s.Add(f)
		}
	}
	return s
}
