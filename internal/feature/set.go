package feature

import (
	"encoding/json"
	"fmt"
	"math/bits"
	"strings"
)

// Set is a duplicate-free collection of features stored as its bit flags.
// The zero value is the empty set.
type Set uint64

// NewSet returns the set holding fs.
func NewSet(fs ...Feature) Set {
	var s Set
	for _, f := range fs {
		s = s.Add(f)
	}
	return s
}

// Flags returns the bitwise OR of the member bit values.
func (s Set) Flags() uint64 {
	return uint64(s)
}

// Add returns s with f included.
func (s Set) Add(f Feature) Set {
	return s | Set(f.Bit())
}

// Union returns the members of s and o.
func (s Set) Union(o Set) Set {
	return s | o
}

// Has reports whether f is a member.
func (s Set) Has(f Feature) bool {
	b := f.Bit()
	return b != 0 && uint64(s)&b == b
}

// HasAll reports whether every member of want is also in s.
func (s Set) HasAll(want Set) bool {
	return s&want == want
}

// Len returns the number of members.
func (s Set) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Empty reports whether s has no members.
func (s Set) Empty() bool {
	return s == 0
}

// Features returns the members ordered by bit index.
func (s Set) Features() []Feature {
	var out []Feature
	for _, f := range ordered {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Names returns the symbolic names of the members ordered by bit index.
func (s Set) Names() []string {
	fs := s.Features()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name()
	}
	return out
}

// Labels returns the display labels of the members ordered by bit index.
func (s Set) Labels() []string {
	fs := s.Features()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Label()
	}
	return out
}

func (s Set) String() string {
	return strings.Join(s.Labels(), ", ")
}

// MarshalJSON encodes the set as a list of symbolic names.
func (s Set) MarshalJSON() ([]byte, error) {
	names := s.Names()
	if names == nil {
		names = []string{}
	}
	return json.Marshal(names)
}

// UnmarshalJSON decodes a list of symbolic names.
func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	parsed, err := ParseNames(names...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the set as a list of symbolic names.
func (s Set) MarshalYAML() (any, error) {
	return s.Names(), nil
}

// ParseNames builds a set from symbolic names.
func ParseNames(names ...string) (Set, error) {
	var s Set
	for _, name := range names {
		f, ok := Lookup(strings.TrimSpace(name))
		if !ok {
			return 0, fmt.Errorf("unknown feature %q", name)
		}
		s = s.Add(f)
	}
	return s, nil
}

// ordered lists every feature by bit index.
var ordered = byBit()

func byBit() []Feature {
	var out [64]Feature
	var used [64]bool
	for _, d := range vocabulary {
		out[d.bit] = d.feature
		used[d.bit] = true
	}
	fs := make([]Feature, 0, numFeatures)
	for i, ok := range used {
		if ok {
			fs = append(fs, out[i])
		}
	}
	return fs
}
