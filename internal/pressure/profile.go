package pressure

import "github.com/blaezi/blaezi/internal/pillar"

// Entry is one pillar's pressure in a profile.
type Entry struct {
	Pillar   pillar.Key `json:"pillar"`
	Label    string     `json:"label"`
	Pressure int        `json:"pressure"`
}

// Profile is the ordered per-pillar pressure list.
type Profile []Entry

// Inputs are the three pillar pressures a profile is built from.
type Inputs struct {
	Projects int
	DSA      int
	Career   int
}

// BuildProfile assembles the fixed-order projects, dsa, career profile.
func BuildProfile(in Inputs) Profile {
	return Profile{
		{Pillar: pillar.Projects, Label: pillar.Projects.Label(), Pressure: in.Projects},
		{Pillar: pillar.DSA, Label: pillar.DSA.Label(), Pressure: in.DSA},
		{Pillar: pillar.Career, Label: pillar.Career.Label(), Pressure: in.Career},
	}
}

// Get returns the entry for a pillar.
func (p Profile) Get(key pillar.Key) (Entry, bool) {
	for _, e := range p {
		if e.Pillar == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Pressures maps each pillar key to its pressure.
func (p Profile) Pressures() map[pillar.Key]int {
	m := make(map[pillar.Key]int, len(p))
	for _, e := range p {
		m[e.Pillar] = e.Pressure
	}
	return m
}

// Average returns the mean pressure, or 0 for an empty profile.
func (p Profile) Average() float64 {
	if len(p) == 0 {
		return 0
	}
	total := 0
	for _, e := range p {
		total += e.Pressure
	}
	return float64(total) / float64(len(p))
}
