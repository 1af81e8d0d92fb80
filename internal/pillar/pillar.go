// Package pillar defines the three tracked life pillars and the raw records
// the pressure engines consume: practice problems, projects, and career events.
package pillar

import (
	"errors"
	"fmt"
)

// Key identifies a pillar in profiles, snapshots, and focus actions.
type Key string

const (
	Projects Key = "projects"
	DSA      Key = "dsa"
	Career   Key = "career"
)

// All lists the pillars in their canonical profile order.
var All = []Key{Projects, DSA, Career}

var labels = map[Key]string{
	Projects: "Projects",
	DSA:      "DSA",
	Career:   "Career / Exams",
}

// Label returns the display label for a pillar.
func (k Key) Label() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

// ParseKey validates a pillar key.
func ParseKey(s string) (Key, error) {
	k := Key(s)
	if _, ok := labels[k]; !ok {
		return "", fmt.Errorf("%w: unknown pillar %q", ErrInvalidInput, s)
	}
	return k, nil
}

var (
	// ErrInvalidInput marks malformed records: unparseable dates, unknown
	// enum values, and the like. Engines assume callers already rejected them.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a record or nested item does not exist.
	ErrNotFound = errors.New("not found")
)
