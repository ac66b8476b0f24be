package domain

import "strings"

// Pillar is one of the three life domains a habit belongs to.
type Pillar string

const (
	PillarPhysical Pillar = "Physical"
	PillarMental   Pillar = "Mental"
	PillarSocial   Pillar = "Social"
)

// Pillars lists every pillar in display order.
var Pillars = []Pillar{PillarPhysical, PillarMental, PillarSocial}

// IsValid reports whether p is one of the known pillars.
func (p Pillar) IsValid() bool {
	switch p {
	case PillarPhysical, PillarMental, PillarSocial:
		return true
	}
	return false
}

// ParsePillar matches a pillar name case-insensitively.
func ParsePillar(s string) (Pillar, bool) {
	for _, p := range Pillars {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, true
		}
	}
	return "", false
}

// PillarCounts holds a completion count per pillar.
type PillarCounts struct {
	Physical int `json:"Physical" yaml:"Physical"`
	Mental   int `json:"Mental" yaml:"Mental"`
	Social   int `json:"Social" yaml:"Social"`
}

// Add increments the bucket for p. Unknown pillars are ignored.
func (c *PillarCounts) Add(p Pillar) {
	switch p {
	case PillarPhysical:
		c.Physical++
	case PillarMental:
		c.Mental++
	case PillarSocial:
		c.Social++
	}
}

// Get returns the count for p.
func (c PillarCounts) Get(p Pillar) int {
	switch p {
	case PillarPhysical:
		return c.Physical
	case PillarMental:
		return c.Mental
	case PillarSocial:
		return c.Social
	}
	return 0
}

// Total sums all pillars.
func (c PillarCounts) Total() int {
	return c.Physical + c.Mental + c.Social
}
