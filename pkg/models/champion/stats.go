package champion

// Stats is the raw stat block of a champion, keyed by the Data Dragon names
// (hp, hpperlevel, attackspeed, attackspeedoffset...).
type Stats map[string]float64

// Get returns the stat value or zero when absent.
func (s Stats) Get(key string) float64 {
	if s == nil {
		return 0
	}
	return s[key]
}

// Has reports whether the stat was sent at all.
func (s Stats) Has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s[key]
	return ok
}

// AtLevel scales a stat linearly with its per level growth.
func (s Stats) AtLevel(key string, level int) float64 {
	return s.Get(key) + s.Get(key+"perlevel")*float64(level-1)
}
