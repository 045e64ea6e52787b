package skill

import "slices"

// Specialization is a named focus within a skill. Free ones are granted by
// qualities or gear rather than bought.
type Specialization struct {
	Name string `yaml:"name"`
	Free bool   `yaml:"free,omitempty"`
}

func (s *Skill) Specializations() []Specialization {
	return slices.Clone(s.specs)
}

// Specialization is the specialization that counts for bonuses: bought ones
// before free ones, otherwise in the order they were added. Skills without
// learned ranks report none, though their specializations are kept.
func (s *Skill) Specialization() string {
	if s.LearnedRating() == 0 {
		return ""
	}
	if i := s.purchased(); i >= 0 {
		return s.specs[i].Name
	}
	if len(s.specs) > 0 {
		return s.specs[0].Name
	}
	return ""
}

// SetSpecialization replaces the bought specialization, adding one when only
// free ones exist.
func (s *Skill) SetSpecialization(name string) {
	spec := Specialization{Name: name}
	if i := s.purchased(); i >= 0 {
		if s.specs[i] == spec {
			return
		}
		s.specs[i] = spec
	} else {
		s.specs = append(s.specs, spec)
	}
	s.changed(AttrSpecialization)
}

// AddSpecialization appends spec as is, for free grants and loading.
func (s *Skill) AddSpecialization(spec Specialization) {
	s.specs = append(s.specs, spec)
	s.changed(AttrSpecialization)
}

func (s *Skill) RemoveSpecialization(name string) bool {
	i := slices.IndexFunc(s.specs, func(sp Specialization) bool { return sp.Name == name })
	if i < 0 {
		return false
	}
	s.specs = slices.Delete(s.specs, i, i+1)
	s.changed(AttrSpecialization)
	return true
}

func (s *Skill) HasSpecialization(name string) bool {
	return slices.ContainsFunc(s.specs, func(sp Specialization) bool { return sp.Name == name })
}

func (s *Skill) purchased() int {
	return slices.IndexFunc(s.specs, func(sp Specialization) bool { return !sp.Free })
}

func (s *Skill) purchasedCount() int {
	n := 0
	for _, sp := range s.specs {
		if !sp.Free {
			n++
		}
	}
	return n
}
