package app

// Experience deltas per action.
const (
	ExpTask     = 10
	ExpReading  = 15
	ExpPractice = 5
	ExpGame     = 20

	expCeiling = 100
)

// grantExp applies the experience rule: reaching or passing the ceiling
// advances the level and resets exp to exactly zero, dropping any overflow.
func (s *Service) grantExp(delta int) {
	next := s.settings.Clone()
	exp := next.Exp + delta
	if exp >= expCeiling {
		next.Level++
		next.Exp = 0
	} else {
		next.Exp = exp
	}
	s.settings = next
}
