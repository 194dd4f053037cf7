package engine

// applySpeedBoost sets every body to the boosted speed on the first frame the
// boundary is inactive. Fires once per run.
func applySpeedBoost(s *State) bool {
	if s.Boundary.Active || s.SpeedBoosted {
		return false
	}
	for _, b := range s.Bodies {
		b.Speed = s.Params.BoostedSpeed
	}
	s.SpeedBoosted = true
	return true
}
