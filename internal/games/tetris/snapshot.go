package tetris

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Phase     Phase
	Score     int
	Level     int
	Lines     int
	Paused    bool
	Current   Kind
	Rotation  int
	CurrentX  int
	CurrentY  int
	Next      Kind
	FallMs    int
	Occupied  int    // Settled cells
	FieldHash uint64 // FNV-1a over cell colors, column-major
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	hash := uint64(offset)
	occupied := 0
	for x := 0; x < s.field.Width(); x++ {
		for y := 0; y < s.field.Height(); y++ {
			c := s.field.Cell(x, y)
			if !s.field.IsEmpty(x, y) {
				occupied++
			}
			hash ^= uint64(c)
			hash *= prime
		}
	}

	origin := s.current.Origin()
	return Snapshot{
		Phase:     s.phase,
		Score:     s.score,
		Level:     s.level,
		Lines:     s.lines,
		Paused:    s.paused,
		Current:   s.current.Kind(),
		Rotation:  s.current.Rotation(),
		CurrentX:  origin.X,
		CurrentY:  origin.Y,
		Next:      s.next.Kind(),
		FallMs:    s.fallMs,
		Occupied:  occupied,
		FieldHash: hash,
	}
}
