package ledger

// Progress is the derived completion state of one axis. It is computed
// from the current ledger and the catalog area count, never stored.
type Progress struct {
	AxisID      string
	ScoredAreas int
	TotalAreas  int
	Percent     int
	Complete    bool
}

// Progress computes the axis's completion state. Completion is
// deliberately permissive: an area counts as scored when it has at least
// one selected level, regardless of which.
func (l *Ledger) Progress(axisID string) (Progress, error) {
	if _, err := l.catalog.GetAxis(axisID); err != nil {
		return Progress{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.progressLocked(axisID), nil
}

// IsAxisComplete reports whether every area in the axis has a non-empty
// selection.
func (l *Ledger) IsAxisComplete(axisID string) (bool, error) {
	p, err := l.Progress(axisID)
	if err != nil {
		return false, err
	}
	return p.Complete, nil
}

// progressLocked computes progress for an axis known to exist.
// Caller must hold l.mu.
func (l *Ledger) progressLocked(axisID string) Progress {
	axis, err := l.catalog.GetAxis(axisID)
	if err != nil {
		// Only reachable through progressLocked callers that already
		// resolved the axis; a miss here is a programming error.
		panic(err)
	}

	p := Progress{AxisID: axisID, TotalAreas: len(axis.AreaIDs)}
	for _, areaID := range axis.AreaIDs {
		if len(l.scores[areaID]) > 0 {
			p.ScoredAreas++
		}
	}

	// Catalog validation rejects empty axes, but guard the division
	// anyway: zero areas means complete by vacuous truth.
	if p.TotalAreas == 0 {
		p.Complete = true
		return p
	}

	p.Percent = 100 * p.ScoredAreas / p.TotalAreas
	p.Complete = p.ScoredAreas == p.TotalAreas
	return p
}
