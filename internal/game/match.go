package game

// MatchMode selects the scoring rules. Only deathmatch is implemented; the
// team modes are reserved identifiers so levels can declare them early.
type MatchMode string

const (
	ModeDeathmatch     MatchMode = "deathmatch"
	ModeTeamDeathmatch MatchMode = "team_deathmatch"
	ModeCaptureTheFlag MatchMode = "capture_the_flag"
)

// MatchPhase is the match lifecycle. Ended is terminal: no further frags or
// deaths are recorded once reached.
type MatchPhase string

const (
	PhaseInProgress MatchPhase = "in_progress"
	PhaseEnding     MatchPhase = "ending"
	PhaseEnded      MatchPhase = "ended"
)

// MatchConfig is the win-condition tuning for one match.
type MatchConfig struct {
	Mode       MatchMode `json:"mode" msgpack:"mode"`
	FragLimit  int       `json:"fragLimit" msgpack:"frag_limit"`   // 0 disables
	TimeLimit  float64   `json:"timeLimit" msgpack:"time_limit"`   // seconds, 0 disables
	EndingHold float64   `json:"endingHold" msgpack:"ending_hold"` // scoreboard display time
}

// MatchState tracks the scoreboard and win conditions. It is advanced once
// per tick after combat has resolved, so a frag that reaches the limit ends
// the match on the tick it lands.
type MatchState struct {
	Config  MatchConfig    `json:"config" msgpack:"config"`
	Phase   MatchPhase     `json:"phase" msgpack:"phase"`
	Elapsed float64        `json:"elapsed" msgpack:"elapsed"`
	Frags   map[string]int `json:"frags" msgpack:"frags"`
	Deaths  map[string]int `json:"deaths" msgpack:"deaths"`
	Winner  string         `json:"winner,omitempty" msgpack:"winner"`

	// EndingLeft is the remaining scoreboard hold, meaningful only in
	// PhaseEnding. Serialized so a restored match resumes the hold instead
	// of ending instantly.
	EndingLeft float64 `json:"endingLeft,omitempty" msgpack:"ending_left"`
}

// NewMatchState initializes an in-progress match.
func NewMatchState(cfg MatchConfig) *MatchState {
	if cfg.Mode == "" {
		cfg.Mode = ModeDeathmatch
	}
	return &MatchState{
		Config: cfg,
		Phase:  PhaseInProgress,
		Frags:  map[string]int{},
		Deaths: map[string]int{},
	}
}

// RecordFrag credits a kill. Ignored once the match has ended.
func (m *MatchState) RecordFrag(actorID string, _ Team) {
	if m.Phase == PhaseEnded {
		return
	}
	m.Frags[actorID]++
}

// RecordDeath records a death on the scoreboard.
func (m *MatchState) RecordDeath(actorID string) {
	if m.Phase == PhaseEnded {
		return
	}
	m.Deaths[actorID]++
}

// Leader returns the current unique frag leader, or "" when the top score is
// tied or nobody has scored.
func (m *MatchState) Leader() (string, int) {
	best, bestID := -1, ""
	tied := false
	for id, f := range m.Frags {
		switch {
		case f > best:
			best, bestID, tied = f, id, false
		case f == best:
			tied = true
		}
	}
	if tied || bestID == "" {
		return "", best
	}
	return bestID, best
}

// Advance moves match time forward and evaluates win conditions. A frag
// limit ends the match immediately; a time limit ends it only with a unique
// leader, otherwise play continues until the tie breaks (sudden death).
func (m *MatchState) Advance(dt float64) {
	switch m.Phase {
	case PhaseEnded:
		return
	case PhaseEnding:
		m.EndingLeft -= dt
		if m.EndingLeft <= 0 {
			m.EndingLeft = 0
			m.Phase = PhaseEnded
		}
		return
	}

	m.Elapsed += dt
	leader, top := m.Leader()

	if m.Config.FragLimit > 0 && top >= m.Config.FragLimit && leader != "" {
		m.finish(leader)
		return
	}
	if m.Config.TimeLimit > 0 && m.Elapsed >= m.Config.TimeLimit && leader != "" {
		m.finish(leader)
	}
}

func (m *MatchState) finish(winner string) {
	m.Winner = winner
	if m.Config.EndingHold > 0 {
		m.Phase = PhaseEnding
		m.EndingLeft = m.Config.EndingHold
		return
	}
	m.Phase = PhaseEnded
}

// Done reports whether the match reached its terminal phase.
func (m *MatchState) Done() bool { return m.Phase == PhaseEnded }
