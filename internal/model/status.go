package model

// Status is the lifecycle state of a session.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	return []string{"in progress", "won", "lost"}[s]
}

// Terminal reports whether no further actions are accepted.
func (s Status) Terminal() bool { return s != StatusInProgress }

// Outcome is the result of a single bust.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeOutOfBusts
)

func (o Outcome) String() string {
	return []string{"miss", "hit", "out of busts"}[o]
}
