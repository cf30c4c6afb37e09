package store

import (
	"time"

	"career-compass-be/internal/entity"
)

// Turn is one completed query/response exchange within a session.
type Turn struct {
	Query      string    `json:"query"`
	Response   string    `json:"response"`
	Status     string    `json:"status"`
	AnsweredAt time.Time `json:"answered_at"`
}

// GuidanceSession is the active student session state held in memory. The
// profile persists across turns so follow-up questions reuse the intake data.
type GuidanceSession struct {
	ID        string                 `json:"id"`
	Profile   *entity.StudentProfile `json:"profile"`
	Turns     []Turn                 `json:"turns"`
	LastQuery string                 `json:"last_query"`
	CreatedAt time.Time              `json:"created_at"`
}

// maxTurns bounds in-memory history per session.
const maxTurns = 20

// RecordTurn appends an exchange, evicting the oldest past maxTurns.
func (s *GuidanceSession) RecordTurn(turn Turn) {
	s.Turns = append(s.Turns, turn)
	if len(s.Turns) > maxTurns {
		s.Turns = s.Turns[len(s.Turns)-maxTurns:]
	}
	s.LastQuery = turn.Query
}
