package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Progress tracks where a learner is within a stored course and which
// session assessments they have completed.
type Progress struct {
	CourseID          string             `json:"course_id"`
	CurrentModule     int                `json:"current_module"`
	CurrentSession    int                `json:"current_session"`
	CompletedSessions []string           `json:"completed_sessions"`
	Scores            map[string]float64 `json:"assessment_scores"`
	Updated           time.Time          `json:"last_updated"`
}

func sessionKey(moduleIdx, sessionIdx int) string {
	return fmt.Sprintf("%d_%d", moduleIdx, sessionIdx)
}

// LoadProgress returns the stored progress for a course, or a fresh
// zero-position record when none exists yet.
func (s *Store) LoadProgress(courseID string) (*Progress, error) {
	var (
		p         Progress
		completed string
		scores    string
	)
	err := s.DB.QueryRow(
		`SELECT current_module, current_session, completed_sessions, scores, updated FROM progress WHERE course_id = ?`,
		courseID,
	).Scan(&p.CurrentModule, &p.CurrentSession, &completed, &scores, &p.Updated)
	if err == sql.ErrNoRows {
		return &Progress{
			CourseID: courseID,
			Scores:   map[string]float64{},
			Updated:  time.Now(),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	p.CourseID = courseID
	if err := json.Unmarshal([]byte(completed), &p.CompletedSessions); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(scores), &p.Scores); err != nil {
		return nil, err
	}
	if p.Scores == nil {
		p.Scores = map[string]float64{}
	}
	return &p, nil
}

// SaveProgress upserts a progress record, stamping the update time.
func (s *Store) SaveProgress(p *Progress) error {
	completed, err := json.Marshal(p.CompletedSessions)
	if err != nil {
		return err
	}
	scores, err := json.Marshal(p.Scores)
	if err != nil {
		return err
	}

	p.Updated = time.Now()
	query := `INSERT INTO progress (course_id, current_module, current_session, completed_sessions, scores, updated)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(course_id) DO UPDATE SET
			current_module = excluded.current_module,
			current_session = excluded.current_session,
			completed_sessions = excluded.completed_sessions,
			scores = excluded.scores,
			updated = excluded.updated`
	_, err = s.DB.Exec(query, p.CourseID, p.CurrentModule, p.CurrentSession, string(completed), string(scores), p.Updated)
	return err
}

// UpdateSessionProgress moves the learner position and optionally marks
// the session completed with a score. A negative score means no score
// is recorded.
func (s *Store) UpdateSessionProgress(courseID string, moduleIdx, sessionIdx int, completed bool, score float64) (*Progress, error) {
	p, err := s.LoadProgress(courseID)
	if err != nil {
		return nil, err
	}

	key := sessionKey(moduleIdx, sessionIdx)
	if completed && !contains(p.CompletedSessions, key) {
		p.CompletedSessions = append(p.CompletedSessions, key)
	}
	if score >= 0 {
		p.Scores[key] = score
	}
	p.CurrentModule = moduleIdx
	p.CurrentSession = sessionIdx

	if err := s.SaveProgress(p); err != nil {
		return nil, err
	}
	return p, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
