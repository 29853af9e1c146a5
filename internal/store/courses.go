// Package store persists finished course documents and per-course study
// progress in SQLite. The generation pipeline itself never touches it;
// it only ever receives the terminal document from a run.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/glebarez/go-sqlite"

	"github.com/meera/gurukul/internal/course"
)

type Store struct {
	DB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables if not exist
	queries := []string{
		`CREATE TABLE IF NOT EXISTS courses (
			id TEXT PRIMARY KEY,
			topic TEXT,
			language TEXT,
			modules INTEGER,
			document TEXT,
			created DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS progress (
			course_id TEXT PRIMARY KEY,
			current_module INTEGER,
			current_session INTEGER,
			completed_sessions TEXT,
			scores TEXT,
			updated DATETIME
		);`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return nil, err
		}
	}

	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

var idUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// courseID derives a stable, readable id from the topic and the save
// time, e.g. "async_programming_20260831_142501".
func courseID(topic string, now time.Time) string {
	slug := idUnsafe.ReplaceAllString(strings.ToLower(topic), "_")
	slug = strings.Trim(slug, "_")
	return fmt.Sprintf("%s_%s", slug, now.Format("20060102_150405"))
}

// SaveCourse stores a finished document and returns its id.
func (s *Store) SaveCourse(doc *course.Document) (string, error) {
	if doc == nil || doc.Topic == "" {
		return "", fmt.Errorf("course must have a topic")
	}
	if len(doc.Modules) == 0 {
		return "", fmt.Errorf("course must have modules")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	id := courseID(doc.Topic, time.Now())
	query := `INSERT INTO courses (id, topic, language, modules, document) VALUES (?, ?, ?, ?, ?)`
	if _, err := s.DB.Exec(query, id, doc.Topic, doc.Language, len(doc.Modules), string(data)); err != nil {
		return "", err
	}
	return id, nil
}

// LoadCourse returns the stored document, or nil if the id is unknown.
func (s *Store) LoadCourse(id string) (*course.Document, error) {
	var data string
	err := s.DB.QueryRow(`SELECT document FROM courses WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc course.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CourseInfo is one row of the course listing.
type CourseInfo struct {
	ID       string
	Topic    string
	Language string
	Modules  int
	Created  string
}

func (s *Store) ListCourses() ([]CourseInfo, error) {
	rows, err := s.DB.Query(`SELECT id, topic, language, modules, created FROM courses ORDER BY created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []CourseInfo
	for rows.Next() {
		var c CourseInfo
		if err := rows.Scan(&c.ID, &c.Topic, &c.Language, &c.Modules, &c.Created); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
