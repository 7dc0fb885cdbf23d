package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Visit is one tracked page view. The client IP is never stored, only its
// salted hash.
type Visit struct {
	ID        string    `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	VisitedAt time.Time `json:"visited_at"`
}

// Stats feeds the admin dashboard.
type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	TotalMessages    int64            `json:"total_messages"`
	MessagesThisWeek int64            `json:"messages_this_week"`
	TopPaths         []PathStat       `json:"top_paths"`
	RecentVisitors   []Visit          `json:"recent_visitors"`
	RecentMessages   []MessageSummary `json:"recent_messages"`
}

type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// MessageSummary is the dashboard view of a contact message.
type MessageSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (id, hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), hashedIP, userAgent, path, s.now())
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecentVisits returns the newest page views first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query visitors: %w", err)
	}
	defer rows.Close()

	visits := []Visit{}
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.VisitedAt); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// DeleteVisitsBefore removes page views older than cutoff and reports how
// many rows went.
func (s *Store) DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM visitors WHERE visited_at < ?", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete old visits: %w", err)
	}
	return result.RowsAffected()
}

// Stats aggregates visitor and message counts.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, "SELECT COUNT(*) FROM visitors", nil},
		{&stats.UniqueVisitors, "SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil},
		{&stats.VisitorsToday, "SELECT COUNT(*) FROM visitors WHERE visited_at >= ?", []any{startOfDay}},
		{&stats.VisitorsThisWeek, "SELECT COUNT(*) FROM visitors WHERE visited_at >= ?", []any{weekAgo}},
		{&stats.TotalMessages, "SELECT COUNT(*) FROM contact_messages", nil},
		{&stats.MessagesThisWeek, "SELECT COUNT(*) FROM contact_messages WHERE created_at >= ?", []any{weekAgo}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("stats top paths: %w", err)
	}
	stats.TopPaths = []PathStat{}
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			continue
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}
	// release the connection before the next query; sqlite runs with one
	rows.Close()

	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}

	messages, err := s.ListContactMessages(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.RecentMessages = make([]MessageSummary, 0, len(messages))
	for _, m := range messages {
		stats.RecentMessages = append(stats.RecentMessages, MessageSummary{
			ID: m.ID, Name: m.Name, Subject: m.Subject, CreatedAt: m.CreatedAt,
		})
	}

	return stats, nil
}
