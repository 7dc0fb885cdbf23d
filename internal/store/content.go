package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Zachkp/portfolio/internal/model"
)

// ListProjects returns every project in insertion order.
func (s *Store) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.queryProjects(ctx, `
		SELECT id, title, description, tech_stack, image_url, github_url, demo_url, category, featured
		FROM projects ORDER BY position`)
}

// ListFeaturedProjects returns the featured projects in insertion order.
func (s *Store) ListFeaturedProjects(ctx context.Context) ([]model.Project, error) {
	return s.queryProjects(ctx, `
		SELECT id, title, description, tech_stack, image_url, github_url, demo_url, category, featured
		FROM projects WHERE featured = TRUE ORDER BY position`)
}

func (s *Store) queryProjects(ctx context.Context, query string) ([]model.Project, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var (
			p         model.Project
			techStack string
			github    sql.NullString
			demo      sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &techStack, &p.ImageURL, &github, &demo, &p.Category, &p.Featured); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if err := json.Unmarshal([]byte(techStack), &p.TechStack); err != nil {
			return nil, fmt.Errorf("decode tech stack of %s: %w", p.ID, err)
		}
		p.GithubURL, p.DemoURL = github.String, demo.String
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListCertificates returns every certificate in insertion order.
func (s *Store) ListCertificates(ctx context.Context) ([]model.Certificate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, issuer, date, image_url, credential_url
		FROM certificates ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query certificates: %w", err)
	}
	defer rows.Close()

	certificates := []model.Certificate{}
	for rows.Next() {
		var (
			c          model.Certificate
			credential sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.Issuer, &c.Date, &c.ImageURL, &credential); err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		c.CredentialURL = credential.String
		certificates = append(certificates, c)
	}
	return certificates, rows.Err()
}

// ListTalks returns every talk in insertion order.
func (s *Store) ListTalks(ctx context.Context) ([]model.Talk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, event_name, date, description, image_url, video_url
		FROM talks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query talks: %w", err)
	}
	defer rows.Close()

	talks := []model.Talk{}
	for rows.Next() {
		var (
			t     model.Talk
			video sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.EventName, &t.Date, &t.Description, &t.ImageURL, &video); err != nil {
			return nil, fmt.Errorf("scan talk: %w", err)
		}
		t.VideoURL = video.String
		talks = append(talks, t)
	}
	return talks, rows.Err()
}

// AddProject appends a project after the existing ones.
func (s *Store) AddProject(ctx context.Context, p model.Project) error {
	pos, err := s.count(ctx, "projects")
	if err != nil {
		return err
	}
	techStack, err := json.Marshal(orEmpty(p.TechStack))
	if err != nil {
		return fmt.Errorf("encode tech stack: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, position, title, description, tech_stack, image_url, github_url, demo_url, category, featured)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, pos, p.Title, p.Description, string(techStack), p.ImageURL, nullable(p.GithubURL), nullable(p.DemoURL), p.Category, p.Featured)
	if err != nil {
		return fmt.Errorf("insert project %s: %w", p.ID, err)
	}
	return nil
}

// AddCertificate appends a certificate after the existing ones.
func (s *Store) AddCertificate(ctx context.Context, c model.Certificate) error {
	pos, err := s.count(ctx, "certificates")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO certificates (id, position, title, issuer, date, image_url, credential_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, pos, c.Title, c.Issuer, c.Date, c.ImageURL, nullable(c.CredentialURL))
	if err != nil {
		return fmt.Errorf("insert certificate %s: %w", c.ID, err)
	}
	return nil
}

// AddTalk appends a talk after the existing ones.
func (s *Store) AddTalk(ctx context.Context, t model.Talk) error {
	pos, err := s.count(ctx, "talks")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO talks (id, position, title, event_name, date, description, image_url, video_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, pos, t.Title, t.EventName, t.Date, t.Description, t.ImageURL, nullable(t.VideoURL))
	if err != nil {
		return fmt.Errorf("insert talk %s: %w", t.ID, err)
	}
	return nil
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
