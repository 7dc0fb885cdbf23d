package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/model"
)

//go:embed seed.yaml
var sampleData []byte

// SeedData is the initial content inserted into empty tables.
type SeedData struct {
	Projects     []model.Project     `yaml:"projects"`
	Certificates []model.Certificate `yaml:"certificates"`
	Talks        []model.Talk        `yaml:"talks"`
}

// SampleData returns the bundled sample content.
func SampleData() (SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(sampleData, &data); err != nil {
		return data, fmt.Errorf("decode sample data: %w", err)
	}
	return data, nil
}

// SeedResult counts the rows inserted by Seed.
type SeedResult struct {
	Projects, Certificates, Talks int
}

// Seed fills each table that is still empty. Records without an id get a
// random UUID. Tables that already hold rows are left alone.
func (s *Store) Seed(ctx context.Context, data SeedData) (SeedResult, error) {
	var res SeedResult

	if n, err := s.count(ctx, "projects"); err != nil {
		return res, err
	} else if n == 0 {
		for _, p := range data.Projects {
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			if err := s.AddProject(ctx, p); err != nil {
				return res, err
			}
			res.Projects++
		}
	}

	if n, err := s.count(ctx, "certificates"); err != nil {
		return res, err
	} else if n == 0 {
		for _, c := range data.Certificates {
			if c.ID == "" {
				c.ID = uuid.NewString()
			}
			if err := s.AddCertificate(ctx, c); err != nil {
				return res, err
			}
			res.Certificates++
		}
	}

	if n, err := s.count(ctx, "talks"); err != nil {
		return res, err
	} else if n == 0 {
		for _, t := range data.Talks {
			if t.ID == "" {
				t.ID = uuid.NewString()
			}
			if err := s.AddTalk(ctx, t); err != nil {
				return res, err
			}
			res.Talks++
		}
	}

	return res, nil
}
