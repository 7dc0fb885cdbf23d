package site

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/model"
)

// List is the state of one backend-fed section: a loading flag and the
// fetched items.
type List[T any] struct {
	name  string
	fetch func(context.Context) ([]T, error)
	log   *zap.Logger

	once    sync.Once
	mu      sync.RWMutex
	loading bool
	items   []T
}

// NewList returns a section that is loading until Load settles.
func NewList[T any](name string, fetch func(context.Context) ([]T, error), log *zap.Logger) *List[T] {
	return &List[T]{name: name, fetch: fetch, log: log, loading: true, items: []T{}}
}

// Load issues the section's single read. On failure the section ends up
// empty and the error is only logged. Calls after the first do nothing.
func (l *List[T]) Load(ctx context.Context) {
	l.once.Do(func() {
		items, err := l.fetch(ctx)
		if err != nil {
			l.log.Error("section fetch failed", zap.String("section", l.name), zap.Error(err))
			items = nil
		}
		if items == nil {
			items = []T{}
		}

		l.mu.Lock()
		l.items = items
		l.loading = false
		l.mu.Unlock()
	})
}

func (l *List[T]) Name() string {
	return l.name
}

// Loading is true until Load has settled.
func (l *List[T]) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Items returns the fetched items in the order the backend sent them.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.items
}

// ProjectsSection adds the category filter to the projects list. Changing
// the filter never triggers another fetch.
type ProjectsSection struct {
	*List[model.Project]

	filterMu sync.RWMutex
	filter   string
}

func NewProjectsSection(fetch func(context.Context) ([]model.Project, error), log *zap.Logger) *ProjectsSection {
	return &ProjectsSection{
		List:   NewList("projects", fetch, log),
		filter: model.CategoryAll,
	}
}

// SetFilter selects a category. Unknown values are kept as is and simply
// match nothing.
func (p *ProjectsSection) SetFilter(category string) {
	p.filterMu.Lock()
	p.filter = category
	p.filterMu.Unlock()
}

func (p *ProjectsSection) Filter() string {
	p.filterMu.RLock()
	defer p.filterMu.RUnlock()
	return p.filter
}

// Visible returns the fetched projects that pass the current filter.
func (p *ProjectsSection) Visible() []model.Project {
	return model.FilterProjects(p.Items(), p.Filter())
}
