// Package site renders the single-page portfolio: the shell with its
// loading screen, the composed sections, the backend-fed list fragments and
// the contact form.
package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/model"
	"github.com/Zachkp/portfolio/internal/nav"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Backend is the REST API the list sections and the contact form talk to.
type Backend interface {
	Projects(ctx context.Context) ([]model.Project, error)
	Certificates(ctx context.Context) ([]model.Certificate, error)
	Talks(ctx context.Context) ([]model.Talk, error)
	Sender
}

type Site struct {
	backend Backend
	content *Content
	gate    LoadGate
	tmpl    *template.Template
	log     *zap.Logger
}

func New(backend Backend, content *Content, gate LoadGate, log *zap.Logger) (*Site, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"even": func(i int) bool { return i%2 == 0 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Site{backend: backend, content: content, gate: gate, tmpl: tmpl, log: log}, nil
}

// Register mounts the page, fragment and asset routes.
func (s *Site) Register(r gin.IRouter) {
	static, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.index)
	r.GET("/app", s.app)
	r.GET("/sections/projects", s.projects)
	r.GET("/sections/certificates", s.certificates)
	r.GET("/sections/talks", s.talks)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)
}

// StaticFiles exposes the embedded assets for the export command.
func StaticFiles() fs.FS {
	static, _ := fs.Sub(staticFS, "static")
	return static
}

type pageData struct {
	Content      *Content
	Nav          []nav.Item
	Active       string
	ProbeOffset  int
	Scrolled     int
	Gate         LoadGate
	Static       bool
	Projects     projectsView
	Certificates *List[model.Certificate]
	Talks        *List[model.Talk]
	Contact      contactView
	Year         int
}

func (s *Site) page() pageData {
	tracker := nav.NewTracker()
	return pageData{
		Content:     s.content,
		Nav:         tracker.Items(),
		Active:      tracker.Active(),
		ProbeOffset: nav.ProbeOffset,
		Scrolled:    nav.ScrolledThreshold,
		Gate:        s.gate,
		Contact:     newContactView(NewForm(s.backend, s.log)),
		Year:        time.Now().Year(),
	}
}

func (s *Site) html(c *gin.Context, name string, data any) {
	c.Render(http.StatusOK, render.HTML{Template: s.tmpl, Name: name, Data: data})
}

// index serves the shell: only the loading screen, which asks for /app once
// the gate delay has passed.
func (s *Site) index(c *gin.Context) {
	s.html(c, "index.html", s.page())
}

// app serves every section in page order. List sections arrive as
// placeholders that fetch their own fragment.
func (s *Site) app(c *gin.Context) {
	s.html(c, "app.html", s.page())
}

func (s *Site) projects(c *gin.Context) {
	section := NewProjectsSection(s.backend.Projects, s.log)
	section.Load(c.Request.Context())
	if category := c.Query("category"); category != "" {
		section.SetFilter(category)
	}
	s.html(c, "projects-section", newProjectsView(section))
}

func (s *Site) certificates(c *gin.Context) {
	section := NewList("certificates", s.backend.Certificates, s.log)
	section.Load(c.Request.Context())
	s.html(c, "certificates-section", section)
}

func (s *Site) talks(c *gin.Context) {
	section := NewList("talks", s.backend.Talks, s.log)
	section.Load(c.Request.Context())
	s.html(c, "talks-section", section)
}

func (s *Site) contactForm(c *gin.Context) {
	s.html(c, "contact-form", newContactView(NewForm(s.backend, s.log)))
}

func (s *Site) submitContact(c *gin.Context) {
	form := NewForm(s.backend, s.log)
	form.Fill(model.ContactMessage{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Message: c.PostForm("message"),
	})
	form.Submit(c.Request.Context())
	s.html(c, "contact-form", newContactView(form))
}

// RenderStatic writes the whole page with every list section loaded and no
// loading gate.
func (s *Site) RenderStatic(ctx context.Context, w io.Writer) error {
	data := s.page()
	data.Static = true

	projects := NewProjectsSection(s.backend.Projects, s.log)
	certificates := NewList("certificates", s.backend.Certificates, s.log)
	talks := NewList("talks", s.backend.Talks, s.log)

	// sections swallow their own errors, so the group only waits
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { projects.Load(gctx); return nil })
	g.Go(func() error { certificates.Load(gctx); return nil })
	g.Go(func() error { talks.Load(gctx); return nil })
	if err := g.Wait(); err != nil {
		return err
	}

	data.Projects = newProjectsView(projects)
	data.Certificates = certificates
	data.Talks = talks

	if err := s.tmpl.ExecuteTemplate(w, "static.html", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

type projectCard struct {
	model.Project
	Visible bool
}

type projectsView struct {
	Loading    bool
	Filter     string
	Categories []string
	Cards      []projectCard
	Shown      int
}

func newProjectsView(section *ProjectsSection) projectsView {
	filter := section.Filter()
	items := section.Items()
	cards := make([]projectCard, 0, len(items))
	for _, p := range items {
		matched := model.FilterProjects([]model.Project{p}, filter)
		cards = append(cards, projectCard{Project: p, Visible: len(matched) == 1})
	}

	return projectsView{
		Loading:    section.Loading(),
		Filter:     filter,
		Categories: model.Categories,
		Cards:      cards,
		Shown:      len(section.Visible()),
	}
}

type contactView struct {
	Fields model.ContactMessage
	Status Status
	Notice string
}

func newContactView(f *Form) contactView {
	return contactView{Fields: f.Fields(), Status: f.Status(), Notice: f.Notice()}
}
