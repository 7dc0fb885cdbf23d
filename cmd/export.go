package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/client"
	"github.com/Zachkp/portfolio/internal/model"
	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/internal/store"
)

func newExportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the fully loaded page to static files",
		Long: `Render index.html with every list section filled in, plus the
embedded assets, into the output directory.

Content is read from BACKEND_URL when it is set, otherwise straight from
the configured database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var backend site.Backend
			if cfg.Backend.Explicit {
				backend = client.New(cfg.Backend.URL, cfg.Backend.Timeout)
			} else {
				db, err := openStore(cmd.Context(), cfg.Database, log, false)
				if err != nil {
					return err
				}
				defer db.Close()
				backend = storeBackend{db}
			}

			content, err := site.DefaultContent()
			if err != nil {
				return err
			}
			s, err := site.New(backend, content, site.LoadGate{}, log.Named("site"))
			if err != nil {
				return err
			}

			if err := export(cmd.Context(), s, outDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	return cmd
}

func export(ctx context.Context, s *site.Site, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	f, err := os.Create(filepath.Join(outDir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	if err := s.RenderStatic(ctx, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	return copyFS(site.StaticFiles(), filepath.Join(outDir, "static"))
}

func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}

// storeBackend lets the site read straight from the database. SendContact
// only completes site.Backend: a static export renders the form but never
// submits it.
type storeBackend struct {
	db *store.Store
}

func (b storeBackend) Projects(ctx context.Context) ([]model.Project, error) {
	return b.db.ListProjects(ctx)
}

func (b storeBackend) Certificates(ctx context.Context) ([]model.Certificate, error) {
	return b.db.ListCertificates(ctx)
}

func (b storeBackend) Talks(ctx context.Context) ([]model.Talk, error) {
	return b.db.ListTalks(ctx)
}

func (b storeBackend) SendContact(ctx context.Context, msg model.ContactMessage) error {
	_, err := b.db.SaveContactMessage(ctx, msg)
	return err
}
