package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/admin"
	"github.com/Zachkp/portfolio/internal/api"
	"github.com/Zachkp/portfolio/internal/client"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/site"
	"github.com/Zachkp/portfolio/internal/store"
)

const retentionInterval = 24 * time.Hour

func newServeCmd() *cobra.Command {
	var noSeed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST API, the site and the admin dashboard",
		Long: `Serve everything on one port from one database.

The site reads its lists through the REST API of this same process unless
BACKEND_URL points somewhere else. Sample content is loaded into empty
tables on start unless --no-seed is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return runServe(cmd.Context(), cfg, log, !noSeed)
		},
	}

	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "do not load sample content into empty tables")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, log *zap.Logger, seed bool) error {
	db, err := openStore(ctx, cfg.Database, log, seed)
	if err != nil {
		return err
	}
	defer db.Close()

	backendURL := "http://127.0.0.1:" + cfg.Server.Port
	if cfg.Backend.Explicit {
		backendURL = cfg.Backend.URL
	}

	srv, err := newServer(cfg, db, backendURL, log)
	if err != nil {
		return err
	}

	retentionCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go srv.admin.RunRetention(retentionCtx, retentionInterval)

	err = listen(ctx, cfg.Server, srv.handler, log)
	cancel()
	srv.Wait()
	return err
}

type server struct {
	handler http.Handler
	api     *api.Handler
	admin   *admin.Admin
}

// Wait blocks until background visit writes and contact notifications are done.
func (s *server) Wait() {
	s.admin.Wait()
	s.api.Wait()
}

// newServer wires the API, admin and site onto one engine. The site reads
// its lists from backendURL.
func newServer(cfg *config.Config, db *store.Store, backendURL string, log *zap.Logger) (*server, error) {
	adm, err := admin.New(db, cfg.Admin, cfg.Privacy, cfg.Debug(), log.Named("admin"))
	if err != nil {
		return nil, err
	}

	mailer := mail.New(cfg.SMTP, log.Named("mail"))
	if !mailer.Enabled() {
		log.Info("contact mail notifications disabled, SMTP credentials not set")
	}

	s, err := newSite(cfg, backendURL, log)
	if err != nil {
		return nil, err
	}

	apiHandler := api.New(db, mailer, log.Named("api"))

	r := newEngine(log)
	r.Use(adm.TrackVisitors())
	apiHandler.Register(r)
	adm.Register(r)
	s.Register(r)

	return &server{handler: withCORS(cfg.CORS, r), api: apiHandler, admin: adm}, nil
}

func newSite(cfg *config.Config, backendURL string, log *zap.Logger) (*site.Site, error) {
	content, err := site.DefaultContent()
	if err != nil {
		return nil, err
	}
	backend := client.New(backendURL, cfg.Backend.Timeout)
	log.Info("site backend", zap.String("url", backend.BaseURL()))
	return site.New(backend, content, site.LoadGate{Delay: cfg.Site.LoadingDelay}, log.Named("site"))
}

// openStore opens and migrates the database, loading sample content into
// empty tables when seed is set.
func openStore(ctx context.Context, cfg config.Database, log *zap.Logger, seed bool) (*store.Store, error) {
	db, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Info("database ready", zap.String("driver", cfg.Driver))

	if !seed {
		return db, nil
	}
	data, err := store.SampleData()
	if err != nil {
		db.Close()
		return nil, err
	}
	res, err := db.Seed(ctx, data)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}
	log.Info("sample content loaded",
		zap.Int("projects", res.Projects),
		zap.Int("certificates", res.Certificates),
		zap.Int("talks", res.Talks))
	return db, nil
}
