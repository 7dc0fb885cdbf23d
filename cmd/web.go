package cmd

import (
	"github.com/spf13/cobra"
)

func newWebCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Serve only the site, reading content from BACKEND_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			s, err := newSite(cfg, cfg.Backend.URL, log)
			if err != nil {
				return err
			}

			r := newEngine(log)
			s.Register(r)
			return listen(cmd.Context(), cfg.Server, r, log)
		},
	}
}
