package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpapi "syntheo-client/internal/http"
	"syntheo-client/internal/repository"
	"syntheo-client/internal/service"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		addr   string
		userID int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the in-memory development backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			if addr == "" {
				addr = a.cfg.HTTP.Addr
			}

			repo := repository.NewSeededMemory(nil)
			if userID > 0 {
				if _, err := repo.GetUser(cmd.Context(), userID); err != nil {
					return errors.New("unknown --as user")
				}
				repo.SetCurrentUserID(userID)
			}
			srv := service.NewServer(addr, httpapi.NewRouter(repo, a.logger), a.logger)

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sig)

			select {
			case err := <-errCh:
				return err
			case s := <-sig:
				a.logger.Info("Received signal", zap.String("signal", s.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(ctx); err != nil {
				return err
			}
			return <-errCh
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default HTTP_ADDR)")
	cmd.Flags().IntVar(&userID, "as", 0, "User ID returned by /users/me (default 1)")
	return cmd
}
