package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "busbooking/internal/config"
	router "busbooking/internal/http"
	"busbooking/internal/http/handlers"
	"busbooking/internal/repositories"
	"busbooking/internal/services"
	"busbooking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	draftIdleTTL       = 2 * time.Hour
	draftSweepInterval = 10 * time.Minute
)

func main() {
	env := intconfig.LoadEnv()
	utils.SetupLogger(env.LogLevel, env.GinMode == gin.ReleaseMode)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	submissions := repositories.SubmissionRepository{DB: db}
	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := submissions.EnsureSchema(schemaCtx); err != nil {
		logrus.Fatalf("failed to prepare schema: %v", err)
	}
	schemaCancel()

	drafts := repositories.NewDraftStore()
	api := &handlers.API{
		Env:         env,
		Drafts:      drafts,
		Submissions: submissions,
		Tokens:      services.DraftTokens{Secret: []byte(env.JWTSecret)},
	}
	r := router.NewRouter(api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepDrafts(ctx, drafts)

	go func() {
		logrus.Infof("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("server shutdown failed: %v", err)
	}

	logrus.Info("server stopped cleanly")
}

// sweepDrafts drops drafts abandoned for longer than draftIdleTTL.
func sweepDrafts(ctx context.Context, store *repositories.DraftStore) {
	t := time.NewTicker(draftSweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := store.Sweep(now.Add(-draftIdleTTL)); n > 0 {
				utils.LogEvent("", "draft", "sweep", fmt.Sprintf("removed %d idle drafts", n))
			}
		}
	}
}
