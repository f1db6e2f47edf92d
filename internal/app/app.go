// Package app wires configuration, storage, and the HTTP server together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/credstack/credstack/internal/auth"
	"github.com/credstack/credstack/internal/config"
	"github.com/credstack/credstack/internal/db"
	"github.com/credstack/credstack/internal/generator"
	"github.com/credstack/credstack/internal/history"
	"github.com/credstack/credstack/internal/http/api"
	"github.com/credstack/credstack/internal/query"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// MemoryDSN selects the in-memory store instead of a database.
const MemoryDSN = "memory"

// shutdownGrace bounds how long in-flight requests may finish on shutdown.
const shutdownGrace = 10 * time.Second

// RunServer boots the credential service and blocks until ctx is cancelled
// or the listener fails.
func RunServer(ctx context.Context, cfg config.AppConfig, port int) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)

	svcCfg, errSvc := config.LoadServiceConfig(configPath)
	if errSvc != nil {
		return errSvc
	}
	jwtCfg, _ := config.LoadJWTConfig(configPath)

	deps, errBuild := buildDeps(configPath, svcCfg, jwtCfg)
	if errBuild != nil {
		return errBuild
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	api.RegisterRoutes(engine, deps)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("port", port).Info("credstack listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if errShutdown := srv.Shutdown(shutdownCtx); errShutdown != nil {
			return errShutdown
		}
		return nil
	case errServe := <-errCh:
		if errors.Is(errServe, http.ErrServerClosed) {
			return nil
		}
		return errServe
	}
}

// buildDeps resolves the storage backend and service collaborators from
// configuration.
func buildDeps(configPath string, svcCfg config.ServiceConfig, jwtCfg config.JWTConfig) (api.Deps, error) {
	gen := generator.New(nil)
	engine := query.NewEngine(config.ResolveLocation(svcCfg.Timezone))

	dsn, errDSN := config.LoadDatabaseDSN(configPath)
	if errDSN != nil || dsn == MemoryDSN {
		if errDSN != nil && !errors.Is(errDSN, config.ErrMissingDatabaseDSN) {
			return api.Deps{}, errDSN
		}
		if !svcCfg.SingleUser {
			return api.Deps{}, fmt.Errorf("memory storage requires `single-user: true` (multi-user mode needs a database dsn)")
		}
		log.Info("using in-memory record store")
		manager := history.NewManager(history.NewMemStore(), gen, true)
		return api.Deps{Manager: manager, Engine: engine, SingleUser: true}, nil
	}

	conn, errOpen := db.Open(dsn)
	if errOpen != nil {
		return api.Deps{}, errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return api.Deps{}, errMigrate
	}

	manager := history.NewManager(history.NewGormStore(conn), gen, svcCfg.SingleUser)
	deps := api.Deps{
		DB:         conn,
		Manager:    manager,
		Engine:     engine,
		SingleUser: svcCfg.SingleUser,
	}
	if !svcCfg.SingleUser {
		if jwtCfg.Secret == "" {
			return api.Deps{}, fmt.Errorf("multi-user mode requires a jwt secret (set `jwt.secret` or env %s)", config.EnvJWTSecret)
		}
		deps.AuthService = auth.NewService(conn, jwtCfg)
	}
	return deps, nil
}

// requestLogger emits one structured log line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).String(),
		}).Debug("request")
	}
}
