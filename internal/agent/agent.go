package agent

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"sync"
	"syscall"
	"time"

	"github.com/mwantia/fabric/pkg/container"

	"github.com/InfoRubix/filecase-tracking-management-system/internal/api"
	"github.com/InfoRubix/filecase-tracking-management-system/internal/archive"
	config "github.com/InfoRubix/filecase-tracking-management-system/internal/config/server"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/store"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/log"
)

type FileCaseAgent struct {
	mutex sync.RWMutex

	cfg    *config.BaseServerConfig
	sc     *container.ServiceContainer
	logger *log.LoggerServiceImpl
	log    log.LoggerService

	store  store.RecordStore
	server *api.Server
}

func NewAgent(cfg *config.BaseServerConfig) *FileCaseAgent {
	logger := log.NewLoggerService("filecase", cfg.Log)

	return &FileCaseAgent{
		cfg:    cfg,
		sc:     container.NewServiceContainer(),
		logger: logger,
		log:    logger,
	}
}

func (fca *FileCaseAgent) setupServices(ctx context.Context) error {
	errs := container.Errors{}

	fca.log.Debug("Registering 'LoggerService'...")
	errs.Add(container.Register[log.LoggerServiceImpl](fca.sc,
		container.With[log.LoggerService](),
		container.WithInstance(fca.log)))

	fca.log.Debug("Opening '%s' record store...", fca.cfg.Store.Type)
	s, err := OpenStore(ctx, fca.cfg.Store)
	if err != nil {
		errs.Add(err)
		return errs.Errors()
	}
	fca.store = s

	if err := s.Migrate(ctx); err != nil {
		errs.Add(fmt.Errorf("failed to migrate record store: %w", err))
		return errs.Errors()
	}

	fca.log.Debug("Registering 'RecordStore'...")
	errs.Add(registerStore(fca.sc, s))

	return errs.Errors()
}

// resolveStore looks the record store up in the service container.
func (fca *FileCaseAgent) resolveStore(ctx context.Context) (store.RecordStore, error) {
	ok, resolved := fca.sc.ResolveByType(ctx, reflect.TypeOf((*store.RecordStore)(nil)).Elem())
	if !ok {
		return nil, fmt.Errorf("no record store registered")
	}

	s, ok := resolved.(store.RecordStore)
	if !ok {
		return nil, fmt.Errorf("registered record store has unexpected type %T", resolved)
	}
	return s, nil
}

func (fca *FileCaseAgent) setupServer(ctx context.Context) error {
	s, err := fca.resolveStore(ctx)
	if err != nil {
		return err
	}

	location, err := time.LoadLocation(fca.cfg.Audit.TimeZone)
	if err != nil {
		return fmt.Errorf("failed to load audit time zone: %w", err)
	}

	svc := archive.NewService(archive.Options{
		Store:             s,
		Logger:            fca.log.Named("archive"),
		RackTTL:           config.Duration(fca.cfg.Cache.RackTTL, archive.DefaultRackTTL),
		InvalidateOnWrite: fca.cfg.Cache.InvalidateOnWrite,
		Location:          location,
	})

	if fca.cfg.Auth.AdminEmail == "" || fca.cfg.Auth.AdminPasswordHash == "" {
		fca.log.Warn("No admin credentials configured, every login will be rejected")
	}

	handler := api.NewHandler(svc,
		archive.Admin{
			Email:        fca.cfg.Auth.AdminEmail,
			PasswordHash: fca.cfg.Auth.AdminPasswordHash,
		},
		api.SessionConfig{
			Secure: fca.cfg.Auth.CookieSecure,
			MaxAge: config.Duration(fca.cfg.Auth.CookieMaxAge, 24*time.Hour),
		},
		fca.log.Named("api"))

	router := api.NewRouter(handler, api.RouterOptions{
		ActionEndpoint: fca.cfg.HTTP.ActionEndpoint,
		AccessLog:      fca.cfg.Log.AccessLog,
	})

	fca.server = api.NewServer(fca.cfg.HTTP, router, fca.log.Named("http"))
	return fca.server.Start()
}

func (fca *FileCaseAgent) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fca.mutex.Lock()

	if err := fca.setupServices(ctx); err != nil {
		fca.mutex.Unlock()
		return fca.shutdown(err)
	}

	if err := fca.setupServer(ctx); err != nil {
		fca.mutex.Unlock()
		return fca.shutdown(err)
	}

	fca.mutex.Unlock()
	fca.log.Info("Agent started with '%s' store", fca.cfg.Store.Type)

	var serveErr error
	select {
	case <-ctx.Done():
	case err, ok := <-fca.server.Errors():
		if ok {
			serveErr = fmt.Errorf("HTTP server failed: %w", err)
		}
	}

	return fca.shutdown(serveErr)
}

func (fca *FileCaseAgent) shutdown(serveErr error) error {
	fca.mutex.Lock()
	defer fca.mutex.Unlock()

	timeout := config.Duration(fca.cfg.ShutdownTimeout, 60*time.Second)
	shutdown, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	errs := container.Errors{}
	if serveErr != nil {
		errs.Add(serveErr)
	}

	if fca.server != nil {
		errs.Add(fca.server.Shutdown(shutdown))
	}
	if fca.store != nil {
		if err := fca.store.Close(); err != nil {
			errs.Add(fmt.Errorf("failed to close record store: %w", err))
		}
	}
	if err := fca.sc.Cleanup(shutdown); err != nil {
		errs.Add(fmt.Errorf("failed to complete service container cleanup: %w", err))
	}

	fca.log.Info("Agent stopped")
	errs.Add(fca.logger.Cleanup())
	return errs.Errors()
}
