// Package app wires the stores, the reconciliation engines and the task
// dispatcher, and runs the sync passes.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/device-management-toolkit/redfish-sync/config"
	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/internal/repository/sqldb"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/configmap"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/etag"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/feature"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/platformconfig"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/reconcile"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/schemas"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/secureboot"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/task"
	"github.com/device-management-toolkit/redfish-sync/pkg/db"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
	"github.com/device-management-toolkit/redfish-sync/pkg/redfishclient"
	"github.com/device-management-toolkit/redfish-sync/pkg/secrets/vault"
)

var Version = "DEVELOPMENT"

// Report is the outcome of one pass.
type Report struct {
	RunID          string
	Features       []*feature.Summary
	Tasks          *task.Summary
	RebootRequired bool
}

// App -.
type App struct {
	cfg      *config.Config
	log      logger.Interface
	database *db.SQL

	etags      *etag.Store
	cmap       *configmap.Store
	local      *platformconfig.Store
	drivers    []*feature.Driver
	dispatcher *task.Dispatcher

	mu       sync.Mutex
	lastPass time.Time
	lastErr  error
}

// New opens the database, resolves the BMC credentials and builds one
// feature driver per configured schema.
func New(ctx context.Context, cfg *config.Config, log logger.Interface) (*App, error) {
	database, err := db.New(cfg.DB.URL, sql.Open, db.MaxPoolSize(cfg.PoolMax))
	if err != nil {
		return nil, fmt.Errorf("app - New - db.New: %w", err)
	}

	a := &App{cfg: cfg, log: log, database: database}

	if err = a.wire(ctx); err != nil {
		database.Close()

		return nil, err
	}

	return a, nil
}

func (a *App) wire(ctx context.Context) error {
	password, err := bmcPassword(ctx, a.cfg, a.log)
	if err != nil {
		return err
	}

	client := redfishclient.New(a.cfg.BMC.URL, a.log,
		redfishclient.WithBasicAuth(a.cfg.Username, password),
		redfishclient.WithInsecureSkipVerify(a.cfg.InsecureSkipVerify))

	a.etags = etag.New(sqldb.NewETagRepo(a.database), a.log)
	a.cmap = configmap.New(sqldb.NewConfigLangMapRepo(a.database), a.log)
	a.local = platformconfig.New(sqldb.NewPlatformConfigRepo(a.database), a.log)

	for _, f := range a.cfg.Features {
		schema, err := schemas.ByName(f.Schema)
		if err != nil {
			return fmt.Errorf("app - wire - feature %s: %w", f.URI, err)
		}

		engine, err := reconcile.New(schema, client, a.etags, a.cmap, a.local, a.log)
		if err != nil {
			return fmt.Errorf("app - wire - feature %s: %w", f.URI, err)
		}

		a.drivers = append(a.drivers, feature.New(engine, client, f.URI, a.log))
	}

	registry := task.NewRegistry()
	a.dispatcher = task.NewDispatcher(client, registry, a.log, task.WithExpand(a.cfg.ExpandTasks))

	if a.cfg.SecureBoot.Enabled {
		handler := secureboot.New(sqldb.NewSecureBootRepo(a.database), a.dispatcher, a.log)
		if err = registry.Register(a.cfg.ListenURI, true, handler); err != nil {
			return fmt.Errorf("app - wire - secure boot: %w", err)
		}
	}

	return nil
}

// bmcPassword prefers the password held in Vault when a secret store is configured.
func bmcPassword(ctx context.Context, cfg *config.Config, log logger.Interface) (string, error) {
	if cfg.Secrets.Address == "" || cfg.Secrets.Token == "" {
		return cfg.BMC.Password, nil
	}

	client, err := vault.NewClient(&cfg.Secrets)
	if err != nil {
		return "", fmt.Errorf("app - bmcPassword: %w", err)
	}

	password, err := client.GetKeyValue(ctx, cfg.CredentialKey)
	if err != nil {
		return "", fmt.Errorf("app - bmcPassword: %w", err)
	}

	log.Info("app - bmcPassword - BMC credential read from vault key %s", cfg.CredentialKey)

	return password, nil
}

// Close drops tracked tasks and closes the database.
func (a *App) Close() {
	a.dispatcher.Close()
	a.database.Close()
}

// Import stores seed values in the local configuration store.
func (a *App) Import(ctx context.Context, items []entity.ConfigItem) error {
	return a.local.Import(ctx, items)
}

// Sync runs every feature driver, then flushes the ETag store and the
// configure language map. A failing driver does not stop the others.
func (a *App) Sync(ctx context.Context, report *Report) error {
	var result *multierror.Error

	for _, d := range a.drivers {
		summary, err := d.Run(ctx)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("feature %s: %w", d.Name(), err))
		}

		if summary == nil {
			continue
		}

		report.Features = append(report.Features, summary)
		report.RebootRequired = report.RebootRequired || summary.RebootRequired

		if len(summary.Unimplemented) > 0 {
			a.log.Warn("app - Sync - %s: unimplemented properties skipped: %v", d.Name(), summary.Unimplemented)
		}
	}

	if err := a.etags.Flush(ctx); err != nil {
		result = multierror.Append(result, err)
	}

	if err := a.cmap.Flush(ctx); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// Dispatch polls the task collection once.
func (a *App) Dispatch(ctx context.Context, report *Report) error {
	summary, err := a.dispatcher.Dispatch(ctx, a.cfg.TaskCollectionURI)
	report.Tasks = summary

	return err
}

// Pass runs Sync and then Dispatch.
func (a *App) Pass(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	start := time.Now()

	a.log.Info("app - Pass - %s started", report.RunID)

	var result *multierror.Error

	if err := a.Sync(ctx, report); err != nil {
		result = multierror.Append(result, err)
	}

	if err := a.Dispatch(ctx, report); err != nil {
		result = multierror.Append(result, fmt.Errorf("tasks: %w", err))
	}

	err := result.ErrorOrNil()
	a.finish(report, start, err)

	return report, err
}

// DispatchOnly runs the task dispatcher without syncing features.
func (a *App) DispatchOnly(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	start := time.Now()

	err := a.Dispatch(ctx, report)
	a.finish(report, start, err)

	return report, err
}

func (a *App) finish(report *Report, start time.Time, err error) {
	a.mu.Lock()
	a.lastPass = time.Now()
	a.lastErr = err
	a.mu.Unlock()

	recordPass(report, start, err)

	if report.RebootRequired {
		a.log.Warn("app - Pass - %s: local configuration changed, reboot required", report.RunID)
	}

	if err != nil {
		a.log.Error("app - Pass - %s failed after %s: %v", report.RunID, time.Since(start), err)

		return
	}

	a.log.Info("app - Pass - %s finished in %s", report.RunID, time.Since(start))
}

// Run performs a pass every sync interval until ctx is cancelled. Pass
// failures are logged and retried at the next tick.
func (a *App) Run(ctx context.Context) error {
	var status *statusServer

	if a.cfg.Status.Enabled {
		status = newStatusServer(a.cfg, a.log, a.health)
		defer status.shutdown(a.log)
	}

	ticker := time.NewTicker(a.cfg.Interval)
	defer ticker.Stop()

	for {
		_, _ = a.Pass(ctx)

		select {
		case <-ctx.Done():
			a.log.Info("app - Run - stopping: %v", ctx.Err())

			return nil
		case err := <-status.notify():
			return fmt.Errorf("app - Run - status server: %w", err)
		case <-ticker.C:
		}
	}
}

func (a *App) health() healthStatus {
	a.mu.Lock()
	defer a.mu.Unlock()

	h := healthStatus{Version: Version, Status: "ok"}

	if !a.lastPass.IsZero() {
		h.LastPass = a.lastPass.UTC().Format(time.RFC3339)
	}

	if a.lastErr != nil {
		h.Status = "degraded"
		h.LastError = a.lastErr.Error()
	}

	return h
}
