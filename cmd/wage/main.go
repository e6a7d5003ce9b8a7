package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"piece-wage/internal/config"
	"piece-wage/internal/service/aggregate"
	"piece-wage/internal/service/eligibility"
	generate_excel "piece-wage/internal/service/generate-excel"
	"piece-wage/internal/service/report"
	"piece-wage/internal/service/wagelog"
	"piece-wage/internal/storage/mysql"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env, cfg.ErrorLogPath)

	storage, err := mysql.New(*cfg)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	defaultSort, err := aggregate.ParseSortPolicy(cfg.Report.DefaultSort, "", aggregate.DefaultRawSort)
	if err != nil {
		log.Error("invalid report.default_sort", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var opts []report.Option
	if cfg.Report.TotalsRow {
		opts = append(opts, report.WithTotalsRow())
	}
	assembler := report.NewAssembler(report.NamingFor(cfg.Report.Naming), opts...)

	svc := services{
		eligibility: eligibility.NewService(log, storage),
		wages:       wagelog.NewService(log, storage),
		defaultSort: defaultSort,
	}
	svc.excel = generate_excel.NewGenerateService(log, svc.wages, assembler, defaultSort)

	log.Info("server started", slog.String("address", cfg.Address), slog.String("env", cfg.Env))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, storage, svc),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.ExportTimeout + cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("failed to start server", slog.String("error", err.Error()))
	}

	log.Error("server stopped")
}

// dualHandler writes every record to the core handler and copies errors to
// the error log.
type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		err = h.coreHandler.Handle(ctx, r)
		if err != nil {
			return err
		}
	}

	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		// write failures on the error file are ignored
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func setupLogger(env, errorLogPath string) *slog.Logger {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	var coreHandler slog.Handler
	switch env {
	case envDev:
		coreHandler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	case envLocal, envProd:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		coreHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	errorFile, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		slog.Warn("cannot open error log file", slog.String("path", errorLogPath), slog.String("error", err.Error()))
		return slog.New(coreHandler)
	}

	errorHandler := slog.NewTextHandler(errorFile, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	return slog.New(&dualHandler{
		coreHandler:  coreHandler,
		errorHandler: errorHandler,
	})
}
