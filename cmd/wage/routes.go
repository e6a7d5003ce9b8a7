package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	getelig "piece-wage/http-server/eligibility/get"
	genexcel "piece-wage/http-server/generate-report/generate-excel"
	getspec "piece-wage/http-server/spec-models/get"
	"piece-wage/http-server/wage-log/draft"
	getwage "piece-wage/http-server/wage-log/get"
	getworkers "piece-wage/http-server/workers/get"
	"piece-wage/internal/config"
	"piece-wage/internal/service/aggregate"
	"piece-wage/internal/service/eligibility"
	generate_excel "piece-wage/internal/service/generate-excel"
	"piece-wage/internal/service/wagelog"
	"piece-wage/internal/storage/mysql"
)

type services struct {
	eligibility *eligibility.Service
	wages       *wagelog.Service
	excel       *generate_excel.GenerateExcelService
	defaultSort aggregate.SortPolicy
}

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, svc services) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	timeout := cfg.RequestTimeout

	// entry screen
	router.Get("/api/workers", getworkers.GetWorkers(log, timeout, svc.eligibility))
	router.Get("/api/eligibility/tree", getelig.GetTree(log, timeout, svc.eligibility))
	router.Get("/api/eligibility/price/{specModelID}", getelig.GetPrice(log, timeout, svc.eligibility))
	router.Get("/api/processes/{processID}/spec-models", getspec.GetByProcess(log, timeout, storage))
	router.Post("/api/wage-log/draft", draft.NewDraft(log, timeout, svc.eligibility))
	router.Get("/api/wage-log/day", getwage.GetDay(log, timeout, storage))

	// query screen
	router.Get("/api/wage-log/query", getwage.GetQuery(log, timeout, svc.defaultSort, svc.wages))
	router.Get("/api/wage-log/pivot", getwage.GetPivot(log, timeout, svc.wages))

	router.Get("/api/report/excel", genexcel.GenerateReportExcel(log, cfg.ExportTimeout, svc.excel))

	return router
}
