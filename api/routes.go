package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/audit-sampler/internal/handlers/v1/analysis"
	"github.com/carson-networks/audit-sampler/internal/handlers/v1/entries"
	"github.com/carson-networks/audit-sampler/internal/handlers/v1/status"
	"github.com/carson-networks/audit-sampler/internal/logging"
	"github.com/carson-networks/audit-sampler/internal/operator"
	"github.com/carson-networks/audit-sampler/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("audit-sampler", "1.0.0"))
	entries.NewImportEntriesHandler(r.Operator).Register(humaAPI)
	entries.NewListEntriesHandler(r.Service.Ledger).Register(humaAPI)
	analysis.NewRunAnalysisHandler(r.Service.Analysis, r.Operator).Register(humaAPI)
	analysis.NewListRunsHandler(r.Service.Analysis).Register(humaAPI)
	analysis.NewGetRunHandler(r.Service.Analysis).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           withLogData(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// withLogData attaches a fresh LogData to every request so Huma handlers can
// record timings and counts on it.
func withLogData(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := logging.NewLogData(log)
		next.ServeHTTP(w, req.WithContext(logging.WithLogData(req.Context(), logData)))
	})
}
