package main

import (
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/audit-sampler/api"
	"github.com/carson-networks/audit-sampler/internal/config"
	"github.com/carson-networks/audit-sampler/internal/logging"
	"github.com/carson-networks/audit-sampler/internal/operator"
	"github.com/carson-networks/audit-sampler/internal/service"
	"github.com/carson-networks/audit-sampler/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("audit-sampler starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	numWorkers, err := strconv.Atoi(envConfig.OperatorWorkers)
	if err != nil {
		logrus.WithError(err).Fatal("config.OperatorWorkers")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	delegator := operator.NewOperatorDelegator(dbStorage, numWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
