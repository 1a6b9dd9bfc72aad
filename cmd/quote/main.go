package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dwarvesf/btc-sell-order/internal/quote"
	"github.com/dwarvesf/btc-sell-order/internal/utils/config"
	"github.com/dwarvesf/btc-sell-order/internal/utils/logger"
)

func main() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)
	defer logger.Sync()

	result, err := quote.New(appConfig, logger, prometheus.NewRegistry()).Run()
	if err != nil {
		logger.Fatal("[main][Run]", map[string]string{
			"error": err.Error(),
		})
	}

	logger.Info("[main][Run]", result.Fields())
}
