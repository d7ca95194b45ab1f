package main

import (
	"context"

	"crm-be/internal/config"
	"crm-be/internal/logger"
	"crm-be/internal/product"
	"crm-be/internal/worker"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadWorkerConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	// The restock job hits an admin-only mutation; WORKER_TOKEN must carry
	// an admin JWT for it to succeed.
	client := worker.NewClient(cfg.GraphQLURL, cfg.AuthToken)

	heartbeat := worker.NewHeartbeat(client)
	reminders := worker.NewReminders(client)
	report := worker.NewReport(client)
	restock := worker.NewRestock(client, product.DefaultRestockAmount)

	c := cron.New()

	mustAdd(c, "*/5 * * * *", func() { heartbeat.Run(context.Background()) })
	mustAdd(c, "0 8 * * *", func() { _, _ = reminders.Run(context.Background()) })
	mustAdd(c, "0 6 * * 1", func() { _, _ = report.Run(context.Background()) })
	mustAdd(c, "0 */12 * * *", func() { _ = restock.Run(context.Background()) })

	logger.L().Info("worker scheduler starting",
		zap.String("graphql_url", cfg.GraphQLURL),
	)

	heartbeat.Run(context.Background())

	c.Run()
}

func mustAdd(c *cron.Cron, spec string, job func()) {
	if _, err := c.AddFunc(spec, job); err != nil {
		logger.L().Fatal("invalid cron spec", zap.String("spec", spec), zap.Error(err))
	}
}
