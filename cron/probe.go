package cron

import (
	"context"
	"time"

	"fixdesk/services/conversation"
	"fixdesk/services/ticket"
	"fixdesk/utils"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartMaintenanceJobs runs the periodic background jobs: the upstream
// health probe every minute and, when the in-memory session store is in
// use, an expired-session sweep. The returned cron can be stopped on
// shutdown.
func StartMaintenanceJobs(gw ticket.Gateway, redisClients []*redis.Client, memStore *conversation.MemorySessionStore) *cron.Cron {
	logger := utils.GetLogger()
	c := cron.New()

	_, err := c.AddFunc("@every 1m", func() {
		probe(gw, redisClients)
	})
	if err != nil {
		logger.Error("failed to schedule health probe", zap.Error(err))
	}

	if memStore != nil {
		_, err := c.AddFunc("@every 5m", func() {
			if removed := memStore.Sweep(); removed > 0 {
				logger.Debug("swept expired chat sessions", zap.Int("removed", removed))
			}
		})
		if err != nil {
			logger.Error("failed to schedule session sweep", zap.Error(err))
		}
	}

	c.Start()
	// Take an immediate snapshot so /health is meaningful right away.
	go probe(gw, redisClients)
	return c
}

func probe(gw ticket.Gateway, redisClients []*redis.Client) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := utils.HealthStatus{CheckedAt: time.Now()}

	if err := gw.Ping(ctx); err != nil {
		logger.Warn("ticket API health probe failed", zap.Error(err))
		status.TicketAPI = false
	} else {
		status.TicketAPI = true
	}

	for _, client := range redisClients {
		status.Redis = append(status.Redis, client.Ping(ctx).Err() == nil)
	}

	utils.SetHealthStatus(status)
}
