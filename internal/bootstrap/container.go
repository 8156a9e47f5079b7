package bootstrap

import (
	"context"
	"time"

	"lead-generator-be/internal/config"
	"lead-generator-be/internal/controller"
	"lead-generator-be/internal/handler"
	"lead-generator-be/internal/mapper"
	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/internal/repository/contract"
	"lead-generator-be/internal/repository/memory"
	"lead-generator-be/internal/repository/redisstore"
	"lead-generator-be/internal/service"
	"lead-generator-be/internal/websocket"
	"lead-generator-be/pkg/leads/dashboard"
	"lead-generator-be/pkg/leads/export"
	"lead-generator-be/pkg/leads/store"
	"lead-generator-be/pkg/leads/usage"
	pktNats "lead-generator-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 3 * time.Second

type Container struct {
	// Controllers
	LeadController     controller.ILeadController
	SessionController  controller.ISessionController
	ActivityController controller.IActivityController

	// Handlers
	DashboardHandler *handler.DashboardHandler

	// Services
	LeadService     service.ILeadService
	SessionService  service.ISessionService
	ConsumerService service.IConsumerService

	// Infrastructure
	Hub     *websocket.Hub
	Tracker *usage.Tracker
	Logger  logger.ILogger
}

func NewContainer(cfg *config.Config, snapshot *store.Snapshot, sysLogger logger.ILogger) *Container {
	// 1. Event Bus
	tracker := usage.NewTracker(sysLogger)
	publisherService, consumerService := newEventBus(cfg.App, tracker, sysLogger)

	// 2. Session storage
	sessionRepo, rdb := newSessionRepository(cfg.Session, sysLogger)
	hub := websocket.NewHub(rdb, sysLogger)

	// 3. Pipeline
	aggregator := dashboard.NewAggregator(sysLogger)
	exporter := export.NewExporter(snapshot.Columns(), cfg.Leads.DateLayout)
	leadMapper := mapper.NewLeadMapper(cfg.Leads.DateLayout)

	// 4. Services
	leadService := service.NewLeadService(
		snapshot,
		aggregator,
		exporter,
		leadMapper,
		publisherService,
		sysLogger,
		cfg.Leads.ExportFileName,
	)
	sessionService := service.NewSessionService(sessionRepo, leadService, hub, publisherService, sysLogger)

	return &Container{
		LeadController:     controller.NewLeadController(leadService),
		SessionController:  controller.NewSessionController(sessionService),
		ActivityController: controller.NewActivityController(tracker, leadService),
		DashboardHandler:   handler.NewDashboardHandler(sessionService, hub, sysLogger),

		LeadService:     leadService,
		SessionService:  sessionService,
		ConsumerService: consumerService,

		Hub:     hub,
		Tracker: tracker,
		Logger:  sysLogger,
	}
}

// newEventBus wires activity events through JetStream when configured and
// reachable, otherwise through the in-process watermill channel.
func newEventBus(cfg config.AppConfig, tracker *usage.Tracker, sysLogger logger.ILogger) (service.IPublisherService, service.IConsumerService) {
	if cfg.EventsBroker == "nats" {
		pub, pubErr := pktNats.NewPublisher(cfg.NatsURL)
		sub, subErr := pktNats.NewSubscriber(cfg.NatsURL)
		if pubErr == nil && subErr == nil {
			sysLogger.Info("BOOTSTRAP", "Using NATS event bus", map[string]interface{}{"url": cfg.NatsURL})
			return service.NewNatsPublisherService(pub, sysLogger), service.NewNatsConsumerService(sub, tracker, sysLogger)
		}
		if pub != nil {
			pub.Close()
		}
		if sub != nil {
			sub.Close()
		}
		sysLogger.Warn("BOOTSTRAP", "NATS unavailable, using in-process event bus", map[string]interface{}{
			"publisher_error":  errString(pubErr),
			"subscriber_error": errString(subErr),
		})
	}

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	return service.NewPublisherService(cfg.EventsTopic, pubSub, sysLogger),
		service.NewConsumerService(pubSub, cfg.EventsTopic, tracker, sysLogger)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// newSessionRepository picks the configured store. An unreachable redis falls
// back to the in-memory store so a single instance still serves.
func newSessionRepository(cfg config.SessionConfig, sysLogger logger.ILogger) (contract.SessionRepository, *redis.Client) {
	if cfg.Store != "redis" {
		return memory.NewSessionRepository(cfg.TTL, cfg.CleanupInterval), nil
	}

	rdb := redisstore.NewClient(cfg.RedisURL)
	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		sysLogger.Warn("BOOTSTRAP", "Redis unreachable, using in-memory sessions", map[string]interface{}{
			"error": err.Error(),
		})
		_ = rdb.Close()
		return memory.NewSessionRepository(cfg.TTL, cfg.CleanupInterval), nil
	}

	sysLogger.Info("BOOTSTRAP", "Using redis session store", nil)
	return redisstore.NewSessionRepository(rdb, cfg.TTL), rdb
}
