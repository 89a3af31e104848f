// Package app assembles the entry store, its side channels and the HTTP
// handler from configuration. Both the server and the cloud function use it.
package app

import (
	"context"
	"fmt"
	"io/fs"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Aadithya-J/time_management/internal/cache"
	"github.com/Aadithya-J/time_management/internal/config"
	"github.com/Aadithya-J/time_management/internal/db"
	"github.com/Aadithya-J/time_management/internal/events"
	"github.com/Aadithya-J/time_management/internal/handler"
	"github.com/Aadithya-J/time_management/internal/kafka"
	"github.com/Aadithya-J/time_management/internal/rabbitmq"
	"github.com/Aadithya-J/time_management/internal/repository"
	"github.com/Aadithya-J/time_management/internal/service"
	"github.com/Aadithya-J/time_management/web"
)

type App struct {
	Router    *gin.Engine
	db        *gorm.DB
	publisher events.Publisher
	redis     *redis.Client
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	gdb, err := db.Connect(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := db.Migrate(gdb, cfg.TableName); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	a := &App{db: gdb}

	var listCache cache.ListCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		a.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := a.redis.Ping(ctx).Err(); err != nil {
			log.Printf("redis unreachable at %s, list cache disabled: %v", cfg.RedisAddr, err)
			a.redis.Close()
			a.redis = nil
		} else {
			listCache = cache.NewRedisListCache(a.redis, cfg.TableName, cfg.CacheTTL)
		}
	}

	a.publisher, err = newPublisher(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	svc := service.New(repository.NewTimeEntryRepository(gdb, cfg.TableName), listCache, a.publisher)

	opts := handler.Options{APIEndpoint: cfg.APIEndpoint, Stage: cfg.Stage}
	if cfg.ServeFrontend {
		assets, err := fs.Sub(web.Assets, "static")
		if err != nil {
			return nil, fmt.Errorf("load frontend assets: %w", err)
		}
		opts.Frontend = assets
	}
	a.Router = handler.NewRouter(handler.New(svc, opts))
	return a, nil
}

func newPublisher(cfg config.Config) (events.Publisher, error) {
	switch cfg.EventsBackend {
	case "", "none":
		return events.Noop{}, nil
	case "rabbitmq":
		p, err := rabbitmq.NewProducer(cfg.RabbitMQURL)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "kafka":
		if err := kafka.EnsureTopicExists(cfg.KafkaBroker, cfg.KafkaTopic); err != nil {
			log.Printf("kafka topic check failed: %v", err)
		}
		return kafka.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic), nil
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.EventsBackend)
	}
}

func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			log.Printf("close event publisher: %v", err)
		}
	}
	if a.redis != nil {
		a.redis.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}
