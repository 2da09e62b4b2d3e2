package main

import (
	"context"
	"os"
	"strings"
	"time"

	"cardsim/internal/config"
	handlers "cardsim/internal/handlers/http"
	"cardsim/internal/logger"
	"cardsim/internal/repositories"
	"cardsim/internal/usecases"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

func main() {
	color.NoColor = false
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("couldn't load config")
	}
	gin.SetMode(cfg.GinMode)

	repos := repositories.New()

	// se tiver redis configurado, o lookup passa pelo cache
	if cfg.RedisEnabled() {
		rdb := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: cfg.RedisAddrs})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Log.WithError(err).Fatal("couldn't reach redis")
		}

		repos.UseRedisCache(rdb, cfg.RedisTTL)
		color.Green("Definition cache on redis %s", strings.Join(cfg.RedisAddrs, ","))
	}

	useCases := usecases.New(repos)

	n, err := useCases.LoadDefinitionsFromFile(cfg.CardsFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("couldn't load card definitions")
	}
	color.Green("Loaded %d card definitions from %s", n, cfg.CardsFile)

	h := handlers.New(useCases)

	color.Yellow("API listening on :%d", cfg.Port)
	if err := h.Listen(cfg.Port); err != nil {
		logger.Log.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
