package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"cardsim/internal/game"
	"cardsim/internal/logger"
	"cardsim/internal/models"
	"cardsim/internal/repositories/cards"
	"cardsim/internal/repositories/instances"
	"cardsim/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	useCases *usecases.UseCases
}

func New(useCases *usecases.UseCases) *Handlers {
	return &Handlers{useCases: useCases}
}

// Monta o gin com todas as rotas
func (h Handlers) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	h.registerHealthEndpoints(r)
	h.registerCardEndpoints(r)
	h.registerInstanceEndpoints(r)

	return r
}

func (h Handlers) Listen(port int) error {
	logger.Log.WithField("port", port).Info("listening")

	return h.Router().Run(fmt.Sprintf(":%v", port))
}

// uma linha de log por requisição
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger.Log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": c.Writer.Status(),
		}).Debug("request served")
	}
}

// traduz erro de domínio pra status http
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	errType := "internal error"

	switch {
	case errors.Is(err, cards.ErrCardNotFound):
		status, errType = http.StatusNotFound, "card not found"
	case errors.Is(err, instances.ErrInstanceNotFound):
		status, errType = http.StatusNotFound, "instance not found"
	case errors.Is(err, game.ErrLevelOutOfRange):
		status, errType = http.StatusUnprocessableEntity, "level out of range"
	case errors.Is(err, usecases.ErrInvalidTeam):
		status, errType = http.StatusBadRequest, "invalid team"
	default:
		logger.Log.WithError(err).Error("request failed")
	}

	c.JSON(status, models.ErrorResponse{Type: errType, Message: err.Error()})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Type: "bad request", Message: message})
}
