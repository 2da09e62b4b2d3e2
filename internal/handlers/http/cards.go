package handlers

import (
	"net/http"
	"strconv"

	"cardsim/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Endpoints do catálogo de cartas e consulta por nível
func (h Handlers) registerCardEndpoints(r *gin.Engine) {
	cardGroup := r.Group("/cards")
	{
		cardGroup.GET("", h.getAllCards)
		cardGroup.GET("/:id", h.getCard)
		cardGroup.GET("/:id/levels/:level", h.inspectCard)
	}
}

func (h Handlers) getAllCards(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCases.GetAllDefinitions())
}

func (h Handlers) getCard(c *gin.Context) {
	id, ok := cardIDParam(c)
	if !ok {
		return
	}

	def, err := h.useCases.GetDefinition(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, def)
}

// Mostra a carta limpa num nível, sem registrar instância
func (h Handlers) inspectCard(c *gin.Context) {
	id, ok := cardIDParam(c)
	if !ok {
		return
	}
	// nível vem 1-based na url
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		badRequest(c, "level must be a number")
		return
	}

	card, err := h.useCases.InspectCard(c.Request.Context(), id, level)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardView(uuid.Nil, card))
}

func cardIDParam(c *gin.Context) (models.CardID, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "card id must be a number")
		return 0, false
	}
	return models.CardID(id), true
}
