package handlers

import (
	"net/http"

	"cardsim/internal/game"
	"cardsim/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Endpoints das instâncias usadas nos ramos de simulação
func (h Handlers) registerInstanceEndpoints(r *gin.Engine) {
	instanceGroup := r.Group("/instances")
	{
		instanceGroup.POST("", h.createInstance)
		instanceGroup.GET("/:uid", h.getInstance)
		instanceGroup.DELETE("/:uid", h.deleteInstance)

		instanceGroup.POST("/:uid/fork", h.forkInstance)
		instanceGroup.POST("/:uid/reset", h.resetInstance)

		instanceGroup.DELETE("/:uid/abilities/:ability", h.removeAbility)
		instanceGroup.PUT("/:uid/buffs/:ability", h.setBuff)
		instanceGroup.PUT("/:uid/debuffs/:ability", h.setDebuff)
	}
}

func (h Handlers) createInstance(c *gin.Context) {
	var req models.CreateInstanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	uid, card, err := h.useCases.CreateInstance(c.Request.Context(), req.CardID, *req.Level, req.Team)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCardView(uid, card))
}

func (h Handlers) getInstance(c *gin.Context) {
	uid, ok := instanceIDParam(c)
	if !ok {
		return
	}

	card, err := h.useCases.GetInstance(uid)
	respondInstance(c, uid, card, err)
}

func (h Handlers) deleteInstance(c *gin.Context) {
	uid, ok := instanceIDParam(c)
	if !ok {
		return
	}

	if err := h.useCases.DeleteInstance(uid); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h Handlers) forkInstance(c *gin.Context) {
	uid, ok := instanceIDParam(c)
	if !ok {
		return
	}

	forkID, fork, err := h.useCases.ForkInstance(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCardView(forkID, fork))
}

func (h Handlers) resetInstance(c *gin.Context) {
	uid, ok := instanceIDParam(c)
	if !ok {
		return
	}

	card, err := h.useCases.ResetInstance(uid)
	respondInstance(c, uid, card, err)
}

func (h Handlers) removeAbility(c *gin.Context) {
	uid, ok := instanceIDParam(c)
	if !ok {
		return
	}

	card, err := h.useCases.RemoveInstanceAbility(uid, models.Ability(c.Param("ability")))
	respondInstance(c, uid, card, err)
}

func (h Handlers) setBuff(c *gin.Context) {
	h.setModifier(c, h.useCases.SetInstanceBuff)
}

func (h Handlers) setDebuff(c *gin.Context) {
	h.setModifier(c, h.useCases.SetInstanceDebuff)
}

type modifierSetter func(uid uuid.UUID, ability models.Ability, value int) (*game.Card, error)

func (h Handlers) setModifier(c *gin.Context, set modifierSetter) {
	uid, ok := instanceIDParam(c)
	if !ok {
		return
	}

	var req models.ModifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	card, err := set(uid, models.Ability(c.Param("ability")), req.Value)
	respondInstance(c, uid, card, err)
}

func respondInstance(c *gin.Context, uid uuid.UUID, card *game.Card, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardView(uid, card))
}

func instanceIDParam(c *gin.Context) (uuid.UUID, bool) {
	uid, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		badRequest(c, "instance id must be a uuid")
		return uuid.Nil, false
	}
	return uid, true
}
