package usecases

import (
	"context"
	"errors"
	"fmt"

	"cardsim/internal/game"
	"cardsim/internal/logger"
	"cardsim/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidTeam = errors.New("invalid team number")

// Cria a carta e registra, devolve o id da instância
func (u *UseCases) CreateInstance(ctx context.Context, id models.CardID, level int, team models.TeamNumber) (uuid.UUID, *game.Card, error) {
	if !team.Valid() {
		return uuid.Nil, nil, fmt.Errorf("%w: %d", ErrInvalidTeam, team)
	}

	card, err := game.NewCardFromID(ctx, u.repos.Lookup, id, level)
	if err != nil {
		return uuid.Nil, nil, err
	}
	card.SetTeam(team)

	u.instancesMU.Lock()
	uid := u.repos.Instance.Add(card)
	created := snapshot(card)
	u.instancesMU.Unlock()

	logger.Log.WithFields(logrus.Fields{
		"instance": uid,
		"cardID":   id,
		"level":    level,
		"team":     team,
	}).Debug("card instance created")
	return uid, created, nil
}

// Devolve uma cópia, ninguém fora daqui segura a carta registrada
func (u *UseCases) GetInstance(uid uuid.UUID) (*game.Card, error) {
	u.instancesMU.Lock()
	defer u.instancesMU.Unlock()

	card, err := u.repos.Instance.Get(uid)
	if err != nil {
		return nil, err
	}
	return snapshot(card), nil
}

// Registra um clone com id novo. O fork sai sem time de jogo
func (u *UseCases) ForkInstance(uid uuid.UUID) (uuid.UUID, *game.Card, error) {
	u.instancesMU.Lock()
	defer u.instancesMU.Unlock()

	card, err := u.repos.Instance.Get(uid)
	if err != nil {
		return uuid.Nil, nil, err
	}

	fork := card.Clone()
	forkID := u.repos.Instance.Add(fork)
	logger.Log.WithFields(logrus.Fields{
		"instance": uid,
		"fork":     forkID,
	}).Debug("card instance forked")
	return forkID, fork.Clone(), nil
}

// Volta a carta pro estado de antes da batalha, mantendo o time
func (u *UseCases) ResetInstance(uid uuid.UUID) (*game.Card, error) {
	return u.mutateInstance(uid, func(card *game.Card) *game.Card {
		clean := card.CleanCard()
		clean.SetTeam(card.TeamNumber())
		clean.SetGameTeam(card.GameTeamID())
		return clean
	})
}

func (u *UseCases) RemoveInstanceAbility(uid uuid.UUID, ability models.Ability) (*game.Card, error) {
	return u.mutateInstance(uid, func(card *game.Card) *game.Card {
		card.RemoveAbility(ability)
		return card
	})
}

// valor <= 0 remove o buff
func (u *UseCases) SetInstanceBuff(uid uuid.UUID, ability models.Ability, value int) (*game.Card, error) {
	return u.mutateInstance(uid, func(card *game.Card) *game.Card {
		setModifier(card.Buffs(), ability, value)
		return card
	})
}

// valor <= 0 remove o debuff
func (u *UseCases) SetInstanceDebuff(uid uuid.UUID, ability models.Ability, value int) (*game.Card, error) {
	return u.mutateInstance(uid, func(card *game.Card) *game.Card {
		setModifier(card.Debuffs(), ability, value)
		return card
	})
}

func (u *UseCases) DeleteInstance(uid uuid.UUID) error {
	u.instancesMU.Lock()
	defer u.instancesMU.Unlock()

	if err := u.repos.Instance.Remove(uid); err != nil {
		return err
	}
	logger.Log.WithField("instance", uid).Debug("card instance deleted")
	return nil
}

func (u *UseCases) mutateInstance(uid uuid.UUID, mutate func(*game.Card) *game.Card) (*game.Card, error) {
	u.instancesMU.Lock()
	defer u.instancesMU.Unlock()

	card, err := u.repos.Instance.Get(uid)
	if err != nil {
		return nil, err
	}

	updated := mutate(card)
	if updated != card {
		if err := u.repos.Instance.Replace(uid, updated); err != nil {
			return nil, err
		}
	}

	return snapshot(updated), nil
}

// cópia da carta registrada, com o time de jogo junto
func snapshot(card *game.Card) *game.Card {
	cp := card.Clone()
	cp.SetGameTeam(card.GameTeamID())
	return cp
}

func setModifier(modifiers map[models.Ability]int, ability models.Ability, value int) {
	if value <= 0 {
		delete(modifiers, ability)
		return
	}
	modifiers[ability] = value
}
