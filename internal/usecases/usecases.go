package usecases

import (
	"sync"

	"cardsim/internal/repositories"
	"cardsim/internal/utils"
)

type UseCases struct {
	repos       *repositories.Repositories
	utils       *utils.Utils
	cardsMU     sync.Mutex
	instancesMU sync.Mutex
}

func New(repos *repositories.Repositories) *UseCases {
	return &UseCases{
		repos: repos,
		utils: utils.New(),
	}
}
