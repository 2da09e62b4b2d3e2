package instances

import (
	"errors"
	"sync"

	"cardsim/internal/game"

	"github.com/google/uuid"
)

var ErrInstanceNotFound = errors.New("instance not found")

// Registro das instâncias vivas, por id.
// O mutex protege só o mapa, a carta em si não tem lock
type Instances struct {
	mu        sync.RWMutex
	instances map[uuid.UUID]*game.Card
}

func New() *Instances {
	return &Instances{instances: make(map[uuid.UUID]*game.Card)}
}

// Registra a carta com id novo
func (i *Instances) Add(card *game.Card) uuid.UUID {
	uid := uuid.New()

	i.mu.Lock()
	i.instances[uid] = card
	i.mu.Unlock()

	return uid
}

// Troca a carta guardada no uid
func (i *Instances) Replace(uid uuid.UUID, card *game.Card) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.instances[uid]; !ok {
		return ErrInstanceNotFound
	}
	i.instances[uid] = card
	return nil
}

func (i *Instances) Get(uid uuid.UUID) (*game.Card, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	card, ok := i.instances[uid]
	if !ok {
		return nil, ErrInstanceNotFound
	}
	return card, nil
}

func (i *Instances) Remove(uid uuid.UUID) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.instances[uid]; !ok {
		return ErrInstanceNotFound
	}
	delete(i.instances, uid)
	return nil
}

func (i *Instances) Length() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.instances)
}
