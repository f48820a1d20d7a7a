// Package lock provides the mutual-exclusion boundary that makes an availability check and the
// following ledger append one atomic step.
package lock

import (
	"fmt"
	"hotel/config"
	"hotel/shared/constant"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// Locker serializes booking attempts that touch the given rooms. Acquire blocks until every room is held
// and returns the function that releases them.
type Locker interface {
	Acquire(roomNumbers ...int) (release func())
	Mode() string
}

// New builds the Locker selected by BOOKING_LOCK_MODE.
func New(cfg *config.Config) (Locker, error) {
	mode := cfg.Booking.LockMode
	if mode == constant.Empty {
		mode = constant.LockModeGlobal
	}

	var locker Locker

	switch mode {
	case constant.LockModeNone:
		log.Warn().Msg("Booking lock disabled, concurrent requests may double-book a room")

		locker = noopLocker{}
	case constant.LockModeGlobal:
		locker = &globalLocker{}
	case constant.LockModeRoom:
		locker = &roomLocker{rooms: make(map[int]*sync.Mutex)}
	default:
		return nil, fmt.Errorf("unknown booking lock mode %q", mode)
	}

	log.Info().Str("mode", locker.Mode()).Msg("Booking lock initialized")

	return locker, nil
}

type noopLocker struct{}

func (noopLocker) Acquire(_ ...int) func() {
	return func() {}
}

func (noopLocker) Mode() string {
	return constant.LockModeNone
}

type globalLocker struct {
	mu sync.Mutex
}

func (g *globalLocker) Acquire(_ ...int) func() {
	g.mu.Lock()

	return g.mu.Unlock
}

func (g *globalLocker) Mode() string {
	return constant.LockModeGlobal
}

type roomLocker struct {
	guard sync.Mutex
	rooms map[int]*sync.Mutex
}

// Acquire takes the room mutexes in ascending order so two callers can never wait on each other.
func (r *roomLocker) Acquire(roomNumbers ...int) func() {
	ordered := slices.Clone(roomNumbers)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, number := range ordered {
		mu := r.mutex(number)
		mu.Lock()
		held = append(held, mu)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (r *roomLocker) Mode() string {
	return constant.LockModeRoom
}

func (r *roomLocker) mutex(roomNumber int) *sync.Mutex {
	r.guard.Lock()
	defer r.guard.Unlock()

	mu, ok := r.rooms[roomNumber]
	if !ok {
		mu = &sync.Mutex{}
		r.rooms[roomNumber] = mu
	}

	return mu
}
