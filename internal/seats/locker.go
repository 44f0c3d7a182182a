package seats

import (
	"context"
	"errors"
	"sync"
	"time"

	"saunie/internal/shared/apperrors"

	"github.com/google/uuid"
)

// Locker serializes book, cancel and capacity changes on a single trip.
// Lock blocks until the trip is held or ctx ends; unlock must be called once.
type Locker interface {
	Lock(ctx context.Context, tripID uuid.UUID) (unlock func(), err error)
}

type tripSlot struct {
	sem  chan struct{}
	refs int
}

// LocalLocker is an in-process keyed lock. Slots are dropped once no caller
// holds or waits on them, so idle trips cost nothing.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*tripSlot
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[uuid.UUID]*tripSlot)}
}

func (l *LocalLocker) Lock(ctx context.Context, tripID uuid.UUID) (func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[tripID]
	if !ok {
		slot = &tripSlot{sem: make(chan struct{}, 1)}
		l.slots[tripID] = slot
	}
	slot.refs++
	l.mu.Unlock()

	select {
	case slot.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-slot.sem
				l.release(tripID, slot)
			})
		}, nil
	case <-ctx.Done():
		l.release(tripID, slot)
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) release(tripID uuid.UUID, slot *tripSlot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	slot.refs--
	if slot.refs == 0 {
		delete(l.slots, tripID)
	}
}

// size reports how many trips currently have a slot
func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

// ChainLocker takes every locker in order and releases in reverse
type ChainLocker []Locker

func (c ChainLocker) Lock(ctx context.Context, tripID uuid.UUID) (func(), error) {
	unlocks := make([]func(), 0, len(c))
	releaseAll := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}

	for _, locker := range c {
		unlock, err := locker.Lock(ctx, tripID)
		if err != nil {
			releaseAll()
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return releaseAll, nil
}

// acquireTrip waits at most wait for the trip lock. Running out of time is
// reported as a busy trip so the caller can retry against a fresh seat map.
func acquireTrip(ctx context.Context, locker Locker, tripID uuid.UUID, wait time.Duration) (func(), error) {
	lockCtx := ctx
	if wait > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, wait)
		defer cancel()
	}

	unlock, err := locker.Lock(lockCtx, tripID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, apperrors.New(apperrors.ErrTripBusy, "trip %s is busy, try again", tripID)
		}
		return nil, err
	}
	return unlock, nil
}
