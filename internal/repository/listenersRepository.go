package repository

import (
	"context"
	"sort"
	"sync"
)

// ListenersRepository one goroutine per account consuming price ticks,
// ticks of one account are handled strictly one after another
type ListenersRepository struct {
	mu        sync.RWMutex
	wg        sync.WaitGroup
	closed    bool
	listeners map[string]chan float64
}

// NewListenersRepository constructor
func NewListenersRepository() *ListenersRepository {
	return &ListenersRepository{listeners: make(map[string]chan float64)}
}

// Register starts a listener for account if it has none, listener stops with ctx, Remove or Close.
// handle gets a context that outlives ctx so an evaluation in flight completes.
func (l *ListenersRepository) Register(ctx context.Context, account string,
	handle func(ctx context.Context, account string, price float64),
) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	if _, ok := l.listeners[account]; ok {
		return false
	}
	channel := make(chan float64, 1)
	l.listeners[account] = channel
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		listener(ctx, channel, account, handle)
	}()
	return true
}

// Remove stops listener of account, tick in progress is finished first
func (l *ListenersRepository) Remove(account string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	channel, ok := l.listeners[account]
	if !ok {
		return false
	}
	close(channel)
	delete(l.listeners, account)
	return true
}

// Send hands price to listener of account without blocking,
// a tick still waiting for a busy listener is replaced by the newer one
func (l *ListenersRepository) Send(account string, price float64) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	channel, ok := l.listeners[account]
	if !ok {
		return false
	}
	for {
		select {
		case channel <- price:
			return true
		default:
		}
		select {
		case <-channel:
		default:
		}
	}
}

// Accounts accounts with a running listener, sorted
func (l *ListenersRepository) Accounts() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	accounts := make([]string, 0, len(l.listeners))
	for account := range l.listeners {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts
}

// Close stops all listeners and waits for them
func (l *ListenersRepository) Close() {
	l.mu.Lock()
	l.closed = true
	for account, channel := range l.listeners {
		close(channel)
		delete(l.listeners, account)
	}
	l.mu.Unlock()
	l.wg.Wait()
}

func listener(ctx context.Context, cin chan float64, account string,
	handle func(ctx context.Context, account string, price float64),
) {
	handleCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case price, ok := <-cin:
			if !ok {
				return
			}
			handle(handleCtx, account, price)
		}
	}
}
