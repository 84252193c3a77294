package watch

import (
	"context"
	"log"
	"time"
)

const (
	// DefaultDataInterval is how often the full list is re-fetched.
	DefaultDataInterval = 10 * time.Second
	// DefaultRenderInterval drives time-relative display only ("x min
	// ago" text, badge eligibility), not data refresh.
	DefaultRenderInterval = time.Second
)

// Poller keeps a Cache in sync with the server on a fixed interval and
// fires a render callback on a faster, independent tick. A failed fetch
// keeps the previous snapshot; the next interval retries on its own.
type Poller struct {
	Client *Client
	Cache  *Cache

	DataInterval   time.Duration
	RenderInterval time.Duration

	// OnRender is called on every render tick with the wall clock and
	// the current snapshot. May be nil.
	OnRender func(now time.Time, snap *Snapshot)
}

func NewPoller(client *Client, cache *Cache) *Poller {
	return &Poller{
		Client:         client,
		Cache:          cache,
		DataInterval:   DefaultDataInterval,
		RenderInterval: DefaultRenderInterval,
	}
}

// Run fetches once immediately, then polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.Refresh(ctx)
	p.render(time.Now())

	dataTicker := time.NewTicker(p.DataInterval)
	defer dataTicker.Stop()

	renderTicker := time.NewTicker(p.RenderInterval)
	defer renderTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-dataTicker.C:
			p.Refresh(ctx)
		case now := <-renderTicker.C:
			p.render(now)
		}
	}
}

// Refresh fetches the full list and swaps it into the cache. On failure
// the last snapshot stays in place, degrading to read-only.
func (p *Poller) Refresh(ctx context.Context) {
	alerts, err := p.Client.List(ctx)

	if err != nil {
		log.Printf("Failed to refresh alerts, keeping previous snapshot: %v", err)
		return
	}

	p.Cache.Replace(alerts, time.Now())
}

func (p *Poller) render(now time.Time) {
	if p.OnRender != nil {
		p.OnRender(now, p.Cache.Snapshot())
	}
}
