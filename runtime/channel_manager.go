package runtime

import (
	"context"
	"log/slog"
	"sync"

	"swipe-lab/contract"
	"swipe-lab/domain"
)

// Channel binds a name to the transport and serializes the writers of that name.
// Pops do not take the lock: the transport already hands a message to one consumer only.
type Channel struct {
	mu        sync.Mutex
	name      string
	transport contract.ITransport
	log       *slog.Logger
}

func (c *Channel) Name() string { return c.name }

func (c *Channel) Push(ctx context.Context, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transport.Push(ctx, c.name, body)
}

func (c *Channel) Pop(ctx context.Context, after string) (*contract.Delivery, error) {
	return c.transport.Pop(ctx, c.name, after)
}

func (c *Channel) Ack(ctx context.Context, d *contract.Delivery) error {
	return c.transport.Ack(ctx, d)
}

func (c *Channel) Reject(ctx context.Context, d *contract.Delivery) error {
	return c.transport.Reject(ctx, d)
}

func (c *Channel) Requeue(ctx context.Context, d *contract.Delivery) error {
	return c.transport.Requeue(ctx, d)
}

// Replace retracts every ready message matching and pushes body, both under the
// channel lock, so two publishers of the same owner never leave two copies behind.
func (c *Channel) Replace(ctx context.Context, match func(body []byte) bool, body []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed, err := c.transport.Purge(ctx, c.name, match)
	if err != nil {
		return 0, err
	}
	if err := c.transport.Push(ctx, c.name, body); err != nil {
		return removed, err
	}
	if removed > 0 {
		c.log.Debug("Stale messages retracted", "channel", c.name, "count", removed)
	}
	return removed, nil
}

func (c *Channel) Retract(ctx context.Context, match func(body []byte) bool) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transport.Purge(ctx, c.name, match)
}

func (c *Channel) Depth(ctx context.Context) (int, error) {
	return c.transport.Depth(ctx, c.name)
}

// ChannelManager hands out the shared channels and the private inboxes.
// Inboxes are created lazily, the first time a user is addressed.
type ChannelManager struct {
	mu        sync.RWMutex
	transport contract.ITransport
	log       *slog.Logger
	channels  map[string]*Channel
}

func NewChannelManager(transport contract.ITransport, log *slog.Logger) *ChannelManager {
	m := &ChannelManager{
		transport: transport,
		log:       log,
		channels:  make(map[string]*Channel),
	}
	for _, name := range domain.SharedChannels() {
		m.channels[name] = m.newChannel(name)
	}
	return m
}

func (m *ChannelManager) Shared(filter domain.GenderFilter) contract.IChannel {
	return m.get(domain.SharedChannel(filter))
}

func (m *ChannelManager) Inbox(userID string) contract.IChannel {
	return m.get(domain.InboxChannel(userID))
}

func (m *ChannelManager) SharedChannels() []contract.IChannel {
	names := domain.SharedChannels()
	out := make([]contract.IChannel, 0, len(names))
	for _, name := range names {
		out = append(out, m.get(name))
	}
	return out
}

// ByName returns any channel, shared or private.
func (m *ChannelManager) ByName(name string) contract.IChannel {
	return m.get(name)
}

func (m *ChannelManager) get(name string) *Channel {
	m.mu.RLock()
	c, ok := m.channels[name]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok = m.channels[name]; ok {
		return c
	}
	c = m.newChannel(name)
	m.channels[name] = c
	return c
}

func (m *ChannelManager) newChannel(name string) *Channel {
	return &Channel{name: name, transport: m.transport, log: m.log}
}
