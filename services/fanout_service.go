package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"swipe-lab/contract"
	"swipe-lab/domain"
	"swipe-lab/infrastructure/codec"
	"swipe-lab/observability"

	"github.com/samber/lo"
)

// FanoutService puts profile snapshots on the shared channels and in private inboxes.
type FanoutService struct {
	channels contract.IChannelManager
	metrics  *observability.Metrics
	log      *slog.Logger
	now      func() time.Time
}

func NewFanoutService(channels contract.IChannelManager, metrics *observability.Metrics, log *slog.Logger) *FanoutService {
	return &FanoutService{channels: channels, metrics: metrics, log: log, now: time.Now}
}

// Publish replaces every not yet consumed copy of the owner's profile with the new snapshot.
// The channel of the owner's gender and the catch-all channel receive it, the other gender
// channel is only cleaned, in case the gender changed since the last publish.
func (f *FanoutService) Publish(ctx context.Context, p domain.Profile) error {
	body, err := codec.EncodeMessage(domain.NewDistributionMessage(p, f.now()))
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", p.ID, err)
	}

	owned := ownedBy(p.ID)
	targets := domain.PublishTargets(p.Gender)
	for _, ch := range f.channels.SharedChannels() {
		var removed int
		if lo.Contains(targets, ch.Name()) {
			removed, err = ch.Replace(ctx, owned, body)
		} else {
			removed, err = ch.Retract(ctx, owned)
		}
		if err != nil {
			return fmt.Errorf("failed to publish profile %s on %s: %w", p.ID, ch.Name(), err)
		}
		f.metrics.Retracted.Add(float64(removed))
	}

	f.metrics.Published.Inc()
	f.log.Info("Profile published", "user_id", p.ID, "version", p.Version, "channels", targets)
	return nil
}

// Route drops the profile in the private inbox of target. An older copy of the
// same owner waiting there is replaced.
func (f *FanoutService) Route(ctx context.Context, targetUserID string, p domain.Profile) error {
	body, err := codec.EncodeMessage(domain.NewDistributionMessage(p, f.now()))
	if err != nil {
		return fmt.Errorf("failed to encode profile %s: %w", p.ID, err)
	}
	if _, err := f.channels.Inbox(targetUserID).Replace(ctx, ownedBy(p.ID), body); err != nil {
		return fmt.Errorf("failed to route profile %s to %s: %w", p.ID, targetUserID, err)
	}
	f.metrics.InboxRouted.Inc()
	f.log.Debug("Profile routed", "user_id", p.ID, "target", targetUserID)
	return nil
}

func ownedBy(userID string) func(body []byte) bool {
	return func(body []byte) bool {
		return codec.OwnerOf(body) == userID
	}
}
