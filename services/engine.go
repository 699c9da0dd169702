package services

import (
	"context"
	"log/slog"

	"swipe-lab/contract"
	"swipe-lab/domain"
	"swipe-lab/observability"
)

// Dependencies are the stores and sinks an Engine is assembled from.
type Dependencies struct {
	Channels        contract.IChannelManager
	Profiles        contract.IProfileStore
	Photos          contract.IPhotoStore
	Seen            contract.ISeenSet
	Ledger          contract.ISwipeLedger
	Sink            contract.INotificationSink
	Locker          contract.IPairLocker
	Moderator       contract.IModerator
	Metrics         *observability.Metrics
	MaxScanAttempts int
}

// Engine is the entry point used by the front ends: one method per user action.
type Engine struct {
	Fanout   *FanoutService
	Feed     *FeedService
	Swipes   *SwipeService
	Profiles *ProfileService
	channels contract.IChannelManager
}

func NewEngine(deps Dependencies, log *slog.Logger) *Engine {
	fanout := NewFanoutService(deps.Channels, deps.Metrics, log.With("component", "fanout"))
	return &Engine{
		Fanout: fanout,
		Feed: NewFeedService(deps.Channels, deps.Profiles, deps.Photos, deps.Seen,
			deps.Metrics, log.With("component", "feed"), deps.MaxScanAttempts),
		Swipes: NewSwipeService(deps.Profiles, deps.Ledger, deps.Seen, fanout, deps.Sink,
			deps.Locker, deps.Metrics, log.With("component", "swipe")),
		Profiles: NewProfileService(deps.Profiles, deps.Photos, deps.Moderator, fanout,
			log.With("component", "profile")),
		channels: deps.Channels,
	}
}

func (e *Engine) SaveProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return e.Profiles.Save(ctx, p)
}

func (e *Engine) Next(ctx context.Context, viewerID string, filter domain.GenderFilter, viewerCity string) (*domain.Card, error) {
	return e.Feed.Next(ctx, viewerID, filter, viewerCity)
}

func (e *Engine) Swipe(ctx context.Context, fromID, toID string, liked bool) (domain.MatchOutcome, error) {
	return e.Swipes.Swipe(ctx, fromID, toID, liked)
}

func (e *Engine) Reset(ctx context.Context, viewerID string) (int, error) {
	return e.Feed.Reset(ctx, viewerID)
}

// Depths reports the ready messages of every shared channel.
func (e *Engine) Depths(ctx context.Context) (map[string]int, error) {
	out := make(map[string]int)
	for _, ch := range e.channels.SharedChannels() {
		n, err := ch.Depth(ctx)
		if err != nil {
			return nil, err
		}
		out[ch.Name()] = n
	}
	return out, nil
}
