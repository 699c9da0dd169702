package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"swipe-lab/contract"
	"swipe-lab/domain"
	"swipe-lab/domain/mimetypes"
	errs "swipe-lab/errors"
	"swipe-lab/infrastructure/codec"
	"swipe-lab/observability"
)

const (
	SourceInbox  = "inbox"
	SourceShared = "shared"
)

// FeedService serves each viewer the next profile they have not seen yet,
// private inbox first, then the shared channel of their filter.
type FeedService struct {
	channels        contract.IChannelManager
	profiles        contract.IProfileStore
	photos          contract.IPhotoStore
	seen            contract.ISeenSet
	metrics         *observability.Metrics
	log             *slog.Logger
	maxScanAttempts int
}

func NewFeedService(channels contract.IChannelManager, profiles contract.IProfileStore,
	photos contract.IPhotoStore, seen contract.ISeenSet, metrics *observability.Metrics,
	log *slog.Logger, maxScanAttempts int) *FeedService {
	return &FeedService{
		channels:        channels,
		profiles:        profiles,
		photos:          photos,
		seen:            seen,
		metrics:         metrics,
		log:             log,
		maxScanAttempts: max(maxScanAttempts, 1),
	}
}

// Next returns nil, nil when there is nothing left to show.
// An empty viewerCity disables the city filter.
func (f *FeedService) Next(ctx context.Context, viewerID string, filter domain.GenderFilter, viewerCity string) (*domain.Card, error) {
	if err := domain.ValidateUserID(viewerID); err != nil {
		return nil, err
	}
	if _, err := domain.ParseGenderFilter(string(filter)); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() { f.metrics.FeedLatency.Observe(time.Since(start).Seconds()) }()

	card, err := f.scan(ctx, f.channels.Inbox(viewerID), viewerID, "", SourceInbox)
	if err != nil || card != nil {
		return card, err
	}
	card, err = f.scan(ctx, f.channels.Shared(filter), viewerID, viewerCity, SourceShared)
	if err != nil {
		return nil, err
	}
	if card == nil {
		f.metrics.FeedEmpty.Inc()
	}
	return card, nil
}

// Reset forgets everything the viewer has seen.
func (f *FeedService) Reset(ctx context.Context, viewerID string) (int, error) {
	if err := domain.ValidateUserID(viewerID); err != nil {
		return 0, err
	}
	removed, err := f.seen.Reset(ctx, viewerID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset seen set of %s: %w", viewerID, err)
	}
	f.log.Info("Viewer reset", "viewer", viewerID, "removed", removed)
	return removed, nil
}

// scan pops until a message survives every filter and renders, the channel runs dry,
// or the attempt budget is spent.
func (f *FeedService) scan(ctx context.Context, ch contract.IChannel, viewerID, city, source string) (*domain.Card, error) {
	cursor := ""
	for attempt := 0; attempt < f.maxScanAttempts; attempt++ {
		d, err := ch.Pop(ctx, cursor)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, nil
		}

		msg, err := codec.DecodeMessage(d.Body)
		if err != nil {
			f.log.Error("Corrupted distribution message", "channel", ch.Name(), "tag", d.Tag, "error", err)
			f.discard(ctx, ch, d, observability.ReasonMalformed)
			continue
		}

		owner := msg.OwnerID()
		if owner == viewerID {
			// never shown to its owner, but still there for everybody else
			if err := ch.Requeue(ctx, d); err != nil {
				return nil, err
			}
			cursor = d.Tag
			continue
		}

		seen, err := f.seen.IsSeen(ctx, viewerID, owner)
		if err != nil {
			return nil, f.giveBack(ctx, ch, d, err)
		}
		if seen {
			f.discard(ctx, ch, d, observability.ReasonSeen)
			continue
		}
		if city != "" && !domain.SameCity(city, msg.Profile.City) {
			f.discard(ctx, ch, d, observability.ReasonCity)
			continue
		}

		card, err := f.render(ctx, viewerID, msg, source)
		switch {
		case errors.Is(err, errs.ErrSupersededMessage):
			f.discard(ctx, ch, d, observability.ReasonSuperseded)
			continue
		case errors.Is(err, errs.ErrRenderFailed):
			f.log.Warn("Profile could not be rendered", "owner", owner, "error", err)
			f.discard(ctx, ch, d, observability.ReasonRender)
			continue
		case err != nil:
			return nil, f.giveBack(ctx, ch, d, err)
		}

		if err := ch.Ack(ctx, d); err != nil {
			// seen is already written, recovery will hand the message to someone else
			f.log.Warn("Ack failed after render", "channel", ch.Name(), "tag", d.Tag, "error", err)
		}
		f.metrics.FeedServed.WithLabelValues(source).Inc()
		return card, nil
	}

	f.log.Warn("Scan budget exhausted", "channel", ch.Name(), "viewer", viewerID, "attempts", f.maxScanAttempts)
	return nil, nil
}

// render loads what the viewer will see, marks it seen, and leaves the ack to the caller.
func (f *FeedService) render(ctx context.Context, viewerID string, msg domain.DistributionMessage, source string) (*domain.Card, error) {
	owner := msg.OwnerID()
	current, err := f.profiles.GetProfile(ctx, owner)
	if errors.Is(err, errs.ErrProfileNotFound) {
		return nil, fmt.Errorf("%w: %v", errs.ErrRenderFailed, err)
	}
	if err != nil {
		return nil, err
	}
	if msg.SupersededBy(current) {
		return nil, fmt.Errorf("%w: %s v%d < v%d", errs.ErrSupersededMessage, owner, msg.Profile.Version, current.Version)
	}

	photo, err := f.photos.Fetch(ctx, msg.Profile.PhotoRef)
	if err != nil {
		return nil, fmt.Errorf("%w: photo %s: %v", errs.ErrRenderFailed, msg.Profile.PhotoRef, err)
	}
	mime, _, err := mimetypes.DetectPhoto(photo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrRenderFailed, err)
	}

	if err := f.seen.MarkSeen(ctx, viewerID, owner); err != nil {
		return nil, err
	}
	return &domain.Card{
		Profile:  msg.Profile,
		Photo:    photo,
		MimeType: string(mime),
		Caption:  msg.Profile.Caption(),
		Source:   source,
	}, nil
}

func (f *FeedService) discard(ctx context.Context, ch contract.IChannel, d *contract.Delivery, reason string) {
	f.metrics.FeedDiscarded.WithLabelValues(reason).Inc()
	if err := ch.Reject(ctx, d); err != nil {
		f.log.Warn("Reject failed", "channel", ch.Name(), "tag", d.Tag, "reason", reason, "error", err)
	}
}

// giveBack requeues a delivery that could not be judged because of a transient failure.
func (f *FeedService) giveBack(ctx context.Context, ch contract.IChannel, d *contract.Delivery, cause error) error {
	if err := ch.Requeue(ctx, d); err != nil {
		f.log.Error("Requeue failed, left for in-flight recovery", "channel", ch.Name(), "tag", d.Tag, "error", err)
	}
	return cause
}
