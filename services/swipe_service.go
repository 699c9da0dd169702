package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"swipe-lab/contract"
	"swipe-lab/domain"
	errs "swipe-lab/errors"
	"swipe-lab/observability"

	"github.com/samber/lo"
)

// SwipeService records decisions and tells both users when a like completes a pair.
type SwipeService struct {
	profiles contract.IProfileStore
	ledger   contract.ISwipeLedger
	seen     contract.ISeenSet
	fanout   contract.IFanout
	sink     contract.INotificationSink
	locker   contract.IPairLocker
	metrics  *observability.Metrics
	log      *slog.Logger
	now      func() time.Time
}

func NewSwipeService(profiles contract.IProfileStore, ledger contract.ISwipeLedger,
	seen contract.ISeenSet, fanout contract.IFanout, sink contract.INotificationSink,
	locker contract.IPairLocker, metrics *observability.Metrics, log *slog.Logger) *SwipeService {
	return &SwipeService{
		profiles: profiles,
		ledger:   ledger,
		seen:     seen,
		fanout:   fanout,
		sink:     sink,
		locker:   locker,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// Swipe is safe to retry after any error: the decision is an upsert and a match
// that was recorded but not notified is notified by the next call on the pair.
func (s *SwipeService) Swipe(ctx context.Context, fromID, toID string, liked bool) (domain.MatchOutcome, error) {
	for _, id := range []string{fromID, toID} {
		if err := domain.ValidateUserID(id); err != nil {
			return domain.OutcomeNoMatch, err
		}
	}
	if fromID == toID {
		return domain.OutcomeNoMatch, fmt.Errorf("%w: %s", errs.ErrSelfSwipe, fromID)
	}
	from, err := s.profiles.GetProfile(ctx, fromID)
	if err != nil {
		return domain.OutcomeNoMatch, err
	}
	to, err := s.profiles.GetProfile(ctx, toID)
	if err != nil {
		return domain.OutcomeNoMatch, err
	}

	outcome, err := s.resolve(ctx, from, to, liked)
	if err != nil {
		return domain.OutcomeNoMatch, err
	}
	s.metrics.Swipes.WithLabelValues(lo.Ternary(liked, "like", "pass")).Inc()

	if err := s.seen.MarkSeen(ctx, fromID, toID); err != nil {
		return outcome, fmt.Errorf("failed to mark %s seen by %s: %w", toID, fromID, err)
	}
	if liked && to.GenderFilter.Admits(from.Gender) {
		if err := s.fanout.Route(ctx, toID, from); err != nil {
			return outcome, err
		}
	}

	s.metrics.Matches.WithLabelValues(outcome.String()).Inc()
	s.log.Debug("Swipe recorded", "from", fromID, "to", toID, "liked", liked, "outcome", outcome.String())
	return outcome, nil
}

// resolve holds the pair lock from the ledger write to the notified flag,
// so that a pending match is claimed by one call only.
func (s *SwipeService) resolve(ctx context.Context, from, to domain.Profile, liked bool) (domain.MatchOutcome, error) {
	unlock := s.locker.Lock(from.ID, to.ID)
	defer unlock()

	rec, err := s.ledger.Record(ctx, domain.SwipeDecision{
		From:  from.ID,
		To:    to.ID,
		Liked: liked,
		At:    s.now().UTC(),
	})
	if err != nil {
		return domain.OutcomeNoMatch, err
	}

	switch {
	case rec.PendingNotification:
		if s.notifyMatch(ctx, from, to) {
			if err := s.ledger.MarkMatchNotified(ctx, from.ID, to.ID); err != nil {
				s.log.Error("Match notified but not flagged", "a", from.ID, "b", to.ID, "error", err)
			}
		}
		s.log.Info("Mutual match", "a", from.ID, "b", to.ID)
		return domain.OutcomeMutualMatch, nil
	case rec.Mutual:
		return domain.OutcomeAlreadyMatched, nil
	default:
		return domain.OutcomeNoMatch, nil
	}
}

// notifyMatch tells each user about the other. It reports whether both messages went out.
func (s *SwipeService) notifyMatch(ctx context.Context, a, b domain.Profile) bool {
	ok := true
	for _, pair := range [][2]domain.Profile{{a, b}, {b, a}} {
		user, partner := pair[0], pair[1]
		text := domain.MatchText(partner)

		var err error
		if partner.PhotoRef != "" {
			err = s.sink.SendPhoto(ctx, user.ID, partner.PhotoRef, text)
		} else {
			err = s.sink.SendText(ctx, user.ID, text)
		}
		if err != nil {
			s.log.Error("Match notification failed", "user_id", user.ID, "partner", partner.ID, "error", err)
			ok = false
		}
	}
	return ok
}
