package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"swipe-lab/contract"
	"swipe-lab/domain"
)

// ProfileService is the write path of a profile: registration completion and edits.
type ProfileService struct {
	profiles  contract.IProfileStore
	photos    contract.IPhotoStore
	moderator contract.IModerator
	fanout    contract.IFanout
	log       *slog.Logger
}

func NewProfileService(profiles contract.IProfileStore, photos contract.IPhotoStore,
	moderator contract.IModerator, fanout contract.IFanout, log *slog.Logger) *ProfileService {
	return &ProfileService{
		profiles:  profiles,
		photos:    photos,
		moderator: moderator,
		fanout:    fanout,
		log:       log,
	}
}

// Save validates, moderates and stores the profile, then publishes the stored version.
// A failed publish leaves the profile saved: saving again republishes it.
func (s *ProfileService) Save(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	p.City = strings.TrimSpace(p.City)
	p.Username = strings.TrimPrefix(strings.TrimSpace(p.Username), "@")
	if err := p.Validate(); err != nil {
		return domain.Profile{}, err
	}
	if s.moderator != nil {
		p = s.moderator.Profile(p)
	}

	saved, err := s.profiles.UpsertProfile(ctx, p)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := s.fanout.Publish(ctx, saved); err != nil {
		return saved, fmt.Errorf("profile %s saved but not published: %w", saved.ID, err)
	}
	return saved, nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (domain.Profile, error) {
	return s.profiles.GetProfile(ctx, userID)
}

// UploadPhoto stores an image and returns the reference to put in the profile.
func (s *ProfileService) UploadPhoto(ctx context.Context, data []byte) (string, error) {
	ref, err := s.photos.Put(ctx, data)
	if err != nil {
		return "", err
	}
	s.log.Debug("Photo uploaded", "ref", ref)
	return ref, nil
}
