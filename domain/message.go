package domain

import (
	"time"

	"github.com/google/uuid"
)

// DistributionMessage is the immutable snapshot of a profile travelling on a channel.
type DistributionMessage struct {
	MessageID   uuid.UUID
	Profile     Profile
	PublishedAt time.Time
}

func NewDistributionMessage(p Profile, at time.Time) DistributionMessage {
	return DistributionMessage{MessageID: uuid.New(), Profile: p, PublishedAt: at}
}

func (m DistributionMessage) OwnerID() string { return m.Profile.ID }

// SupersededBy reports whether current is a newer version than the snapshot.
func (m DistributionMessage) SupersededBy(current Profile) bool {
	return m.Profile.Version < current.Version
}

// Card is what the feed hands back to the caller: the snapshot plus its rendered photo.
type Card struct {
	Profile  Profile
	Photo    []byte
	MimeType string
	Caption  string
	Source   string
}
