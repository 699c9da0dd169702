//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"swipe-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Delivery is a message taken off a channel and not settled yet.
// Tag identifies it for Ack, Reject and Requeue.
type Delivery struct {
	Channel string
	Tag     string
	Body    []byte
}

// ITransport is the durable message store behind every channel.
// Pop never blocks: it returns (nil, nil) when nothing is ready after the cursor.
type ITransport interface {
	Push(ctx context.Context, channel string, body []byte) error
	Pop(ctx context.Context, channel string, after string) (*Delivery, error)
	Ack(ctx context.Context, d *Delivery) error
	Reject(ctx context.Context, d *Delivery) error
	Requeue(ctx context.Context, d *Delivery) error
	Purge(ctx context.Context, channel string, match func(body []byte) bool) (int, error)
	Depth(ctx context.Context, channel string) (int, error)
	RecoverInflight(ctx context.Context, olderThan time.Duration) (int, error)
}

// IChannel is one named FIFO of distribution messages.
type IChannel interface {
	Name() string
	Push(ctx context.Context, body []byte) error
	Pop(ctx context.Context, after string) (*Delivery, error)
	Ack(ctx context.Context, d *Delivery) error
	Reject(ctx context.Context, d *Delivery) error
	Requeue(ctx context.Context, d *Delivery) error
	// Replace drops every ready message matching and pushes body, atomically for other publishers.
	Replace(ctx context.Context, match func(body []byte) bool, body []byte) (int, error)
	Retract(ctx context.Context, match func(body []byte) bool) (int, error)
	Depth(ctx context.Context) (int, error)
}

type IChannelManager interface {
	Shared(filter domain.GenderFilter) IChannel
	Inbox(userID string) IChannel
	SharedChannels() []IChannel
}

type IProfileStore interface {
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	UpsertProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

type IPhotoStore interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
	Put(ctx context.Context, data []byte) (string, error)
}

// INotificationSink delivers a message to the chat session of a user.
type INotificationSink interface {
	SendText(ctx context.Context, userID string, text string) error
	SendPhoto(ctx context.Context, userID string, photoRef string, caption string) error
}

type ISeenSet interface {
	MarkSeen(ctx context.Context, viewerID, ownerID string) error
	IsSeen(ctx context.Context, viewerID, ownerID string) (bool, error)
	Reset(ctx context.Context, viewerID string) (int, error)
}

// ISwipeLedger records decisions and detects the transition to a mutual like
// in the same transaction.
type ISwipeLedger interface {
	Record(ctx context.Context, d domain.SwipeDecision) (domain.SwipeRecord, error)
	Get(ctx context.Context, fromID, toID string) (domain.SwipeDecision, error)
	MarkMatchNotified(ctx context.Context, a, b string) error
}

type INotificationOutbox interface {
	Enqueue(ctx context.Context, n domain.Notification) error
	Pending(ctx context.Context, limit int) ([]domain.Notification, error)
	Done(ctx context.Context, id string) error
	Retry(ctx context.Context, id string, attempts int) error
}

// IFanout places profile snapshots on channels.
type IFanout interface {
	Publish(ctx context.Context, p domain.Profile) error
	Route(ctx context.Context, targetUserID string, p domain.Profile) error
}

// IPairLocker serializes work on an unordered pair of users.
type IPairLocker interface {
	Lock(a, b string) func()
}

type IModerator interface {
	Profile(p domain.Profile) domain.Profile
}
