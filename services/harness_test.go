package services

import (
	"context"
	"log/slog"
	"testing"

	"swipe-lab/domain"
	"swipe-lab/infrastructure/storage"
	"swipe-lab/mocks"
	"swipe-lab/moderation"
	"swipe-lab/observability"
	"swipe-lab/runtime"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngPhoto = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// harness is an engine on an in-memory badger with a mocked notification sink.
type harness struct {
	engine    *Engine
	db        *badger.DB
	transport *storage.ChannelRepository
	channels  *runtime.ChannelManager
	profiles  *storage.ProfileRepository
	photos    *storage.PhotoRepository
	seen      *storage.SeenRepository
	ledger    *storage.SwipeRepository
	sink      *mocks.MockINotificationSink
	metrics   *observability.Metrics
}

func newHarness(t *testing.T, ctrl *gomock.Controller, maxScanAttempts int) *harness {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	transport, err := storage.NewChannelRepository(db, log)
	req.NoError(err)
	t.Cleanup(func() {
		_ = transport.Close()
		_ = db.Close()
	})

	moderator, err := moderation.NewModerator([]string{"scam"}, '*', log)
	req.NoError(err)

	h := &harness{
		db:        db,
		transport: transport,
		channels:  runtime.NewChannelManager(transport, log),
		profiles:  storage.NewProfileRepository(db, log),
		photos:    storage.NewPhotoRepository(db, log),
		seen:      storage.NewSeenRepository(db, log),
		ledger:    storage.NewSwipeRepository(db, log),
		sink:      mocks.NewMockINotificationSink(ctrl),
		metrics:   observability.NewMetrics(prometheus.NewRegistry()),
	}
	h.engine = NewEngine(Dependencies{
		Channels:        h.channels,
		Profiles:        h.profiles,
		Photos:          h.photos,
		Seen:            h.seen,
		Ledger:          h.ledger,
		Sink:            h.sink,
		Locker:          runtime.NewPairLocker(),
		Moderator:       moderator,
		Metrics:         h.metrics,
		MaxScanAttempts: maxScanAttempts,
	}, log)
	return h
}

// register uploads a photo and saves, hence publishes, a profile.
func (h *harness) register(t *testing.T, id string, gender domain.Gender, filter domain.GenderFilter, city string) domain.Profile {
	t.Helper()
	ctx := context.Background()
	ref, err := h.engine.Profiles.UploadPhoto(ctx, pngPhoto)
	require.NoError(t, err)

	saved, err := h.engine.SaveProfile(ctx, domain.Profile{
		ID:           id,
		Username:     "user" + id,
		Name:         "User " + id,
		Age:          30,
		City:         city,
		Bio:          "bio of " + id,
		Seeking:      "someone nice",
		PhotoRef:     ref,
		Gender:       gender,
		GenderFilter: filter,
	})
	require.NoError(t, err)
	return saved
}

func (h *harness) depth(t *testing.T, channel string) int {
	t.Helper()
	n, err := h.transport.Depth(context.Background(), channel)
	require.NoError(t, err)
	return n
}
