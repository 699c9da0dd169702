package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"swipe-lab/domain"
	"swipe-lab/internal"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var pngPhoto = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

// Delivered is one message that reached a user's chat session.
type Delivered struct {
	UserID   string
	Text     string
	PhotoRef string
}

// RecordingSink stands for the chat front end.
type RecordingSink struct {
	mu   sync.Mutex
	sent []Delivered
}

func (r *RecordingSink) SendText(_ context.Context, userID string, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Delivered{UserID: userID, Text: text})
	return nil
}

func (r *RecordingSink) SendPhoto(_ context.Context, userID string, photoRef string, caption string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Delivered{UserID: userID, Text: caption, PhotoRef: photoRef})
	return nil
}

func (r *RecordingSink) For(userID string) []Delivered {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Delivered
	for _, d := range r.sent {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out
}

// BaseSuite assembles a whole engine per test, the way matchd does, on an in-memory badger.
type BaseSuite struct {
	suite.Suite
	Config Config

	db       *badger.DB
	Stack    *internal.Stack
	Delivery *RecordingSink
	engineCf internal.Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseSuite) SetupTest() {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	s.Require().NoError(err)
	s.db = db

	s.engineCf = internal.Config{
		StoreBackend:            internal.BackendBadger,
		PhotoBackend:            internal.BackendBadger,
		S3Bucket:                "profile-photos",
		MaxScanAttempts:         s.Config.MaxScanAttempts,
		MaxNotificationAttempts: 3,
		DispatchBatchSize:       100,
		DispatchInterval:        10 * time.Millisecond,
		CharReplacement:         "*",
	}
	if s.Config.DatabaseURL != "" {
		s.engineCf.StoreBackend = internal.BackendPostgres
		s.engineCf.DatabaseURL = s.Config.DatabaseURL
	}

	s.Stack, err = internal.BuildStack(context.Background(), s.engineCf, db, slog.New(slog.DiscardHandler))
	s.Require().NoError(err)
	s.Delivery = &RecordingSink{}
}

func (s *BaseSuite) TearDownTest() {
	s.Require().NoError(s.Stack.Close())
	s.Require().NoError(s.db.Close())
}

// Step prints a header then runs fn as a subtest.
func (s *BaseSuite) Step(name string, fn func(ctx context.Context)) {
	s.Run(name, func() {
		header := fmt.Sprintf("  ====== %s ======", name)
		if s.Config.Colours {
			header = color.New(color.BgBlack, color.FgGreen).Render(header)
		}
		s.T().Log(header)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		fn(ctx)
	})
}

// Register uploads a photo and saves a profile.
func (s *BaseSuite) Register(ctx context.Context, id, name string, gender domain.Gender, filter domain.GenderFilter, city string) domain.Profile {
	ref, err := s.Stack.Engine.Profiles.UploadPhoto(ctx, pngPhoto)
	s.Require().NoError(err)
	p, err := s.Stack.Engine.SaveProfile(ctx, domain.Profile{
		ID:           id,
		Username:     name,
		Name:         name,
		Age:          27,
		City:         city,
		Bio:          "Hi, I'm " + name,
		PhotoRef:     ref,
		Gender:       gender,
		GenderFilter: filter,
	})
	s.Require().NoError(err)
	return p
}

// Deliver runs the notification dispatcher once.
func (s *BaseSuite) Deliver(ctx context.Context) int {
	n, err := s.Stack.Dispatcher(s.engineCf, s.Delivery).DispatchOnce(ctx)
	s.Require().NoError(err)
	return n
}

// ID keeps postgres rows of different runs apart, badger runs start empty anyway.
func (s *BaseSuite) ID(name string) string {
	if s.engineCf.StoreBackend != internal.BackendPostgres {
		return name
	}
	return fmt.Sprintf("%s-%d", name, time.Now().UnixNano())
}

// GrpcConn connects to a running matchd.
func (s *BaseSuite) GrpcConn(addr string) *grpc.ClientConn {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}
