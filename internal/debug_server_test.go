package internal

import (
	"encoding/binary"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swipe-lab/domain"
	"swipe-lab/infrastructure/codec"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testProfile() domain.Profile {
	return domain.Profile{
		ID: "42", Name: "Alice", Age: 25, City: "Paris", PhotoRef: "user_photos/a.jpg",
		Gender: domain.Female, GenderFilter: domain.FilterAll, Version: 3,
		UpdatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDebugHandler_InspectListsPrefix(t *testing.T) {
	req := require.New(t)
	db := openDB(t)

	// Given a profile and a swipe stored side by side
	profile, err := codec.EncodeProfile(testProfile())
	req.NoError(err)
	swipe, err := codec.EncodeSwipe(domain.SwipeDecision{From: "1", To: "42", Liked: true, At: time.Now()})
	req.NoError(err)
	req.NoError(db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte("profile:42"), profile); err != nil {
			return err
		}
		return txn.Set([]byte("swipe:1:42"), swipe)
	}))

	srv := httptest.NewServer(NewDebugHandler(db, nil, func() map[string]any {
		return map[string]any{"Mode": "test"}
	}, prometheus.NewRegistry()))
	defer srv.Close()

	// When the profile prefix is browsed
	resp, err := http.Get(srv.URL + "/inspect?prefix=profile:")
	req.NoError(err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	// Then only the decoded profile is listed
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Contains(string(body), "Alice, 25, Paris")
	req.Contains(string(body), "Mode: test")
	req.NotContains(string(body), "swipe:1:42")
}

func TestDebugHandler_HealthAndMetrics(t *testing.T) {
	req := require.New(t)
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_total", Help: "probe"}))
	srv := httptest.NewServer(NewDebugHandler(openDB(t), nil, nil, reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	req.NoError(err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	req.Contains(string(body), "probe_total")
}

func TestRecordMapper(t *testing.T) {
	req := require.New(t)
	msg, err := codec.EncodeMessage(domain.NewDistributionMessage(testProfile(), time.Now()))
	req.NoError(err)

	// Given an in-flight value: pop time header then the message
	header := make([]byte, 8)
	binary.BigEndian.PutUint64(header, uint64(time.Now().UnixNano()))
	row := RecordMapper("inflight:profiles_all:00000000000000000001", append(header, msg...))
	req.Equal("INFLIGHT", row.Type)
	req.Equal("42", row.EntityID)
	req.Contains(row.Meta, "popped")

	row = RecordMapper("chan:profiles_all:00000000000000000002", msg)
	req.Equal("READY", row.Type)
	req.Equal("v3", row.Meta)

	row = RecordMapper("chan:profiles_all:00000000000000000003", []byte("garbage"))
	req.Contains(row.Detail, "malformed")

	marker, err := codec.EncodeMatch(codec.MatchMarker{CreatedAt: time.Now(), Notified: true})
	req.NoError(err)
	row = RecordMapper("match:1:42", marker)
	req.Equal("MATCH", row.Type)
	req.Equal("notified=true", row.Meta)
}
