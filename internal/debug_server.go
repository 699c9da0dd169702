package internal

import (
	"context"
	"embed"
	"encoding/binary"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"swipe-lab/infrastructure/codec"

	"github.com/dgraph-io/badger/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed inspect.html
var templatesFS embed.FS

const (
	defaultPrefix = "chan:"
	maxRows       = 500
)

type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Namespace string
	Detail    string
	Meta      string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix    string
	Items     []InspectRow
	Truncated bool
	Stats     map[string]any
}

type DebugServer struct {
	srv *http.Server
	log *slog.Logger
}

// NewDebugServer serves /inspect (badger browser), /metrics and /healthz on addr.
// A nil mapper falls back to RecordMapper.
func NewDebugServer(db *badger.DB, addr string, mapper RowMapper, stats StatsProvider, gatherer prometheus.Gatherer, log *slog.Logger) *DebugServer {
	return &DebugServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewDebugHandler(db, mapper, stats, gatherer),
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

func NewDebugHandler(db *badger.DB, mapper RowMapper, stats StatsProvider, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = RecordMapper
	}

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = defaultPrefix
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if stats != nil {
			data.Stats = stats()
		}

		err := db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(prefix)
			it := txn.NewIterator(opts)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				if len(data.Items) == maxRows {
					data.Truncated = true
					return nil
				}
				item := it.Item()
				err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	if gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if db.IsClosed() {
			http.Error(w, "database closed", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, "OK")
	})
	return mux
}

// ListenAndServe blocks until Shutdown, which is not reported as an error.
func (s *DebugServer) ListenAndServe() error {
	s.log.Info("Debug server listening", "url", fmt.Sprintf("http://%s/inspect", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("debug server: %w", err)
	}
	return nil
}

func (s *DebugServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.SplitN(key, ":", 3)
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Namespace: parts[0],
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
		Meta:      "-",
	}
	if len(parts) >= 2 {
		row.EntityID = parts[1]
	}
	return row
}

// RecordMapper decodes every record kind of the engine keyspace.
func RecordMapper(key string, val []byte) InspectRow {
	row := DefaultMapper(key, val)

	switch row.Namespace {
	case "chan":
		row.Type = "READY"
		describeMessage(&row, val)
	case "inflight":
		row.Type = "INFLIGHT"
		if len(val) >= 8 {
			poppedAt := time.Unix(0, int64(binary.BigEndian.Uint64(val[:8])))
			row.Meta = "popped " + poppedAt.Format("15:04:05")
			describeMessage(&row, val[8:])
		}
	case "profile":
		row.Type = "PROFILE"
		if p, err := codec.DecodeProfile(val); err == nil {
			row.Timestamp = p.UpdatedAt.Format("15:04:05")
			row.Detail = fmt.Sprintf("%s, %d, %s (%s wants %s)", p.Name, p.Age, p.City, p.Gender, p.GenderFilter)
			row.Meta = "v" + strconv.FormatUint(p.Version, 10)
		}
	case "swipe":
		row.Type = "SWIPE"
		if d, err := codec.DecodeSwipe(val); err == nil {
			row.Timestamp = d.At.Format("15:04:05")
			row.Detail = fmt.Sprintf("%s -> %s", d.From, d.To)
			row.Meta = map[bool]string{true: "like", false: "dislike"}[d.Liked]
		}
	case "match":
		row.Type = "MATCH"
		if m, err := codec.DecodeMatch(val); err == nil {
			row.Timestamp = m.CreatedAt.Format("15:04:05")
			row.Detail = strings.TrimPrefix(key, "match:")
			row.Meta = "notified=" + strconv.FormatBool(m.Notified)
		}
	case "notify":
		row.Type = "NOTIFICATION"
		if n, err := codec.DecodeNotification(val); err == nil {
			row.Timestamp = n.CreatedAt.Format("15:04:05")
			row.EntityID = n.UserID
			row.Detail = n.Text
			row.Meta = fmt.Sprintf("%s attempts=%d", n.Kind, n.Attempts)
		}
	case "seen":
		row.Type = "SEEN"
	case "photo":
		row.Type = "PHOTO"
		row.EntityID = strings.TrimPrefix(key, "photo:")
	}
	return row
}

func describeMessage(row *InspectRow, body []byte) {
	m, err := codec.DecodeMessage(body)
	if err != nil {
		row.Detail = "malformed: " + err.Error()
		return
	}
	row.Timestamp = m.PublishedAt.Format("15:04:05")
	row.EntityID = m.OwnerID()
	row.Detail = fmt.Sprintf("%s, %d, %s", m.Profile.Name, m.Profile.Age, m.Profile.City)
	if row.Meta == "-" {
		row.Meta = "v" + strconv.FormatUint(m.Profile.Version, 10)
	}
}
