// Package codec turns domain values into protobuf bytes and back.
// Every persisted or transported record is a google.protobuf.Struct, so
// readers keep working when fields are added.
package codec

import (
	"fmt"
	"strconv"
	"time"

	"swipe-lab/domain"
	"swipe-lab/errors"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Field names of a distribution message. The first block is mandatory.
const (
	fieldUserID       = "user_id"
	fieldName         = "name"
	fieldAge          = "age"
	fieldCity         = "city"
	fieldDescription  = "description"
	fieldPreference   = "preference"
	fieldPhotoID      = "photo_id"
	fieldGender       = "gender"
	fieldMessageID    = "message_id"
	fieldUsername     = "username"
	fieldGenderFilter = "gender_filter"
	fieldVersion      = "version"
	fieldUpdatedAt    = "updated_at"
	fieldPublishedAt  = "published_at"
)

var requiredMessageFields = []string{
	fieldUserID, fieldName, fieldAge, fieldCity,
	fieldDescription, fieldPreference, fieldPhotoID, fieldGender,
}

func EncodeMessage(m domain.DistributionMessage) ([]byte, error) {
	fields := profileFields(m.Profile)
	fields[fieldMessageID] = m.MessageID.String()
	fields[fieldPublishedAt] = formatTime(m.PublishedAt)
	return marshal(fields)
}

// DecodeMessage fails with ErrMalformedMessage on anything that is not a
// complete distribution message.
func DecodeMessage(body []byte) (domain.DistributionMessage, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(body, &s); err != nil {
		return domain.DistributionMessage{}, fmt.Errorf("%w: %v", errors.ErrMalformedMessage, err)
	}
	f := s.GetFields()
	for _, name := range requiredMessageFields {
		if _, ok := f[name]; !ok {
			return domain.DistributionMessage{}, fmt.Errorf("%w: missing %s", errors.ErrMalformedMessage, name)
		}
	}
	p, err := profileFromFields(f)
	if err != nil {
		return domain.DistributionMessage{}, fmt.Errorf("%w: %v", errors.ErrMalformedMessage, err)
	}
	if p.ID == "" {
		return domain.DistributionMessage{}, fmt.Errorf("%w: empty user_id", errors.ErrMalformedMessage)
	}
	msg := domain.DistributionMessage{Profile: p, PublishedAt: parseTime(f[fieldPublishedAt].GetStringValue())}
	if id, err := uuid.Parse(f[fieldMessageID].GetStringValue()); err == nil {
		msg.MessageID = id
	}
	return msg, nil
}

// OwnerOf reads only the owner of an encoded message.
// It returns "" when the body cannot be read.
func OwnerOf(body []byte) string {
	var s structpb.Struct
	if err := proto.Unmarshal(body, &s); err != nil {
		return ""
	}
	return s.GetFields()[fieldUserID].GetStringValue()
}

func EncodeProfile(p domain.Profile) ([]byte, error) {
	return marshal(profileFields(p))
}

func DecodeProfile(data []byte) (domain.Profile, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return profileFromFields(s.GetFields())
}

func EncodeSwipe(d domain.SwipeDecision) ([]byte, error) {
	return marshal(map[string]any{
		"from":  d.From,
		"to":    d.To,
		"liked": d.Liked,
		"at":    formatTime(d.At),
	})
}

func DecodeSwipe(data []byte) (domain.SwipeDecision, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return domain.SwipeDecision{}, fmt.Errorf("failed to unmarshal swipe: %w", err)
	}
	f := s.GetFields()
	return domain.SwipeDecision{
		From:  f["from"].GetStringValue(),
		To:    f["to"].GetStringValue(),
		Liked: f["liked"].GetBoolValue(),
		At:    parseTime(f["at"].GetStringValue()),
	}, nil
}

// MatchMarker is stored once per matched pair.
type MatchMarker struct {
	CreatedAt time.Time
	Notified  bool
}

func EncodeMatch(m MatchMarker) ([]byte, error) {
	return marshal(map[string]any{
		"created_at": formatTime(m.CreatedAt),
		"notified":   m.Notified,
	})
}

func DecodeMatch(data []byte) (MatchMarker, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return MatchMarker{}, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	f := s.GetFields()
	return MatchMarker{
		CreatedAt: parseTime(f["created_at"].GetStringValue()),
		Notified:  f["notified"].GetBoolValue(),
	}, nil
}

func EncodeNotification(n domain.Notification) ([]byte, error) {
	return marshal(map[string]any{
		"id":         n.ID,
		"kind":       string(n.Kind),
		"user_id":    n.UserID,
		"text":       n.Text,
		"photo_ref":  n.PhotoRef,
		"attempts":   n.Attempts,
		"created_at": formatTime(n.CreatedAt),
	})
}

func DecodeNotification(data []byte) (domain.Notification, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return domain.Notification{}, fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	f := s.GetFields()
	return domain.Notification{
		ID:        f["id"].GetStringValue(),
		Kind:      domain.NotificationKind(f["kind"].GetStringValue()),
		UserID:    f["user_id"].GetStringValue(),
		Text:      f["text"].GetStringValue(),
		PhotoRef:  f["photo_ref"].GetStringValue(),
		Attempts:  int(f["attempts"].GetNumberValue()),
		CreatedAt: parseTime(f["created_at"].GetStringValue()),
	}, nil
}

func profileFields(p domain.Profile) map[string]any {
	return map[string]any{
		fieldUserID:       p.ID,
		fieldUsername:     p.Username,
		fieldName:         p.Name,
		fieldAge:          p.Age,
		fieldCity:         p.City,
		fieldDescription:  p.Bio,
		fieldPreference:   p.Seeking,
		fieldPhotoID:      p.PhotoRef,
		fieldGender:       string(p.Gender),
		fieldGenderFilter: string(p.GenderFilter),
		// uint64 does not survive a float64 round trip
		fieldVersion:   strconv.FormatUint(p.Version, 10),
		fieldUpdatedAt: formatTime(p.UpdatedAt),
	}
}

func profileFromFields(f map[string]*structpb.Value) (domain.Profile, error) {
	age, ok := f[fieldAge].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return domain.Profile{}, fmt.Errorf("age is not a number")
	}
	var version uint64
	if v := f[fieldVersion].GetStringValue(); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return domain.Profile{}, fmt.Errorf("invalid version %q: %w", v, err)
		}
		version = parsed
	}
	return domain.Profile{
		ID:           f[fieldUserID].GetStringValue(),
		Username:     f[fieldUsername].GetStringValue(),
		Name:         f[fieldName].GetStringValue(),
		Age:          int(age.NumberValue),
		City:         f[fieldCity].GetStringValue(),
		Bio:          f[fieldDescription].GetStringValue(),
		Seeking:      f[fieldPreference].GetStringValue(),
		PhotoRef:     f[fieldPhotoID].GetStringValue(),
		Gender:       domain.Gender(f[fieldGender].GetStringValue()),
		GenderFilter: domain.GenderFilter(f[fieldGenderFilter].GetStringValue()),
		Version:      version,
		UpdatedAt:    parseTime(f[fieldUpdatedAt].GetStringValue()),
	}, nil
}

func marshal(fields map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build struct: %w", err)
	}
	return proto.Marshal(s)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
