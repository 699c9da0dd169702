package internal

import (
	"fmt"
	"time"

	"swipe-lab/errors"
)

const (
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	Host           string `env:"HOST,default=0.0.0.0"`
	Port           int    `env:"PORT,default=50051"`
	DebugPort      int    `env:"DEBUG_PORT,default=8081"`

	StoreBackend string `env:"STORE_BACKEND,default=badger"`
	DatabaseURL  string `env:"DATABASE_URL"`

	PhotoBackend string `env:"PHOTO_BACKEND,default=badger"`
	S3Endpoint   string `env:"S3_ENDPOINT"`
	S3Region     string `env:"S3_REGION"`
	S3Bucket     string `env:"S3_BUCKET,default=profile-photos"`
	S3AccessKey  string `env:"S3_ACCESS_KEY"`
	S3SecretKey  string `env:"S3_SECRET_KEY"`
	S3PathStyle  bool   `env:"S3_PATH_STYLE,default=true"`

	MaxScanAttempts int           `env:"MAX_SCAN_ATTEMPTS,default=100"`
	InflightTimeout time.Duration `env:"INFLIGHT_TIMEOUT,default=5m"`

	RecoveryInterval        time.Duration `env:"RECOVERY_INTERVAL,default=1m"`
	DispatchInterval        time.Duration `env:"DISPATCH_INTERVAL,default=1s"`
	DispatchBatchSize       int           `env:"DISPATCH_BATCH_SIZE,default=50"`
	NotificationRate        float64       `env:"NOTIFICATION_RATE,default=25"`
	NotificationBurst       int           `env:"NOTIFICATION_BURST,default=5"`
	MaxNotificationAttempts int           `env:"MAX_NOTIFICATION_ATTEMPTS,default=5"`
	GCInterval              time.Duration `env:"GC_INTERVAL,default=10m"`
	HeartbeatInterval       time.Duration `env:"HEARTBEAT_INTERVAL,default=30s"`
	RestartInterval         time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	CharReplacement         string        `env:"CENSOR_CHARACTER,default=*"`
}

// Validate checks what the env tags cannot express.
func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendBadger:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=%s", BackendPostgres)
		}
	default:
		return fmt.Errorf("STORE_BACKEND %q: %w", c.StoreBackend, errors.ErrUnknownBackend)
	}

	switch c.PhotoBackend {
	case BackendBadger:
	case BackendS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when PHOTO_BACKEND=%s", BackendS3)
		}
	default:
		return fmt.Errorf("PHOTO_BACKEND %q: %w", c.PhotoBackend, errors.ErrUnknownBackend)
	}

	if c.MaxScanAttempts < 1 {
		return fmt.Errorf("MAX_SCAN_ATTEMPTS must be positive, got %d", c.MaxScanAttempts)
	}
	if c.MaxNotificationAttempts < 1 {
		return fmt.Errorf("MAX_NOTIFICATION_ATTEMPTS must be positive, got %d", c.MaxNotificationAttempts)
	}
	_, err := CharacterRune(c.CharReplacement)
	return err
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
