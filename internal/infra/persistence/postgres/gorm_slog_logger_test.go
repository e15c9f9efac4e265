package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"addressbook/config"
	"addressbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Parallel()

	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	tests := []struct {
		name    string
		debug   bool
		err     error
		elapsed time.Duration
		want    string
	}{
		{name: "record not found is silent", err: gorm.ErrRecordNotFound},
		{name: "duplicate key is a warning", err: gorm.ErrDuplicatedKey, want: "level=WARN msg=\"query rejected by constraint\""},
		{name: "other errors are errors", err: errors.New("conn reset"), want: "level=ERROR msg=\"query failed\""},
		{name: "slow query warns", elapsed: time.Second, want: "level=WARN msg=\"slow query\""},
		{name: "fast query is silent outside debug"},
		{name: "fast query is traced in debug", debug: true, want: "level=DEBUG msg=query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l := newGormSlogLogger(base, cfg)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "component=gorm")
		})
	}
}
