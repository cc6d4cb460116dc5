package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	batchSize     = 50
	flushInterval = 5 * time.Second
)

// DBHandler buffers ERROR records and writes them to system_logs in batches.
// Well-known attributes get their own columns; the rest go to Extra.
type DBHandler struct {
	core  *dbCore
	attrs []slog.Attr
}

type dbCore struct {
	db     *gorm.DB
	mu     sync.Mutex
	buffer []models.SystemLog
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDBHandler(db *gorm.DB) *DBHandler {
	core := &dbCore{
		db:     db,
		buffer: make([]models.SystemLog, 0, batchSize),
		done:   make(chan struct{}),
	}
	core.wg.Add(1)
	go core.loop()
	return &DBHandler{core: core}
}

func (c *dbCore) loop() {
	defer c.wg.Done()
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.flush()
		case <-c.done:
			c.flush()
			return
		}
	}
}

func (c *dbCore) flush() {
	c.mu.Lock()
	if len(c.buffer) == 0 {
		c.mu.Unlock()
		return
	}
	batch := c.buffer
	c.buffer = make([]models.SystemLog, 0, batchSize)
	c.mu.Unlock()

	// The default logger fans out to this handler; errors here must not loop.
	if err := c.db.CreateInBatches(batch, batchSize).Error; err != nil {
		slog.Warn("failed to flush system logs", "error", err.Error(), "count", len(batch))
	}
}

// Stop flushes pending records and ends the background loop.
func (h *DBHandler) Stop() {
	h.core.once.Do(func() { close(h.core.done) })
	h.core.wg.Wait()
}

func (h *DBHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (h *DBHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	apply := func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "user_id":
			s := a.Value.String()
			entry.UserID = &s
		case "method":
			entry.Method = a.Value.String()
		case "path":
			entry.Path = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		case "latency_ms":
			switch a.Value.Kind() {
			case slog.KindFloat64:
				entry.LatencyMs = int(math.Round(a.Value.Float64()))
			case slog.KindInt64:
				entry.LatencyMs = int(a.Value.Int64())
			}
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	}
	for _, a := range h.attrs {
		apply(a)
	}
	record.Attrs(apply)

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.core.mu.Lock()
	h.core.buffer = append(h.core.buffer, entry)
	full := len(h.core.buffer) >= batchSize
	h.core.mu.Unlock()

	if full {
		go h.core.flush()
	}
	return nil
}

func (h *DBHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &DBHandler{core: h.core, attrs: merged}
}

// WithGroup is ignored: stored records are flat.
func (h *DBHandler) WithGroup(string) slog.Handler {
	return h
}
