package events

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ChethakaL/resturant-saas-sub004/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Topic is the single stream guest interactions land on.
const Topic = "guest_events"

// EventSink receives fire-and-forget guest interaction reports. Delivery is
// best effort; a sink error is logged by the caller, never surfaced to the
// guest.
type EventSink interface {
	Write(event models.GuestEvent) error
	Close() error
}

// NewSink selects the sink from configuration: console, json, kafka, parquet
// or postgres.
func NewSink(cfg *models.Config, pool *pgxpool.Pool) (EventSink, error) {
	switch cfg.EventSink {
	case "console", "":
		return &ConsoleSink{}, nil
	case "json":
		return NewJSONSink(cfg.OutputPath, cfg.OutputFolder), nil
	case "kafka":
		return NewKafkaSink(cfg)
	case "parquet":
		return NewParquetSink(cfg)
	case "postgres":
		if pool == nil {
			return nil, fmt.Errorf("postgres event sink requires a database connection")
		}
		return NewPostgresSink(pool), nil
	}
	return nil, fmt.Errorf("unsupported event sink: %s", cfg.EventSink)
}

type ConsoleSink struct{}

func (c *ConsoleSink) Write(event models.GuestEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(os.Stdout, "[%s] %s\n", Topic, msg)
	return err
}

func (c *ConsoleSink) Close() error {
	return nil
}

// JSONSink appends newline-delimited JSON into hour-partitioned files under
// basePath/folder/topic. Writes arrive from concurrent request goroutines,
// so the file map and the appends are mutex-guarded.
type JSONSink struct {
	basePath string
	folder   string
	mu       sync.Mutex
	files    map[string]*os.File
}

func NewJSONSink(basePath, folder string) *JSONSink {
	return &JSONSink{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONSink) Write(event models.GuestEvent) error {
	partitionPath := partition(time.Unix(event.Timestamp, 0))
	fullPath := filepath.Join(j.basePath, j.folder, Topic, partitionPath)

	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	file, ok := j.files[partitionPath]
	if !ok {
		file, err = os.OpenFile(filepath.Join(fullPath, "data.json"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		j.files[partitionPath] = file
	}

	// one write per event keeps lines intact under concurrency
	_, err = file.Write(append(jsonData, '\n'))
	return err
}

func (j *JSONSink) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// partition builds the hour partition path in UTC so the layout does not
// shift with the server's timezone.
func partition(t time.Time) string {
	utc := t.UTC()
	year, month, day := utc.Date()
	return fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d", year, month, day, utc.Hour())
}
