package logger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// LogEntry represents a single log entry in the buffer
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Logger    string                 `json:"logger,omitempty"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// LogBuffer is a thread-safe ring buffer of log entries. Entries pushed out
// of the ring are appended to a spill file. It implements io.Writer so a zap
// JSON core can write into it.
type LogBuffer struct {
	mu           sync.Mutex
	ringBuffer   []LogEntry
	maxSize      int
	currentIndex int
	wrapped      bool
	spillFile    *os.File
	spillWriter  *bufio.Writer
	logger       *zap.Logger

	// Stats
	totalEntries   uint64
	spilledEntries uint64
}

// NewLogBuffer creates a new log buffer with the specified size
func NewLogBuffer(maxSize int, spillFilePath string, logger *zap.Logger) (*LogBuffer, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("invalid buffer size %d", maxSize)
	}

	dir := filepath.Dir(spillFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	spillFile, err := os.OpenFile(spillFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open spill file: %w", err)
	}

	return &LogBuffer{
		ringBuffer:  make([]LogEntry, maxSize),
		maxSize:     maxSize,
		spillFile:   spillFile,
		spillWriter: bufio.NewWriter(spillFile),
		logger:      logger,
	}, nil
}

// Write decodes one zap JSON line and adds it to the buffer. Lines that are
// not JSON objects are kept verbatim as the message.
func (lb *LogBuffer) Write(p []byte) (int, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(p, &raw); err != nil {
		return len(p), lb.add(LogEntry{Timestamp: time.Now(), Level: "info", Message: string(p)})
	}

	entry := LogEntry{Timestamp: time.Now()}
	if v, ok := raw["level"].(string); ok {
		entry.Level = v
	}
	if v, ok := raw["msg"].(string); ok {
		entry.Message = v
	}
	if v, ok := raw["logger"].(string); ok {
		entry.Logger = v
	}
	if v, ok := raw["time"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			entry.Timestamp = ts
		}
	}
	delete(raw, "level")
	delete(raw, "msg")
	delete(raw, "logger")
	delete(raw, "time")
	if len(raw) > 0 {
		entry.Fields = raw
	}

	return len(p), lb.add(entry)
}

// Add adds a new log entry to the buffer
func (lb *LogBuffer) Add(level, message string, fields map[string]interface{}) error {
	return lb.add(LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    fields,
	})
}

func (lb *LogBuffer) add(entry LogEntry) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	// The slot about to be overwritten holds the oldest entry once wrapped.
	if lb.wrapped {
		if err := lb.spillToFile(lb.ringBuffer[lb.currentIndex]); err != nil {
			lb.logger.Error("Failed to spill log entry to file", zap.Error(err))
			return err
		}
		lb.spilledEntries++
	}

	lb.ringBuffer[lb.currentIndex] = entry
	lb.currentIndex = (lb.currentIndex + 1) % lb.maxSize
	if lb.currentIndex == 0 {
		lb.wrapped = true
	}
	lb.totalEntries++

	return nil
}

// spillToFile writes an entry to the spill file
func (lb *LogBuffer) spillToFile(entry LogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	if _, err := lb.spillWriter.Write(data); err != nil {
		return fmt.Errorf("failed to write to spill file: %w", err)
	}

	if _, err := lb.spillWriter.WriteString("\n"); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	// Flushed periodically, not per entry.
	return nil
}

// GetRecentLogs returns up to limit of the newest entries, oldest first.
// A limit <= 0 returns everything in the ring.
func (lb *LogBuffer) GetRecentLogs(limit int) []LogEntry {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	count := lb.currentIndex
	startIndex := 0
	if lb.wrapped {
		count = lb.maxSize
		startIndex = lb.currentIndex
	}

	if limit > 0 && limit < count {
		startIndex += count - limit
		count = limit
	}

	logs := make([]LogEntry, 0, count)
	for i := 0; i < count; i++ {
		logs = append(logs, lb.ringBuffer[(startIndex+i)%lb.maxSize])
	}
	return logs
}

// Flush forces a write of any buffered data to the spill file
func (lb *LogBuffer) Flush() error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if err := lb.spillWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush spill writer: %w", err)
	}

	if err := lb.spillFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync spill file: %w", err)
	}

	return nil
}

// Sync implements zapcore.WriteSyncer.
func (lb *LogBuffer) Sync() error {
	return lb.Flush()
}

// Close writes the remaining ring entries to the spill file and closes it.
func (lb *LogBuffer) Close() error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	count, start := lb.currentIndex, 0
	if lb.wrapped {
		count, start = lb.maxSize, lb.currentIndex
	}
	for i := 0; i < count; i++ {
		if err := lb.spillToFile(lb.ringBuffer[(start+i)%lb.maxSize]); err != nil {
			lb.logger.Error("Failed to spill entry during close", zap.Error(err))
		}
	}

	if err := lb.spillWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush during close: %w", err)
	}

	if err := lb.spillFile.Close(); err != nil {
		return fmt.Errorf("failed to close spill file: %w", err)
	}

	lb.logger.Debug("Log buffer closed",
		zap.Uint64("totalEntries", lb.totalEntries),
		zap.Uint64("spilledEntries", lb.spilledEntries))

	return nil
}

// GetStats returns buffer statistics
func (lb *LogBuffer) GetStats() (total, spilled uint64) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.totalEntries, lb.spilledEntries
}

// StartPeriodicFlush starts a goroutine that periodically flushes the buffer.
// Close the returned channel to stop it.
func (lb *LogBuffer) StartPeriodicFlush(interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := lb.Flush(); err != nil {
					lb.logger.Error("Periodic flush failed", zap.Error(err))
				}
			case <-done:
				return
			}
		}
	}()

	return done
}
