package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"lolatlas/pkg/storage"
)

// Logger for the revalidation runs.
// Lines go to a temporary file that is shipped to a bucket after each run, and are echoed to the mirror.
type NewLogger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
	mirror   io.Writer
}

// Create the log instance with a temporary file.
func CreateLogger() (*NewLogger, error) {
	f, err := os.CreateTemp("", "lolatlas-*.log")
	if err != nil {
		return nil, err
	}

	return &NewLogger{
		logFile:  f,
		filePath: f.Name(),
		mirror:   os.Stderr,
	}, nil
}

// SetMirror changes where the lines are echoed, nil disables the echo.
func (l *NewLogger) SetMirror(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mirror = w
}

// Log a simple info.
func (l *NewLogger) Infof(format string, args ...any) {
	l.write("[INFO]", format, args...)
}

// Log a error.
func (l *NewLogger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

// Write something to the logger.
func (l *NewLogger) write(infoType string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
	if l.mirror != nil {
		io.WriteString(l.mirror, line)
	}
}

// Contents returns everything written since the last clean.
func (l *NewLogger) Contents() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Clean the file contents.
func (l *NewLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cleanLocked()
}

func (l *NewLogger) cleanLocked() {
	l.logFile.Truncate(0)
	l.logFile.Seek(0, io.SeekStart)
}

// Upload the log to a bucket and clean the file after sending.
func (l *NewLogger) Upload(ctx context.Context, bucket storage.ObjectPutter, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.logFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if err := bucket.PutObject(ctx, objectKey, l.logFile, "text/plain"); err != nil {
		// Keep writing at the end, the lines will go with the next upload.
		l.logFile.Seek(0, io.SeekEnd)
		return err
	}

	l.cleanLocked()
	return nil
}

// Close removes the temporary file.
func (l *NewLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}
