package kindprovisioner

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/kind/pkg/log"
)

// streamLogger shows kind's console output in real time.
// Info-level messages (V(0)) go to the writer, verbose levels to logrus at debug level.
type streamLogger struct {
	writer io.Writer
	debug  *logrus.Entry
}

var _ log.Logger = (*streamLogger)(nil)

// NewLogger returns a kind logger writing to writer. A nil entry uses the standard logrus logger.
func NewLogger(writer io.Writer, entry *logrus.Entry) log.Logger {
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}

	return &streamLogger{writer: writer, debug: entry.WithField("component", "kind")}
}

func (l *streamLogger) Warn(message string) {
	l.write(message)
}

func (l *streamLogger) Warnf(format string, args ...any) {
	l.write(fmt.Sprintf(format, args...))
}

func (l *streamLogger) Error(message string) {
	l.write(message)
}

func (l *streamLogger) Errorf(format string, args ...any) {
	l.write(fmt.Sprintf(format, args...))
}

func (l *streamLogger) V(level log.Level) log.InfoLogger {
	if level > 0 {
		return debugLogger{entry: l.debug}
	}

	return l
}

func (l *streamLogger) Info(message string) {
	l.write(message)
}

func (l *streamLogger) Infof(format string, args ...any) {
	l.write(fmt.Sprintf(format, args...))
}

func (l *streamLogger) Enabled() bool {
	return true
}

func (l *streamLogger) write(message string) {
	if l == nil || l.writer == nil {
		return
	}

	if message == "" {
		_, _ = io.WriteString(l.writer, "\n")

		return
	}

	// kind's spinner redraws lines with carriage returns
	if strings.ContainsRune(message, '\r') || strings.HasSuffix(message, "\n") {
		_, _ = io.WriteString(l.writer, message)

		return
	}

	_, _ = io.WriteString(l.writer, message+"\n")
}

type debugLogger struct {
	entry *logrus.Entry
}

func (d debugLogger) Info(message string) {
	d.entry.Debug(message)
}

func (d debugLogger) Infof(format string, args ...any) {
	d.entry.Debugf(format, args...)
}

func (d debugLogger) Enabled() bool {
	return d.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
}
