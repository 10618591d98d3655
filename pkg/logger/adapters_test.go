package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debug(message interface{}, args ...interface{}) {
	r.lines = append(r.lines, "debug:"+fmt.Sprintf(fmt.Sprint(message), args...))
}

func (r *recordingLogger) Info(message string, args ...interface{}) {
	r.lines = append(r.lines, "info:"+fmt.Sprintf(message, args...))
}

func (r *recordingLogger) Warn(message string, args ...interface{}) {
	r.lines = append(r.lines, "warn:"+fmt.Sprintf(message, args...))
}

func (r *recordingLogger) Error(message interface{}, args ...interface{}) {
	r.lines = append(r.lines, "error:"+fmt.Sprintf(fmt.Sprint(message), args...))
}

func (r *recordingLogger) Fatal(message interface{}, args ...interface{}) {
	r.lines = append(r.lines, "fatal:"+fmt.Sprintf(fmt.Sprint(message), args...))
}

func TestWriterAdapterTrimsAndRoutes(t *testing.T) {
	t.Parallel()

	rec := &recordingLogger{}

	n, err := writerAdapter{l: rec, level: adapterLevelWarn}.Write([]byte("100% done\r\n"))
	assert.NoError(t, err)
	assert.Equal(t, 11, n)

	_, _ = writerAdapter{l: rec, level: adapterLevelInfo}.Write([]byte("GET /healthz\n"))
	_, _ = writerAdapter{l: rec, level: adapterLevelError}.Write([]byte("boom"))

	assert.Equal(t, []string{"warn:100% done", "info:GET /healthz", "error:boom"}, rec.lines)
}
