package testutils

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/boxtree/logger"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// CapturedLogs accumulates the warnings emitted while it is active.
type CapturedLogs struct {
	buf *bytes.Buffer
	out io.Writer
}

// CaptureLogs redirects the warning logger until Logs or AssertNoLogs
// is called.
func CaptureLogs() *CapturedLogs {
	out := logger.WarningLogger.Writer()
	capture := CapturedLogs{buf: new(bytes.Buffer), out: out}
	logger.WarningLogger.SetOutput(capture.buf)
	return &capture
}

// Logs restore the original logger output and returns the captured
// lines.
func (c *CapturedLogs) Logs() []string {
	logger.WarningLogger.SetOutput(c.out)
	s := strings.TrimSuffix(c.buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (c *CapturedLogs) AssertNoLogs(t *testing.T) {
	t.Helper()
	if logs := c.Logs(); len(logs) != 0 {
		t.Fatalf("expected no logs, got (%d): \n %s", len(logs), strings.Join(logs, "\n "))
	}
}
