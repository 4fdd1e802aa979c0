package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerPrefixesLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf)

	l.Infof("hello %s", "world")
	l.Errorf("boom")
	l.Debugf("pc=%04X", 0x100)

	out := buf.String()
	assert.Contains(t, out, "[INFO]\thello world\n")
	assert.Contains(t, out, "[ERROR]\tboom\n")
	assert.Contains(t, out, "[DEBUG]\tpc=0100\n")
}

func TestNullLoggerDiscards(t *testing.T) {
	l := NewNullLogger()

	assert.NotPanics(t, func() {
		l.Infof("discarded")
		l.Errorf("discarded")
		l.Debugf("discarded")
	})
}
