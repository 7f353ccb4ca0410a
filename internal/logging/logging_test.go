package logging

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
		SetLevel(LevelInfo)
	}()

	SetLevel(LevelInfo)
	Debugf("hidden %d", 1)
	Infof("shown %d", 2)
	Warnf("careful %d", 3)
	assert.Equal(t, "shown 2\nWARN careful 3\n", buf.String())

	buf.Reset()
	SetLevel(LevelWarn)
	Infof("hidden")
	Warnf("still here")
	assert.Equal(t, "WARN still here\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelInfo, ParseLevel("info"))
	assert.Equal(t, LevelInfo, ParseLevel("whatever"))
}

func TestEnabled(t *testing.T) {
	defer SetLevel(LevelInfo)

	SetLevel(LevelInfo)
	assert.False(t, Enabled(LevelDebug))
	assert.True(t, Enabled(LevelInfo))
	assert.True(t, Enabled(LevelWarn))

	SetLevel(LevelDebug)
	assert.True(t, Enabled(LevelDebug))
}
