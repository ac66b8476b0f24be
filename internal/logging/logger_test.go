package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogging(t *testing.T) {
	t.Cleanup(func() { Configure(os.Stderr, false) })
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	assert.False(t, DebugEnabled())

	t.Setenv(DebugEnvVar, "1")
	assert.True(t, DebugEnabled())
}

func TestComponent_VerboseWritesDebug(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	resetLogging(t)

	var buf bytes.Buffer
	Configure(&buf, true)

	Component("analytics").Debug("streak computed", "streak", 3)

	out := buf.String()
	assert.Contains(t, out, "component=analytics")
	assert.Contains(t, out, "streak computed")
	assert.Contains(t, out, "streak=3")
}

func TestComponent_QuietDropsDebug(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	resetLogging(t)

	var buf bytes.Buffer
	Configure(&buf, false)

	logger := Component("store")
	logger.Debug("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_AppliesToExistingLoggers(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	resetLogging(t)

	logger := Component("cli")

	var buf bytes.Buffer
	Configure(&buf, true)
	Debugf("opened %s", "dt.db")
	logger.Debug("after configure")

	assert.Contains(t, buf.String(), "opened dt.db")
	assert.Contains(t, buf.String(), "after configure")
}

func TestConfigure_EnvForcesDebug(t *testing.T) {
	t.Setenv(DebugEnvVar, "1")
	resetLogging(t)

	var buf bytes.Buffer
	Configure(&buf, false)
	Logger().Debug("env debug")

	assert.Contains(t, buf.String(), "env debug")
}
