package logutil

import (
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

type recordingLog struct {
	*StderrLog
	lines *[]string
}

func (rl recordingLog) Infof(format string, args ...interface{}) {
	*rl.lines = append(*rl.lines, fmt.Sprintf(format, args...))
}

func TestContextLogAppendsSortedContext(t *testing.T) {
	color.NoColor = true

	var lines []string
	log := WrapLogWithContext(recordingLog{StderrLog: NewStderrLog(""), lines: &lines}, Context{
		"provider_login": "octocat",
		"names":          "a%b",
	})
	log.Infof("deleted %d repos", 2)

	assert.Equal(t, []string{"deleted 2 repos [names=a%b provider_login=octocat]"}, lines)
}

func TestContextLogWithoutContext(t *testing.T) {
	var lines []string
	WrapLogWithContext(recordingLog{StderrLog: NewStderrLog(""), lines: &lines}, Context{}).Infof("ok")
	assert.Equal(t, []string{"ok "}, lines)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("DEBUG", LogLevelInfo))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("warning", LogLevelInfo))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("", LogLevelInfo))
	assert.Equal(t, LogLevelError, ParseLogLevel("nonsense", LogLevelError))
}
