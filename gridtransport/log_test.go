package gridtransport

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestDebugfVerboseGate(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	defer SetLogMode(DebugMode)
	defer func() { Verbose = false }()

	SetLogMode(InfoMode)
	Verbose = false
	Debugf("quiet message\n")
	if buf.Len() != 0 {
		t.Errorf("Debug message logged at info mode without verbose: %q\n", buf.String())
	}

	Verbose = true
	Debugf("verbose message\n")
	if !strings.Contains(buf.String(), "verbose message") {
		t.Errorf("Verbose flag did not force debug message, log was %q\n", buf.String())
	}

	buf.Reset()
	timedLog := NewTimeLog()
	timedLog.Debugf("timed verbose message")
	if !strings.Contains(buf.String(), "timed verbose message") {
		t.Errorf("Verbose flag did not force timed debug message, log was %q\n", buf.String())
	}
}
