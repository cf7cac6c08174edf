package logging

import (
	"bytes"
	"testing"
)

func TestSetVerbose(t *testing.T) {
	SetVerbose(false)
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false before verbose mode is enabled")
	}

	SetVerbose(true)
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true after SetVerbose(true)")
	}

	SetVerbose(false)
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false after SetVerbose(false)")
	}
}

func TestDebugfGatedByVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	previous := out
	out = buf
	defer func() {
		out = previous
		SetVerbose(false)
	}()

	SetVerbose(false)
	Debugf("hidden %s\n", "message")
	if buf.Len() != 0 {
		t.Errorf("Debugf should print nothing when verbose is off, got %q", buf.String())
	}

	SetVerbose(true)
	Debugf("visible %s\n", "message")
	if buf.String() != "visible message\n" {
		t.Errorf("Debugf output = %q, want %q", buf.String(), "visible message\n")
	}
}

func TestDebuglnGatedByVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	previous := out
	out = buf
	defer func() {
		out = previous
		SetVerbose(false)
	}()

	SetVerbose(false)
	Debugln("hidden")
	if buf.Len() != 0 {
		t.Errorf("Debugln should print nothing when verbose is off, got %q", buf.String())
	}

	SetVerbose(true)
	Debugln("visible")
	if buf.String() != "visible\n" {
		t.Errorf("Debugln output = %q, want %q", buf.String(), "visible\n")
	}
}
