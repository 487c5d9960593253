package applog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLevel("info")

	msg := "composite capture wrote 2200x2840 (100.0% of document) scale=2"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of document)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestSetLevel_FiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLevel("error")
	defer SetLevel("info")

	Debugf("hidden %d", 1)
	Infof("hidden %d", 2)
	Warnf("hidden %d", 3)
	Errorf("visible %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("messages below level leaked: %s", out)
	}
	if !strings.Contains(out, "[ERROR] visible 4") {
		t.Fatalf("error message missing: %s", out)
	}
	if GetLevel() != LevelError {
		t.Fatalf("GetLevel mismatch: %v", GetLevel())
	}
}

func TestSetLevel_IgnoresUnknownName(t *testing.T) {
	SetLevel("info")
	SetLevel("bogus")
	if GetLevel() != LevelInfo {
		t.Fatalf("unknown level name should not change level, got %v", GetLevel())
	}
}
