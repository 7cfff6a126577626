package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriter_TagsService(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(&buf, "inventory", "debug")
	lg.Debug().Int(PRODUCT_ID, 2).Msg("lookup")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if entry[SERVICE] != "inventory" {
		t.Fatalf("svc=%v", entry[SERVICE])
	}
	if entry[PRODUCT_ID] != float64(2) {
		t.Fatalf("product_id=%v", entry[PRODUCT_ID])
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("missing timestamp: %v", entry)
	}
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(&buf, "frontend", "bogus")
	lg.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered at default info level, got %q", buf.String())
	}
	lg.Info().Msg("shown")
	if buf.Len() == 0 {
		t.Fatalf("info should be written")
	}
}
