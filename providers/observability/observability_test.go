package observability

import (
	"errors"
	"testing"
	"time"
)

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name      string
		attr      Attribute
		wantKey   string
		wantValue interface{}
	}{
		{name: "String", attr: String("k", "v"), wantKey: "k", wantValue: "v"},
		{name: "Int", attr: Int("count", 42), wantKey: "count", wantValue: 42},
		{name: "Int64", attr: Int64("big", int64(1 << 40)), wantKey: "big", wantValue: int64(1 << 40)},
		{name: "Bool", attr: Bool("flag", true), wantKey: "flag", wantValue: true},
		{name: "Duration", attr: Duration("elapsed", time.Second), wantKey: "elapsed", wantValue: time.Second},
		{name: "Error", attr: Error(errors.New("boom")), wantKey: "error", wantValue: "boom"},
		{name: "nil Error", attr: Error(nil), wantKey: "error", wantValue: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.wantValue)
			}
		})
	}
}
