package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAnalysisResultMarshalsUnknownMAs(t *testing.T) {
	snap := NewSecuritySnapshot("X", "X Corp", 100)
	res := AnalysisResult{
		Symbol:       snap.Symbol,
		CompanyName:  snap.CompanyName,
		CurrentPrice: snap.CurrentPrice,
		MA20:         NullableFloat(snap.MA20),
		MA50:         NullableFloat(snap.MA50),
		MA200:        NullableFloat(snap.MA200),
		RSI:          snap.RSI,
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"ma20":null`) {
		t.Fatalf("unknown ma20 should marshal as null, got %s", b)
	}

	var back AnalysisResult
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.MA20 != nil || back.MA50 != nil || back.MA200 != nil {
		t.Fatalf("unknown moving averages should round-trip as nil, got %+v", back)
	}
	if back.CurrentPrice != 100 || back.RSI != 50 {
		t.Fatalf("known fields lost in round trip: %+v", back)
	}
}

func TestNullableFloat(t *testing.T) {
	if NullableFloat(Unknown()) != nil {
		t.Fatalf("unknown sentinel should map to nil")
	}
	p := NullableFloat(42.5)
	if p == nil || *p != 42.5 {
		t.Fatalf("known value should map to its pointer, got %v", p)
	}
}
