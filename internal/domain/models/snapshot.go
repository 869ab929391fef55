package models

import "math"

// Unknown returns the sentinel used for optional numeric fields that were
// not supplied by the market-data collaborator.
func Unknown() float64 { return math.NaN() }

// IsUnknown reports whether v carries the unknown sentinel.
func IsUnknown(v float64) bool { return math.IsNaN(v) }

// NullableFloat converts an optional value for JSON boundaries: the unknown
// sentinel becomes nil (marshals as null), anything else a pointer to v.
func NullableFloat(v float64) *float64 {
	if IsUnknown(v) {
		return nil
	}
	return &v
}

// PriceChanges bundles trailing percentage price changes per bucket.
type PriceChanges struct {
	OneDay     float64 `json:"price_change_1d"`
	FiveDay    float64 `json:"price_change_5d"`
	OneMonth   float64 `json:"price_change_1m"`
	ThreeMonth float64 `json:"price_change_3m"`
	SixMonth   float64 `json:"price_change_6m"`
	OneYear    float64 `json:"price_change_1y"`
}

// SecuritySnapshot is the per-ticker market-data bundle the scoring engine
// consumes. CurrentPrice and CompanyName are required; the moving averages
// may carry the unknown sentinel, in which case downstream defaults them to
// CurrentPrice. RSI defaults to 50, volatility and volumes to 0.
type SecuritySnapshot struct {
	Symbol       string
	CompanyName  string
	CurrentPrice float64
	MA20         float64 // unknown sentinel when not computed
	MA50         float64
	MA200        float64
	RSI          float64 // [0,100]
	Volatility   float64
	Volume       float64
	AvgVolume    float64
	Changes      PriceChanges
}

// NewSecuritySnapshot builds a snapshot with only the required fields set
// and every optional field at its documented default.
func NewSecuritySnapshot(symbol, companyName string, price float64) SecuritySnapshot {
	return SecuritySnapshot{
		Symbol:       symbol,
		CompanyName:  companyName,
		CurrentPrice: price,
		MA20:         Unknown(),
		MA50:         Unknown(),
		MA200:        Unknown(),
		RSI:          50,
	}
}

// SnapshotMessage is the wire schema for snapshot updates arriving over
// Kafka or HTTP. Optionals are pointers so absence is distinguishable from
// zero; ToSnapshot applies the documented defaults.
type SnapshotMessage struct {
	Symbol       string   `json:"symbol"`
	CompanyName  string   `json:"company_name"`
	CurrentPrice float64  `json:"current_price"`
	MA20         *float64 `json:"ma20,omitempty"`
	MA50         *float64 `json:"ma50,omitempty"`
	MA200        *float64 `json:"ma200,omitempty"`
	RSI          *float64 `json:"rsi,omitempty"`
	Volatility   *float64 `json:"volatility,omitempty"`
	Volume       *float64 `json:"volume,omitempty"`
	AvgVolume    *float64 `json:"avg_volume,omitempty"`
	Change1D     *float64 `json:"price_change_1d,omitempty"`
	Change5D     *float64 `json:"price_change_5d,omitempty"`
	Change1M     *float64 `json:"price_change_1m,omitempty"`
	Change3M     *float64 `json:"price_change_3m,omitempty"`
	Change6M     *float64 `json:"price_change_6m,omitempty"`
	Change1Y     *float64 `json:"price_change_1y,omitempty"`
}

// ToSnapshot converts the wire message into a SecuritySnapshot with defaults
// applied for every absent optional field.
func (m *SnapshotMessage) ToSnapshot() SecuritySnapshot {
	s := NewSecuritySnapshot(m.Symbol, m.CompanyName, m.CurrentPrice)
	if m.MA20 != nil {
		s.MA20 = *m.MA20
	}
	if m.MA50 != nil {
		s.MA50 = *m.MA50
	}
	if m.MA200 != nil {
		s.MA200 = *m.MA200
	}
	if m.RSI != nil {
		s.RSI = *m.RSI
	}
	if m.Volatility != nil {
		s.Volatility = *m.Volatility
	}
	if m.Volume != nil {
		s.Volume = *m.Volume
	}
	if m.AvgVolume != nil {
		s.AvgVolume = *m.AvgVolume
	}
	s.Changes = PriceChanges{
		OneDay:     deref(m.Change1D),
		FiveDay:    deref(m.Change5D),
		OneMonth:   deref(m.Change1M),
		ThreeMonth: deref(m.Change3M),
		SixMonth:   deref(m.Change6M),
		OneYear:    deref(m.Change1Y),
	}
	return s
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Quote is a single live price/volume update from the market feed.
type Quote struct {
	Symbol    string
	Timestamp int64 // unix seconds
	Price     float64
	Volume    float64
}
