package models

// Requests for analysis HTTP endpoints. Defined in domain for consistency and reuse.

type AnalyzeRequest struct {
	Symbol    string `query:"symbol" json:"symbol" validate:"required"`
	Headlines int    `query:"headlines" json:"headlines" default:"10" validate:"gte=0,lte=50"`
}

type PortfolioRequest struct {
	Symbols   []string `json:"symbols" validate:"required,min=1,max=50,dive,required"`
	Headlines int      `json:"headlines" default:"10" validate:"gte=0,lte=50"`
}

type HistoryRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	From   string `query:"from" json:"from"`
	To     string `query:"to" json:"to"`
	Limit  int    `query:"limit" json:"limit" default:"100" validate:"gte=1,lte=1000"`
}

type RefreshRequest struct {
	Symbols []string `json:"symbols" validate:"required,min=1,max=50,dive,required"`
}
