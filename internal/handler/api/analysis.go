package api

import (
	"encoding/json"
	"time"

	models "StockPulse/internal/domain/models"
	icache "StockPulse/internal/service/cache"
	"StockPulse/internal/service/metrics"
	"StockPulse/internal/service/ratelimit"
	"StockPulse/internal/usecase"
	xhttp "StockPulse/pkg/http"
	xlogger "StockPulse/pkg/logger"
	"StockPulse/pkg/queue"
	"StockPulse/pkg/util"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler implements Echo-based HTTP handlers for the analysis API.
type AnalysisHandler struct {
	logger    *xlogger.Logger
	analyzer  *usecase.SecurityAnalyzer
	portfolio *usecase.PortfolioAnalyzeUseCase
	history   *usecase.HistoryUseCase
	refresher queue.QueueService // optional; refresh returns 503 when absent
	cache     icache.BytesCache
	rl        *ratelimit.Limiter
	cacheTTL  time.Duration
}

func NewAnalysisHandler(
	logger *xlogger.Logger,
	analyzer *usecase.SecurityAnalyzer,
	portfolio *usecase.PortfolioAnalyzeUseCase,
	history *usecase.HistoryUseCase,
) *AnalysisHandler {
	metrics.Register()
	return &AnalysisHandler{
		logger:    logger,
		analyzer:  analyzer,
		portfolio: portfolio,
		history:   history,
		rl:        ratelimit.New(),
		cacheTTL:  30 * time.Second,
	}
}

// SetCache injects a response cache.
func (h *AnalysisHandler) SetCache(c icache.BytesCache) { h.cache = c }

// SetCacheTTL overrides the analysis response cache TTL.
func (h *AnalysisHandler) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		h.cacheTTL = ttl
	}
}

// SetRefresher injects the queue used by the refresh endpoint.
func (h *AnalysisHandler) SetRefresher(q queue.QueueService) { h.refresher = q }

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analysis", h.Analyze)
	g.POST("/portfolio", h.Portfolio)
	g.GET("/history", h.History)
	g.POST("/refresh", h.Refresh)
}

func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()
	endpoint := "analysis"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":analysis", 5, 2) {
		h.logger.Warn("analysis rate_limited", xlogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c)
	}

	cacheKey := "analysis:" + req.Symbol
	if b, ok := h.cached(endpoint, cacheKey); ok {
		return xhttp.SuccessResponse(c, json.RawMessage(b))
	}

	res, err := h.analyzer.Analyze(c.Request().Context(), usecase.AnalyzeParams{
		Symbol:           req.Symbol,
		Headlines:        req.Headlines,
		IncludeHeadlines: true,
	})
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("analysis usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	view := newAnalysisView(res)
	h.store(cacheKey, view, h.cacheTTL)
	return xhttp.SuccessResponse(c, view)
}

func (h *AnalysisHandler) Portfolio(c echo.Context) error {
	start := time.Now()
	endpoint := "portfolio"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.PortfolioRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":portfolio", 2, 0.5) {
		h.logger.Warn("portfolio rate_limited", xlogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c)
	}

	res, err := h.portfolio.Analyze(c.Request().Context(), req.Symbols)
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("portfolio usecase error", xlogger.Int("symbols", len(req.Symbols)), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, newPortfolioView(res))
}

func (h *AnalysisHandler) History(c echo.Context) error {
	start := time.Now()
	endpoint := "history"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.HistoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	now := time.Now().UTC()
	p := usecase.GetHistoryParams{
		Symbol: req.Symbol,
		From:   util.ParseTimeDefault(req.From, now.AddDate(0, 0, -7)),
		To:     util.ParseTimeDefault(req.To, now),
		Limit:  req.Limit,
	}
	res, err := h.history.GetHistory(c.Request().Context(), p)
	if err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("history usecase error", xlogger.String("symbol", req.Symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisHandler) Refresh(c echo.Context) error {
	start := time.Now()
	endpoint := "refresh"
	defer func() { metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.RefreshRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.refresher == nil {
		return xhttp.ServiceUnavailableResponse(c)
	}
	if err := h.refresher.PublishMessage(c.Request().Context(), "analysis.refresh", req); err != nil {
		metrics.APIErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("refresh enqueue error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{"enqueued": len(req.Symbols)})
}

func (h *AnalysisHandler) cached(endpoint, key string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	b, ok, err := h.cache.GetBytes(key)
	if err != nil {
		h.logger.Warn("cache get error", xlogger.String("key", key), xlogger.Error(err))
		return nil, false
	}
	if ok {
		metrics.APICacheHits.WithLabelValues(endpoint).Inc()
	}
	return b, ok
}

func (h *AnalysisHandler) store(key string, v interface{}, ttl time.Duration) {
	if h.cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := h.cache.SetBytes(key, b, ttl); err != nil {
		h.logger.Warn("cache set error", xlogger.String("key", key), xlogger.Error(err))
	}
}
