package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/middleware"
	"github.com/guttosm/stockpulse/internal/service"
)

// Handler provides HTTP handlers for the market analysis endpoints.
//
// Responsibilities:
//   - Validate path and query parameters
//   - Delegate to the analysis service
//   - Translate domain results into response DTOs
//   - Map domain errors onto HTTP status codes
type Handler struct {
	svc service.AnalysisService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.AnalysisService) *Handler {
	return &Handler{svc: svc}
}

// GetQuote godoc
// @Summary      Latest quote
// @Description  Returns the latest quote snapshot for a symbol
// @Tags         market
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol" example(IBM)
// @Success      200     {object}  dto.QuoteResponse
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      503     {object}  dto.ErrorResponse  "Provider rate limited"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/quote/{symbol} [get]
func (h *Handler) GetQuote(c *gin.Context) {
	q, err := h.svc.Quote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// GetAnalysis godoc
// @Summary      Analyze a symbol
// @Description  Fetches the daily series, computes MA/RSI and returns the sentiment summary of the latest session
// @Tags         analysis
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol" example(IBM)
// @Success      200     {object}  dto.AnalysisResponse
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      422     {object}  dto.ErrorResponse  "Insufficient history"
// @Failure      502     {object}  dto.ErrorResponse  "Malformed upstream series"
// @Failure      503     {object}  dto.ErrorResponse  "Provider rate limited"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/analyze/{symbol} [get]
func (h *Handler) GetAnalysis(c *gin.Context) {
	summary, err := h.svc.Analyze(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAnalysisResponse(summary))
}

// GetHistorical godoc
// @Summary      Indicator series
// @Description  Returns every bar of the daily series with MA and RSI at full precision, oldest first
// @Tags         analysis
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol" example(IBM)
// @Success      200     {array}   dto.IndicatorPoint
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      502     {object}  dto.ErrorResponse  "Malformed upstream series"
// @Failure      503     {object}  dto.ErrorResponse  "Provider rate limited"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/historical/{symbol} [get]
func (h *Handler) GetHistorical(c *gin.Context) {
	rows, err := h.svc.Historical(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewIndicatorPoints(rows))
}

// GetBatchAnalysis godoc
// @Summary      Analyze several symbols
// @Description  Analyzes each distinct symbol independently; a failing symbol carries its own error
// @Tags         analysis
// @Produce      json
// @Param        symbols  query     string  true  "Comma-separated tickers" example(AAPL,MSFT)
// @Success      200      {object}  dto.BatchResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/analyze [get]
func (h *Handler) GetBatchAnalysis(c *gin.Context) {
	symbols := strings.Split(c.Query("symbols"), ",")
	results, err := h.svc.AnalyzeBatch(c.Request.Context(), symbols)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := dto.BatchResponse{Results: make([]dto.BatchItem, 0, len(results))}
	for _, r := range results {
		item := dto.BatchItem{Symbol: r.Symbol}
		if r.Err != nil {
			_, msg := statusFor(r.Err)
			e := dto.NewErrorResponse(msg, r.Err)
			item.Error = &e
		} else {
			s := dto.FromSummary(r.Summary)
			item.Analysis = &s
		}
		resp.Results = append(resp.Results, item)
	}
	c.JSON(http.StatusOK, resp)
}

// GetHistory godoc
// @Summary      Analysis log
// @Description  Returns previously recorded analyses for a symbol, newest first. Empty when the log is disabled.
// @Tags         analysis
// @Produce      json
// @Param        symbol  path      string  true   "Ticker symbol" example(IBM)
// @Param        limit   query     int     false  "Maximum entries (default 20, max 100)" example(10)
// @Success      200     {object}  dto.HistoryResponse
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/history/{symbol} [get]
func (h *Handler) GetHistory(c *gin.Context) {
	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "limit must be a positive integer", err)
		return
	}

	records, err := h.svc.History(c.Request.Context(), c.Param("symbol"), q.Limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	symbol, _ := service.NormalizeSymbol(c.Param("symbol"))
	c.JSON(http.StatusOK, dto.NewHistoryResponse(symbol, records))
}

// historyQuery binds GET /api/v1/history query parameters. Zero means the
// service default.
type historyQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, msg := statusFor(err)
	middleware.AbortWithError(c, status, msg, err)
}
