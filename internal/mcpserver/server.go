// Package mcpserver exposes the analysis service to AI assistants over the
// Model Context Protocol: two tools returning JSON and two resource
// templates returning plain-text reports.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/indicator"
	"github.com/guttosm/stockpulse/internal/logger"
	"github.com/guttosm/stockpulse/internal/service"
)

const (
	ServerName    = "Stock Analysis Server"
	ServerVersion = "1.0.0"

	ToolQuote   = "get_stock_quote"
	ToolAnalyze = "analyze_stock"

	QuoteTemplate    = "stock://{symbol}/quote"
	AnalysisTemplate = "stock://{symbol}/analysis"

	resourceScheme = "stock://"
)

// ErrBadResourceURI is returned when a resource URI does not carry a symbol.
var ErrBadResourceURI = errors.New("resource uri must look like stock://{symbol}/{quote|analysis}")

// Handlers adapts service.AnalysisService to MCP tool and resource handlers.
type Handlers struct {
	svc     service.AnalysisService
	printer *message.Printer
}

func NewHandlers(svc service.AnalysisService) *Handlers {
	return &Handlers{svc: svc, printer: message.NewPrinter(language.English)}
}

// New builds an MCP server with every tool and resource template registered.
func New(svc service.AnalysisService) *server.MCPServer {
	h := NewHandlers(svc)
	s := server.NewMCPServer(ServerName, ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Stock market analysis using Alpha Vantage daily data: quotes, moving averages, RSI and a sentiment label."),
		server.WithRecovery(),
	)

	symbolArg := mcp.WithString("symbol",
		mcp.Required(),
		mcp.Description("The stock symbol to look up (e.g. AAPL, MSFT, GOOGL)"),
	)
	s.AddTool(mcp.NewTool(ToolQuote,
		mcp.WithDescription("Get the latest stock quote for a symbol."),
		symbolArg,
	), h.QuoteTool)
	s.AddTool(mcp.NewTool(ToolAnalyze,
		mcp.WithDescription("Get a technical analysis of a symbol: moving averages, RSI, daily change and sentiment."),
		symbolArg,
	), h.AnalyzeTool)

	s.AddResourceTemplate(mcp.NewResourceTemplate(QuoteTemplate, "Stock quote",
		mcp.WithTemplateDescription("Latest quote for a symbol as a text report"),
		mcp.WithTemplateMIMEType("text/plain"),
	), h.QuoteResource)
	s.AddResourceTemplate(mcp.NewResourceTemplate(AnalysisTemplate, "Stock analysis",
		mcp.WithTemplateDescription("Technical analysis for a symbol as a text report"),
		mcp.WithTemplateMIMEType("text/plain"),
	), h.AnalysisResource)

	return s
}

// ServeStdio runs s over newline-delimited JSON-RPC on in/out until ctx is
// done or in is closed. Logs must not be written to out.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	logger.L().Info().Str("server", ServerName).Msg("mcp server listening on stdio")
	return server.NewStdioServer(s).Listen(ctx, in, out)
}

// QuoteTool answers get_stock_quote with the JSON form of the quote.
func (h *Handlers) QuoteTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, err := req.RequireString("symbol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log := logger.Symbol(strings.ToUpper(symbol))
	log.Info().Str("tool", ToolQuote).Msg("mcp tool call")

	q, err := h.svc.Quote(ctx, symbol)
	if err != nil {
		log.Error().Err(err).Str("tool", ToolQuote).Msg("quote failed")
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	return jsonResult(dto.NewQuoteResponse(q))
}

// AnalyzeTool answers analyze_stock with the same body as
// GET /api/v1/analyze/{symbol}.
func (h *Handlers) AnalyzeTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, err := req.RequireString("symbol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	log := logger.Symbol(strings.ToUpper(symbol))
	log.Info().Str("tool", ToolAnalyze).Msg("mcp tool call")

	summary, err := h.svc.Analyze(ctx, symbol)
	if err != nil {
		log.Error().Err(err).Str("tool", ToolAnalyze).Msg("analysis failed")
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	return jsonResult(dto.NewAnalysisResponse(summary))
}

// QuoteResource renders stock://{symbol}/quote. Service failures become an
// "Error: ..." report rather than a protocol error.
func (h *Handlers) QuoteResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	symbol, err := SymbolFromURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	q, err := h.svc.Quote(ctx, symbol)
	if err != nil {
		return textContents(req.Params.URI, "Error: "+errorMessage(err)), nil
	}
	return textContents(req.Params.URI, h.formatQuote(q)), nil
}

// AnalysisResource renders stock://{symbol}/analysis.
func (h *Handlers) AnalysisResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	symbol, err := SymbolFromURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	summary, err := h.svc.Analyze(ctx, symbol)
	if err != nil {
		return textContents(req.Params.URI, "Error: "+errorMessage(err)), nil
	}
	return textContents(req.Params.URI, formatAnalysis(summary)), nil
}

// SymbolFromURI extracts the upper-cased ticker from stock://{symbol}/... .
func SymbolFromURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, resourceScheme)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadResourceURI, uri)
	}
	symbol, _, _ := strings.Cut(rest, "/")
	sym, err := service.NormalizeSymbol(symbol)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadResourceURI, uri)
	}
	return sym, nil
}

func (h *Handlers) formatQuote(q *models.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stock Quote: %s\n", q.Symbol)
	fmt.Fprintf(&b, "Price: $%.2f\n", q.Price)
	fmt.Fprintf(&b, "Change: %.2f (%s)\n", q.Change, q.ChangePercent)
	b.WriteString(h.printer.Sprintf("Volume: %d\n", q.Volume))
	fmt.Fprintf(&b, "Latest Trading Day: %s\n", q.LatestTradingDay)
	return b.String()
}

func formatAnalysis(s *models.AnalysisSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stock Analysis: %s\n", s.Symbol)
	fmt.Fprintf(&b, "Latest Date: %s\n", s.LatestDate.Format(models.DateLayout))
	fmt.Fprintf(&b, "Price: $%.2f\n", s.LatestPrice)
	fmt.Fprintf(&b, "Daily Change: %s\n", optional(s.DailyChangePercent.Valid, s.DailyChangePercent.Float64, "%"))
	fmt.Fprintf(&b, "Sentiment: %s\n", s.Sentiment)
	fmt.Fprintf(&b, "RSI: %s\n", optional(s.CurrentRSI.Valid, s.CurrentRSI.Float64, ""))
	fmt.Fprintf(&b, "Short MA: %s\n", optional(s.MAShort.Valid, s.MAShort.Float64, ""))
	fmt.Fprintf(&b, "Long MA: %s\n", optional(s.MALong.Valid, s.MALong.Float64, ""))
	return b.String()
}

func optional(valid bool, v float64, suffix string) string {
	if !valid {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%s", v, suffix)
}

func errorMessage(err error) string {
	if errors.Is(err, indicator.ErrInsufficientHistory) {
		return indicator.InsufficientData
	}
	return err.Error()
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

func textContents(uri, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{URI: uri, MIMEType: "text/plain", Text: text},
	}
}
