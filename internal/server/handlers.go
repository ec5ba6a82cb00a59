package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/logger"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

// errNoAPIKeyMessage is the exact error body the dashboard matches on.
const errNoAPIKeyMessage = "OpenAI API key not configured"

// All endpoints answer HTTP 200; failures are reported in an "error" field
// of the body. The dashboard client only inspects the body, never the status
// code, so this contract is preserved as-is.

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Advanced Financial Analyst Multi-Agent System",
		"version": "2.0",
		"endpoints": gin.H{
			"/query":     "Main analysis endpoint",
			"/portfolio": "Portfolio analysis",
			"/technical": "Technical analysis only",
			"/risk":      "Risk assessment only",
			"/sentiment": "Market sentiment only",
			"/history":   "Query history",
			"/alerts":    "Market alerts",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":             "healthy",
		"timestamp":          time.Now().Format(time.RFC3339),
		"agents_ready":       s.memberCount(),
		"api_key_configured": s.cfg.APIKeyConfigured(),
	})
}

func (s *Server) handleTest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_key_loaded":    s.cfg.APIKeyConfigured(),
		"api_key_length":    len(s.cfg.APIKey()),
		"agents_configured": s.memberCount(),
		"system_status":     "operational",
	})
}

func (s *Server) handleSimple(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Advanced Financial Analyst System is operational!",
	})
}

func (s *Server) handleQuery(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	if req.AnalysisType == "" {
		req.AnalysisType = models.AnalysisComprehensive
	}
	if req.Timeframe == "" {
		req.Timeframe = "1y"
	}
	if req.Symbols == nil {
		req.Symbols = []string{}
	}

	if !s.cfg.APIKeyConfigured() || s.team == nil {
		c.JSON(http.StatusOK, gin.H{"error": errNoAPIKeyMessage})
		return
	}

	prompt := ComposeQueryPrompt(req)
	logger.Info("processing analysis query", map[string]interface{}{
		"analysis_type": req.AnalysisType,
		"symbols":       req.Symbols,
		"timeframe":     req.Timeframe,
	})

	response, err := s.team.Run(c.Request.Context(), prompt, req.AnalysisType)
	if err != nil {
		logger.Error("analysis query failed", err, nil)
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	queryID := s.journal.Append(models.QueryRecord{
		Timestamp:      time.Now().Format(time.RFC3339),
		Question:       req.Question,
		AnalysisType:   req.AnalysisType,
		Symbols:        req.Symbols,
		ResponseLength: len(response),
	})

	c.JSON(http.StatusOK, gin.H{
		"response": response,
		"metadata": models.QueryMetadata{
			AnalysisType:    req.AnalysisType,
			SymbolsAnalyzed: req.Symbols,
			Timeframe:       req.Timeframe,
			Timestamp:       time.Now().Format(time.RFC3339),
			QueryID:         queryID,
		},
	})
}

func (s *Server) handlePortfolio(c *gin.Context) {
	var req models.PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	if req.RiskTolerance == "" {
		req.RiskTolerance = models.RiskModerate
	}

	if !s.cfg.APIKeyConfigured() || s.team == nil {
		c.JSON(http.StatusOK, gin.H{"error": errNoAPIKeyMessage})
		return
	}

	prompt := ComposePortfolioPrompt(req)
	logger.Info("processing portfolio analysis", map[string]interface{}{
		"symbols":        req.Symbols,
		"risk_tolerance": req.RiskTolerance,
	})

	// Portfolio requests go to the strategist alone and leave no history
	// record.
	response, err := s.team.RunPortfolio(c.Request.Context(), prompt)
	if err != nil {
		logger.Error("portfolio analysis failed", err, nil)
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

func (s *Server) handleHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": s.journal.Tail(10)})
}

func (s *Server) handleListAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": s.alerts.All()})
}

func (s *Server) handleCreateAlert(c *gin.Context) {
	// Alert bodies are free-form; absent fields get zero-value defaults and
	// the create always succeeds.
	body := map[string]interface{}{}
	_ = c.ShouldBindJSON(&body)

	symbol, _ := body["symbol"].(string)
	condition, _ := body["condition"].(string)
	threshold, _ := body["threshold"].(float64)

	alert := s.alerts.Add(symbol, condition, threshold)
	c.JSON(http.StatusOK, gin.H{
		"message": "Alert created successfully",
		"alert":   alert,
	})
}
