package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/agents"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/store"
)

// TeamRunner is the analysis capability the HTTP layer depends on.
type TeamRunner interface {
	Run(ctx context.Context, prompt, analysisType string) (string, error)
	RunPortfolio(ctx context.Context, prompt string) (string, error)
	MemberCount() int
}

// Server wires the analysis team and the in-memory journals behind the HTTP
// API. team may be nil when no provider credential is configured; the query
// endpoints then answer with the configuration error.
type Server struct {
	cfg     *config.Config
	team    TeamRunner
	journal *store.QueryJournal
	alerts  *store.AlertBook
}

func New(cfg *config.Config, team TeamRunner) *Server {
	return &Server{
		cfg:     cfg,
		team:    team,
		journal: store.NewQueryJournal(store.DefaultCapacity),
		alerts:  store.NewAlertBook(),
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.GET("/test", s.handleTest)
	r.GET("/simple", s.handleSimple)
	r.POST("/query", s.handleQuery)
	r.POST("/portfolio", s.handlePortfolio)
	r.GET("/history", s.handleHistory)
	r.GET("/alerts", s.handleListAlerts)
	r.POST("/alerts", s.handleCreateAlert)

	return r
}

func (s *Server) memberCount() int {
	if s.team != nil {
		return s.team.MemberCount()
	}
	return len(agents.MemberNames)
}
