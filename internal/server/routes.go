package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/theirongolddev/breakeven/internal/export"
	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/pipeline"
)

func (s *Service) routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(instrument(s.metrics, s.log))
	r.Use(cors.New(s.corsConfig()))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok\n")
	})
	r.GET("/metrics", s.metrics.handler())

	v1 := r.Group("/v1")
	v1.GET("/status", s.handleStatus)
	v1.GET("/events", s.handleEvents)
	v1.GET("/stream", s.handleStream)

	v1.GET("/budget", s.handleBudget)
	v1.GET("/projection", s.handleProjection)
	v1.GET("/breakdown", s.handleBreakdown)
	v1.GET("/export.xlsx", s.handleExport)

	v1.GET("/assumptions", s.handleGetAssumptions)
	v1.PATCH("/assumptions", s.handlePatchAssumptions)

	col := v1.Group("/collections/:collection", s.requireCollection)
	col.GET("", s.handleList)
	col.POST("", s.handleCreate)
	col.PATCH("/:id", s.handleUpdate)
	col.DELETE("/:id", s.handleRemove)

	return r
}

func (s *Service) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if len(s.cfg.CORSOrigins) > 0 {
		cfg.AllowOrigins = s.cfg.CORSOrigins
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}

func (s *Service) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleEvents(c *gin.Context) {
	c.JSON(http.StatusOK, s.recentEvents())
}

func (s *Service) handleStream(c *gin.Context) {
	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Send current state immediately.
	c.SSEvent("snapshot", Event{
		Type:       "snapshot",
		Timestamp:  time.Now(),
		Projection: pipeline.AggregateBudget(s.store.Snapshot()),
	})
	c.Writer.Flush()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev := <-ch:
			c.SSEvent(ev.Type, ev)
			return true
		}
	})
}

func (s *Service) handleBudget(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Snapshot())
}

func (s *Service) handleProjection(c *gin.Context) {
	c.JSON(http.StatusOK, pipeline.AggregateBudget(s.store.Snapshot()))
}

// Breakdown is the per-line view of every collection.
type Breakdown struct {
	Operating  model.OperatingSummary `json:"operating"`
	Direct     []model.LineCost       `json:"direct"`
	Collateral []model.LineCost       `json:"collateral"`
	Services   []model.LineCost       `json:"services"`
	Marketing  []model.LineCost       `json:"marketing"`
}

func (s *Service) handleBreakdown(c *gin.Context) {
	b := s.store.Snapshot()
	c.JSON(http.StatusOK, Breakdown{
		Operating:  pipeline.SummarizeOperating(b.Operating),
		Direct:     pipeline.DirectLines(b.Direct),
		Collateral: pipeline.CollateralLines(b.Collateral),
		Services:   pipeline.ServiceLines(b.Services),
		Marketing:  pipeline.MarketingLines(b.Marketing),
	})
}

func (s *Service) handleExport(c *gin.Context) {
	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", "attachment; filename=breakeven.xlsx")
	if err := export.Write(c.Writer, s.store.Snapshot()); err != nil {
		s.log.Error("export failed", zap.Error(err))
		_ = c.AbortWithError(http.StatusInternalServerError, err)
	}
}
