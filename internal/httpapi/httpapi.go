// Package httpapi exposes the feature extraction over HTTP.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tsawler/entsent"
)

// EntityRequest is an entity as posted by clients. Mentions are
// [start, end) rune offsets.
type EntityRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Mentions  [][2]int `json:"mentions"`
	Sentiment int      `json:"sentiment"`
}

// FeaturesRequest is the body of POST /v1/features.
type FeaturesRequest struct {
	ID       string          `json:"id"`
	Text     string          `json:"text" binding:"required"`
	Language string          `json:"language"`
	Entities []EntityRequest `json:"entities"`
}

// Skipped names an entity that produced no record.
type Skipped struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// FeaturesResponse is the body returned by POST /v1/features.
type FeaturesResponse struct {
	Records []entsent.FeatureRecord `json:"records"`
	Skipped []Skipped               `json:"skipped"`
}

// DecisionRequest is the body of POST /v1/decision.
type DecisionRequest struct {
	Scores []float64 `json:"scores"`
}

// DecisionResponse is the body returned by POST /v1/decision.
type DecisionResponse struct {
	Label    int     `json:"label"`
	Mixed    bool    `json:"mixed"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// Server holds what the handlers need.
type Server struct {
	engine    *entsent.Engine
	segmenter entsent.Segmenter
	logger    *slog.Logger
}

// NewServer creates a server. A nil segmenter selects the Punkt segmenter
// and a nil logger selects slog.Default().
func NewServer(engine *entsent.Engine, segmenter entsent.Segmenter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, segmenter: segmenter, logger: logger}
}

// SetupRouter registers the API routes.
func SetupRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/v1")
	{
		api.POST("/features", s.Features)
		api.POST("/decision", s.Decision)
	}
	return r
}

// NewHTTPServer wraps handler in a server listening on addr.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Features scores every entity of the posted document.
func (s *Server) Features(c *gin.Context) {
	var req FeaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := entsent.Language(req.Language)
	if lang == "" {
		lang = entsent.English
	}
	if !s.engine.Supports(lang) {
		c.JSON(http.StatusBadRequest, gin.H{"error": entsent.FormatLanguageError(lang).Error()})
		return
	}

	doc, err := entsent.NewDocument(req.Text,
		entsent.WithID(req.ID),
		entsent.WithLanguage(lang),
		entsent.WithContext(c.Request.Context()),
		entsent.UsingSegmenter(s.segmenter),
	)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entsent.ErrEmptyDocument) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := FeaturesResponse{
		Records: []entsent.FeatureRecord{},
		Skipped: []Skipped{},
	}
	for _, er := range req.Entities {
		e := toEntity(er)
		if !e.Scorable() {
			resp.Skipped = append(resp.Skipped, Skipped{ID: e.ID, Reason: entsent.ErrUnscorableEntity.Error()})
			continue
		}
		rec, err := s.engine.Features(e, doc)
		if errors.Is(err, entsent.ErrNoScorableMentions) {
			resp.Skipped = append(resp.Skipped, Skipped{ID: e.ID, Reason: entsent.ErrNoScorableMentions.Error()})
			continue
		}
		if err != nil {
			s.logger.Error("feature extraction failed", "doc", req.ID, "entity", e.ID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		resp.Records = append(resp.Records, rec)
	}

	c.JSON(http.StatusOK, resp)
}

// Decision reduces posted anchor scores to a sentiment decision.
func (s *Server) Decision(c *gin.Context) {
	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := entsent.Reduce(req.Scores, entsent.DefaultThresholds())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, DecisionResponse{
		Label:    int(d.Label),
		Mixed:    d.Mixed,
		Mean:     d.Mean,
		Variance: d.Variance,
	})
}

func toEntity(er EntityRequest) entsent.Entity {
	mentions := make([]entsent.Span, 0, len(er.Mentions))
	for _, m := range er.Mentions {
		mentions = append(mentions, entsent.Span{Start: m[0], End: m[1]})
	}
	return entsent.Entity{
		ID:       er.ID,
		Name:     er.Name,
		Type:     entsent.EntityType(er.Type),
		Mentions: mentions,
		Rating:   er.Sentiment,
	}
}
