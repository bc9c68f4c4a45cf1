package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edastat/internal/dataset"
	"edastat/internal/quality"
	"edastat/internal/stats"
)

// QualityHandler serves the quality endpoints.
type QualityHandler struct {
	opt Options
}

// NewQualityHandler builds a handler with the given service options.
func NewQualityHandler(opt Options) *QualityHandler {
	return &QualityHandler{opt: opt}
}

// QualityRequest is the JSON body of POST /quality. Threshold fields are
// optional; service defaults apply when omitted.
type QualityRequest struct {
	Summary               stats.DatasetSummary `json:"summary"`
	HighCardinalityUnique *int                 `json:"high_cardinality_unique"`
	HighCardinalityShare  *float64             `json:"high_cardinality_share"`
}

// QualityResponse is the verdict payload of the quality endpoints.
type QualityResponse struct {
	OKForModel   bool          `json:"ok_for_model"`
	QualityScore float64       `json:"quality_score"`
	LatencyMS    int64         `json:"latency_ms"`
	Flags        quality.Flags `json:"flags"`
}

// Health reports service liveness.
// GET /health
func (h *QualityHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Quality scores a precomputed dataset summary.
// POST /quality
func (h *QualityHandler) Quality(c *gin.Context) {
	t0 := time.Now()

	var req QualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: "+err.Error())
		return
	}

	t := h.opt.Thresholds
	if req.HighCardinalityUnique != nil {
		t.HighCardinalityUnique = *req.HighCardinalityUnique
	}
	if req.HighCardinalityShare != nil {
		t.HighCardinalityShare = *req.HighCardinalityShare
	}
	if err := t.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	missing := stats.MissingFromSummary(req.Summary)
	flags := quality.Evaluate(req.Summary, missing, t)

	c.JSON(http.StatusOK, QualityResponse{
		OKForModel:   quality.OKForModel(flags),
		QualityScore: flags.QualityScore,
		LatencyMS:    time.Since(t0).Milliseconds(),
		Flags:        flags,
	})
}

// QualityFromCSV scores an uploaded CSV file.
// POST /quality-from-csv
func (h *QualityHandler) QualityFromCSV(c *gin.Context) {
	t0 := time.Now()

	flags, ok := h.flagsFromUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, QualityResponse{
		OKForModel:   quality.OKForModel(flags),
		QualityScore: flags.QualityScore,
		LatencyMS:    time.Since(t0).Milliseconds(),
		Flags:        flags,
	})
}

// QualityFlagsFromCSV returns the full flag set for an uploaded CSV file.
// POST /quality-flags-from-csv
func (h *QualityHandler) QualityFlagsFromCSV(c *gin.Context) {
	t0 := time.Now()

	flags, ok := h.flagsFromUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"latency_ms": time.Since(t0).Milliseconds(),
		"flags":      flags,
	})
}

// flagsFromUpload reads the multipart CSV, validates thresholds and runs the
// full summarize-and-evaluate path. On failure it writes the error response
// itself and returns ok=false.
func (h *QualityHandler) flagsFromUpload(c *gin.Context) (quality.Flags, bool) {
	t, err := h.thresholdsFromParams(c)
	if err != nil {
		badRequest(c, err.Error())
		return quality.Flags{}, false
	}

	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return quality.Flags{}, false
	}
	if fh.Size == 0 {
		badRequest(c, "empty CSV")
		return quality.Flags{}, false
	}
	if h.opt.MaxUploadBytes > 0 && fh.Size > h.opt.MaxUploadBytes {
		badRequest(c, "upload too large")
		return quality.Flags{}, false
	}

	f, err := fh.Open()
	if err != nil {
		badRequest(c, "cannot read upload: "+err.Error())
		return quality.Flags{}, false
	}
	defer f.Close()

	opt := dataset.DefaultOptions()
	opt.Delimiter = ','
	frame, err := dataset.ReadReader(f, opt)
	if err != nil {
		badRequest(c, "cannot read CSV: "+err.Error())
		return quality.Flags{}, false
	}

	sum := stats.Summarize(frame)
	missing := stats.MissingTable(frame)
	flags := quality.Evaluate(sum, missing, t)

	logrus.WithFields(logrus.Fields{
		"file":   fh.Filename,
		"n_rows": sum.NRows,
		"n_cols": sum.NCols,
		"score":  flags.QualityScore,
	}).Debug("csv upload scored")
	return flags, true
}

// thresholdsFromParams merges query/form threshold overrides onto defaults.
func (h *QualityHandler) thresholdsFromParams(c *gin.Context) (quality.Thresholds, error) {
	t := h.opt.Thresholds
	if v := param(c, "high_cardinality_unique"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return t, errInvalidParam("high_cardinality_unique", v)
		}
		t.HighCardinalityUnique = n
	}
	if v := param(c, "high_cardinality_share"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return t, errInvalidParam("high_cardinality_share", v)
		}
		t.HighCardinalityShare = f
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func errInvalidParam(name, val string) error {
	return fmt.Errorf("invalid %s: %q", name, val)
}

func param(c *gin.Context, name string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return c.PostForm(name)
}

func badRequest(c *gin.Context, msg string) {
	logrus.WithField("request_id", c.GetString(requestIDKey)).Warnf("bad request: %s", msg)
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}
