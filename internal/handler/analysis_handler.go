package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cming401/qrbot/internal/model"
	"github.com/cming401/qrbot/pkg/llm"
	"github.com/cming401/qrbot/pkg/report"
)

// ClientFactory builds a provider client for one analysis call. The handler
// never holds a credential itself; the key travels with each request.
type ClientFactory func(modelID, apiKey string) (llm.AnalysisClient, error)

type AnalysisHandler struct {
	newClient ClientFactory
}

func NewAnalysisHandler(factory ClientFactory) *AnalysisHandler {
	return &AnalysisHandler{newClient: factory}
}

func toAnalyzeResponse(p model.BlogPost) AnalyzeResponse {
	return AnalyzeResponse{
		BlogPostHTML:  p.HTML,
		ModelUsed:     p.ModelUsed,
		PromptVersion: p.PromptVersion,
		GeneratedAt:   p.GeneratedAt.Format(time.RFC3339),
	}
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.ReportDataURI == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a PDF report to analyze"})
		return
	}

	if req.APIKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "API key is required"})
		return
	}

	data, err := report.ParsePDF(req.ReportDataURI)
	if err != nil {
		slog.Warn("rejected report", "file", req.FileName, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.newClient(req.ModelID, req.APIKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc := model.ReportDocument{
		MIMEType: report.MIMETypePDF,
		Data:     data,
		FileName: req.FileName,
	}

	result, err := client.AnalyzeReport(c.Request.Context(), llm.ReportInput{
		Data:     doc.Data,
		MIMEType: doc.MIMEType,
		FileName: doc.FileName,
	})
	if err != nil {
		slog.Error("error analyzing report", "model", req.ModelID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Analysis failed: " + err.Error()})
		return
	}

	post := model.BlogPost{
		HTML:          result.BlogPostHTML,
		ModelUsed:     result.ModelUsed,
		PromptVersion: result.PromptVersion,
		GeneratedAt:   time.Now().UTC(),
	}

	c.JSON(http.StatusOK, toAnalyzeResponse(post))
}

// Upload accepts a multipart PDF and returns its data URI, so clients that
// cannot encode locally get the same representation Analyze expects.
func (h *AnalysisHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	defer file.Close()

	if contentType := header.Header.Get("Content-Type"); contentType != report.MIMETypePDF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are supported"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("error reading upload", "file", header.Filename, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		ReportDataURI: report.Encode(report.MIMETypePDF, data),
		FileName:      header.Filename,
		Size:          header.Size,
	})
}

func (h *AnalysisHandler) GetModels(c *gin.Context) {
	models := llm.SupportedModels()

	res := make([]ModelResponse, len(models))
	for i, m := range models {
		res[i] = ModelResponse{
			ID:       m.ID,
			Provider: m.Provider,
			Label:    m.Label,
			Default:  m.Default,
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *AnalysisHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
