package http

import (
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-sitegen/internal/domain/contact"
	"github.com/yanqian/ai-sitegen/internal/domain/sitegen"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	sitegenSvc sitegen.Service
	contactSvc contact.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(sitegenSvc sitegen.Service, contactSvc contact.Service, logger *slog.Logger) *Handler {
	return &Handler{
		sitegenSvc: sitegenSvc,
		contactSvc: contactSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// GenerateSite turns a prompt into website data plus rendered HTML and CSS.
func (h *Handler) GenerateSite(c *gin.Context) {
	var req sitegen.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.sitegenSvc.Generate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "generate_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RenderSite re-renders website data the client already holds.
func (h *Handler) RenderSite(c *gin.Context) {
	var data sitegen.WebsiteData
	if err := c.ShouldBindJSON(&data); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.sitegenSvc.Render(c.Request.Context(), data)
	if err != nil {
		abortWithError(c, fromDomainError(err, "render_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PreviewSite serves the generated document as a page for an isolated preview frame.
func (h *Handler) PreviewSite(c *gin.Context) {
	req := sitegen.GenerateRequest{
		Prompt:   c.Query("prompt"),
		Template: sitegen.TemplateID(c.Query("template")),
	}

	resp, err := h.sitegenSvc.Generate(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "generate_failed"))
		return
	}

	c.Header("X-Content-Type-Options", "nosniff")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(resp.HTML))
}

// ExportSite returns the HTML document or the stylesheet as a download.
func (h *Handler) ExportSite(c *gin.Context) {
	var req sitegen.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	file, err := h.sitegenSvc.Export(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "export_failed"))
		return
	}

	c.Header("Content-Disposition", attachment(file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// PublishSite stores a generated site so it can be shared by link.
func (h *Handler) PublishSite(c *gin.Context) {
	var req sitegen.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.sitegenSvc.Publish(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "publish_failed"))
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// PublishedFile serves a file of a previously published site.
func (h *Handler) PublishedFile(c *gin.Context) {
	file, err := h.sitegenSvc.Published(c.Request.Context(), c.Param("id"), c.Param("file"))
	if err != nil {
		abortWithError(c, fromDomainError(err, "publish_failed"))
		return
	}

	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// ListTemplates returns the template catalog and example prompts.
func (h *Handler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.sitegenSvc.Catalog(c.Request.Context()))
}

// SubmitContact validates and acknowledges a contact form message.
func (h *Handler) SubmitContact(c *gin.Context) {
	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.contactSvc.Submit(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "contact_failed"))
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func attachment(filename string) string {
	if value := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); value != "" {
		return value
	}
	return "attachment"
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
