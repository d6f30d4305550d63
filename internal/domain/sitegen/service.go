package sitegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/ai-sitegen/pkg/errors"
	"github.com/yanqian/ai-sitegen/pkg/util"
)

const (
	defaultMaxPromptLength = 2000
	defaultPublishPrefix   = "sites"
	publishedIndex         = "index.html"
)

// Service exposes website generation, export and publishing.
type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Render(ctx context.Context, data WebsiteData) (GenerateResponse, error)
	Export(ctx context.Context, req ExportRequest) (ExportFile, error)
	Publish(ctx context.Context, req GenerateRequest) (PublishResponse, error)
	Published(ctx context.Context, id, name string) (PublishedFile, error)
	Catalog(ctx context.Context) Catalog
}

type service struct {
	cfg     Config
	storage ObjectStorage
	logger  *slog.Logger
	now     util.Clock
	newID   func() string
}

// NewService is a wire provider for the sitegen domain. storage may be nil when publishing is off.
func NewService(cfg Config, storage ObjectStorage, logger *slog.Logger) Service {
	if cfg.MaxPromptLength <= 0 {
		cfg.MaxPromptLength = defaultMaxPromptLength
	}
	if cfg.DefaultTemplate == "" {
		cfg.DefaultTemplate = TemplateBusiness
	}
	if strings.TrimSpace(cfg.PublishPrefix) == "" {
		cfg.PublishPrefix = defaultPublishPrefix
	}
	return &service{
		cfg:     cfg,
		storage: storage,
		logger:  logger.With("component", "sitegen.service"),
		now:     util.NowUTC,
		newID:   func() string { return uuid.NewString() },
	}
}

func (s *service) Generate(_ context.Context, req GenerateRequest) (GenerateResponse, error) {
	start := s.now()
	prompt, template, err := s.sanitize(req)
	if err != nil {
		return GenerateResponse{}, err
	}

	tag := Classify(prompt)
	site := Resolve(tag, template, ExtractTitle(prompt), prompt)
	resp := s.respond(site, tag, start)
	s.logger.Info("website generated", "tag", tag, "template", template, "title", site.Title, "html_bytes", len(resp.HTML))
	return resp, nil
}

func (s *service) Render(_ context.Context, data WebsiteData) (GenerateResponse, error) {
	start := s.now()
	if err := data.Validate(); err != nil {
		return GenerateResponse{}, err
	}
	return s.respond(data, "", start), nil
}

func (s *service) Export(ctx context.Context, req ExportRequest) (ExportFile, error) {
	format := ExportFormat(strings.ToLower(strings.TrimSpace(string(req.Format))))
	if format == "" {
		format = ExportHTML
	}
	if format != ExportHTML && format != ExportCSS {
		return ExportFile{}, apperrors.Invalid(fmt.Sprintf("unsupported export format %q", req.Format))
	}
	resp, err := s.Generate(ctx, GenerateRequest{Prompt: req.Prompt, Template: req.Template})
	if err != nil {
		return ExportFile{}, err
	}
	file, _ := exportFile(Document{HTML: resp.HTML, CSS: resp.CSS}, resp.Files, format)
	return file, nil
}

func (s *service) Publish(ctx context.Context, req GenerateRequest) (PublishResponse, error) {
	if !s.cfg.PublishEnabled || s.storage == nil {
		return PublishResponse{}, apperrors.Wrap(apperrors.CodePublishDisabled, "publishing is not enabled", nil)
	}
	resp, err := s.Generate(ctx, req)
	if err != nil {
		return PublishResponse{}, err
	}

	id := s.newID()
	htmlObj, err := s.storage.Put(ctx, s.objectKey(id, publishedIndex), []byte(resp.HTML), htmlContentType)
	if err != nil {
		return PublishResponse{}, apperrors.Wrap(apperrors.CodePublishError, "failed to store html", err)
	}
	cssObj, err := s.storage.Put(ctx, s.objectKey(id, stylesheetFilename), []byte(resp.CSS), cssContentType)
	if err != nil {
		// Remove the html already written so a failed publish leaves nothing behind.
		if delErr := s.storage.Delete(context.WithoutCancel(ctx), htmlObj.Key); delErr != nil {
			s.logger.Warn("failed to remove partial site", "id", id, "key", htmlObj.Key, "error", delErr)
		}
		return PublishResponse{}, apperrors.Wrap(apperrors.CodePublishError, "failed to store css", err)
	}

	s.logger.Info("website published", "id", id, "title", resp.Website.Title)
	return PublishResponse{
		ID:        id,
		Title:     resp.Website.Title,
		Files:     ExportFiles{HTML: htmlObj.Key, CSS: cssObj.Key},
		Size:      htmlObj.Size + cssObj.Size,
		CreatedAt: s.now().Format(time.RFC3339),
	}, nil
}

func (s *service) Published(ctx context.Context, id, name string) (PublishedFile, error) {
	if !s.cfg.PublishEnabled || s.storage == nil {
		return PublishedFile{}, apperrors.Wrap(apperrors.CodePublishDisabled, "publishing is not enabled", nil)
	}
	if _, err := uuid.Parse(id); err != nil {
		return PublishedFile{}, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid site id", err)
	}
	if name == "" {
		name = publishedIndex
	}
	var contentType string
	switch name {
	case publishedIndex:
		contentType = htmlContentType
	case stylesheetFilename:
		contentType = cssContentType
	default:
		return PublishedFile{}, apperrors.Wrap(apperrors.CodeNotFound, "unknown file "+name, nil)
	}

	reader, err := s.storage.Get(ctx, s.objectKey(id, name))
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return PublishedFile{}, apperrors.Wrap(apperrors.CodeNotFound, "published site not found", err)
		}
		return PublishedFile{}, apperrors.Wrap(apperrors.CodePublishError, "failed to read published site", err)
	}
	defer reader.Close()
	content, err := io.ReadAll(reader)
	if err != nil {
		return PublishedFile{}, apperrors.Wrap(apperrors.CodePublishError, "failed to read published site", err)
	}
	return PublishedFile{Name: name, ContentType: contentType, Content: content}, nil
}

func (s *service) Catalog(_ context.Context) Catalog {
	return BuildCatalog()
}

// sanitize is the caller-level validation that runs before the pure pipeline.
func (s *service) sanitize(req GenerateRequest) (string, TemplateID, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return "", "", apperrors.Invalid("prompt cannot be empty")
	}
	if utf8.RuneCountInString(prompt) > s.cfg.MaxPromptLength {
		return "", "", apperrors.Invalid(fmt.Sprintf("prompt exceeds %d characters", s.cfg.MaxPromptLength))
	}
	template := TemplateID(strings.TrimSpace(string(req.Template)))
	if template == "" {
		template = s.cfg.DefaultTemplate
	}
	return prompt, template, nil
}

func (s *service) respond(site WebsiteData, tag BusinessType, start time.Time) GenerateResponse {
	doc := Render(site)
	return GenerateResponse{
		Website:    site,
		Tag:        tag,
		HTML:       doc.HTML,
		CSS:        doc.CSS,
		Files:      ExportFilenames(site.Title),
		DurationMs: s.now().Sub(start).Milliseconds(),
	}
}

func (s *service) objectKey(id, name string) string {
	return path.Join(s.cfg.PublishPrefix, id, name)
}
