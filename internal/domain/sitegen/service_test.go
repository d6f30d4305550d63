package sitegen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/ai-sitegen/pkg/errors"
)

func TestServiceGenerate(t *testing.T) {
	svc := newTestService(t, Config{}, nil)

	resp, err := svc.Generate(context.Background(), GenerateRequest{
		Prompt:   "  Create a modern restaurant website with menu and reservations  ",
		Template: TemplateBusiness,
	})
	require.NoError(t, err)
	require.Equal(t, BusinessRestaurant, resp.Tag)
	require.Equal(t, "Bella Vista Restaurant", resp.Website.Title)
	require.Equal(t, "Create a modern restaurant website with menu and reservations", resp.Website.Description)
	require.Equal(t, ExportFiles{HTML: "bella-vista-restaurant.html", CSS: "styles.css"}, resp.Files)

	doc := Render(resp.Website)
	require.Equal(t, doc.HTML, resp.HTML)
	require.Equal(t, doc.CSS, resp.CSS)
}

func TestServiceGenerateRejectsEmptyPrompt(t *testing.T) {
	svc := newTestService(t, Config{}, nil)

	_, err := svc.Generate(context.Background(), GenerateRequest{Prompt: " \n\t "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceGenerateRejectsLongPrompt(t *testing.T) {
	svc := newTestService(t, Config{MaxPromptLength: 5}, nil)

	_, err := svc.Generate(context.Background(), GenerateRequest{Prompt: "restaurant"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Generate(context.Background(), GenerateRequest{Prompt: "cafés"})
	require.NoError(t, err, "length is counted in runes")
}

func TestServiceGenerateUsesDefaultTemplate(t *testing.T) {
	svc := newTestService(t, Config{DefaultTemplate: TemplateLanding}, nil)

	resp, err := svc.Generate(context.Background(), GenerateRequest{Prompt: "quantum widgets"})
	require.NoError(t, err)
	require.Equal(t, TemplateLanding, resp.Website.Template)
	require.Equal(t, ThemeFor(TemplateLanding), resp.Website.Theme)
	require.Equal(t, BusinessDefault, resp.Tag)
}

func TestServiceRender(t *testing.T) {
	svc := newTestService(t, Config{}, nil)
	site := Generate("blog", TemplateBlog)
	site.Title = "My Notes"

	resp, err := svc.Render(context.Background(), site)
	require.NoError(t, err)
	require.Contains(t, resp.HTML, "<title>My Notes</title>")
	require.Equal(t, "my-notes.html", resp.Files.HTML)

	site.Theme.Primary = "red;}</style><script>"
	_, err = svc.Render(context.Background(), site)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Render(context.Background(), WebsiteData{})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceExport(t *testing.T) {
	svc := newTestService(t, Config{}, nil)
	ctx := context.Background()
	req := ExportRequest{Prompt: "coffee shop for my tech friends", Template: TemplatePhotography}

	html, err := svc.Export(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "techflow-solutions.html", html.Filename)

	req.Format = "CSS"
	css, err := svc.Export(ctx, req)
	require.NoError(t, err)
	require.Equal(t, "styles.css", css.Filename)
	require.True(t, bytes.Contains(html.Content, css.Content), "html embeds the exported css")

	req.Format = "zip"
	_, err = svc.Export(ctx, req)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServicePublishRoundTrip(t *testing.T) {
	storage := newStubStorage()
	svc := newTestService(t, Config{PublishEnabled: true, PublishPrefix: "shared"}, storage)
	ctx := context.Background()

	resp, err := svc.Publish(ctx, GenerateRequest{Prompt: "artist portfolio", Template: TemplatePortfolio})
	require.NoError(t, err)
	require.Equal(t, "11111111-2222-3333-4444-555555555555", resp.ID)
	require.Equal(t, "shared/"+resp.ID+"/index.html", resp.Files.HTML)
	require.Equal(t, "shared/"+resp.ID+"/styles.css", resp.Files.CSS)
	require.Equal(t, "Creative Portfolio", resp.Title)
	require.Equal(t, "2024-07-01T09:00:00Z", resp.CreatedAt)
	require.Positive(t, resp.Size)

	index, err := svc.Published(ctx, resp.ID, "")
	require.NoError(t, err)
	require.Equal(t, "index.html", index.Name)
	require.Contains(t, string(index.Content), "<title>Creative Portfolio</title>")

	css, err := svc.Published(ctx, resp.ID, "styles.css")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(css.ContentType, "text/css"))
	require.Contains(t, string(index.Content), string(css.Content))
}

func TestServicePublishedErrors(t *testing.T) {
	svc := newTestService(t, Config{PublishEnabled: true}, newStubStorage())
	ctx := context.Background()

	_, err := svc.Published(ctx, "not-a-uuid", "index.html")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Published(ctx, "11111111-2222-3333-4444-555555555555", "index.html")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	_, err = svc.Published(ctx, "11111111-2222-3333-4444-555555555555", "../secrets")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestServicePublishDisabled(t *testing.T) {
	svc := newTestService(t, Config{PublishEnabled: false}, newStubStorage())

	_, err := svc.Publish(context.Background(), GenerateRequest{Prompt: "blog"})
	require.True(t, apperrors.IsCode(err, apperrors.CodePublishDisabled))
}

func TestServicePublishStorageFailure(t *testing.T) {
	storage := newStubStorage()
	storage.putErr = errors.New("bucket unavailable")
	svc := newTestService(t, Config{PublishEnabled: true}, storage)

	_, err := svc.Publish(context.Background(), GenerateRequest{Prompt: "blog"})
	require.True(t, apperrors.IsCode(err, apperrors.CodePublishError))
	require.ErrorContains(t, err, "bucket unavailable")
}

func TestServicePublishRemovesHTMLWhenCSSFails(t *testing.T) {
	const id = "11111111-2222-3333-4444-555555555555"
	storage := newStubStorage()
	storage.putErrs = map[string]error{"sites/" + id + "/styles.css": errors.New("write timeout")}
	svc := newTestService(t, Config{PublishEnabled: true, PublishPrefix: "sites"}, storage)
	ctx := context.Background()

	_, err := svc.Publish(ctx, GenerateRequest{Prompt: "blog"})
	require.True(t, apperrors.IsCode(err, apperrors.CodePublishError))
	require.ErrorContains(t, err, "write timeout")
	require.Equal(t, []string{"sites/" + id + "/index.html"}, storage.deleted)
	require.Empty(t, storage.blobs)

	_, err = svc.Published(ctx, id, "")
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestServiceCatalog(t *testing.T) {
	svc := newTestService(t, Config{}, nil)
	require.Equal(t, BuildCatalog(), svc.Catalog(context.Background()))
}

func newTestService(t *testing.T, cfg Config, storage ObjectStorage) *service {
	t.Helper()
	svc := NewService(cfg, storage, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	svc.now = func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "11111111-2222-3333-4444-555555555555" }
	return svc
}

type stubStorage struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	putErr  error
	putErrs map[string]error
	deleted []string
}

func newStubStorage() *stubStorage {
	return &stubStorage{blobs: make(map[string][]byte)}
}

func (s *stubStorage) Put(_ context.Context, key string, data []byte, mimeType string) (StoredObject, error) {
	if s.putErr != nil {
		return StoredObject{}, s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.putErrs[key]; err != nil {
		return StoredObject{}, err
	}
	s.blobs[key] = data
	return StoredObject{Key: key, Size: int64(len(data)), MimeType: mimeType}, nil
}

func (s *stubStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *stubStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	s.deleted = append(s.deleted, key)
	return nil
}
