package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLinkPreviewService_FetchMetaTags(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<head>
	<title>  Example Page  </title>
	<link rel="icon" href="https://cdn.example.com/favicon.ico">
</head>
<body>hello</body>
</html>`)

	service := NewLinkPreviewService()
	meta, err := service.FetchMetaTags(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "Example Page", meta.Title)
	require.Equal(t, "https://cdn.example.com/favicon.ico", meta.Image)
}

func TestLinkPreviewService_FetchMetaTags_RelativeFavicon(t *testing.T) {
	server := serveHTML(t, `<html><head>
	<title>Docs</title>
	<link rel="shortcut icon" href="/static/favicon.png">
</head></html>`)

	service := NewLinkPreviewService()
	meta, err := service.FetchMetaTags(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "Docs", meta.Title)
	require.Equal(t, server.URL+"/static/favicon.png", meta.Image)
}

func TestLinkPreviewService_FetchMetaTags_NoTitle(t *testing.T) {
	server := serveHTML(t, `<html><head></head><body>no title here</body></html>`)

	service := NewLinkPreviewService()
	_, err := service.FetchMetaTags(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrNoTitle)
}

func TestLinkPreviewService_FetchMetaTags_NoFavicon(t *testing.T) {
	server := serveHTML(t, `<html><head><title>Bare</title></head></html>`)

	service := NewLinkPreviewService()
	meta, err := service.FetchMetaTags(context.Background(), server.URL)
	require.NoError(t, err)
	require.Equal(t, "Bare", meta.Title)
	require.Empty(t, meta.Image)
}

func TestLinkPreviewService_FetchMetaTags_UnreachableHost(t *testing.T) {
	service := NewLinkPreviewService()
	_, err := service.FetchMetaTags(context.Background(), "http://127.0.0.1:1/none")
	require.Error(t, err)
}

func TestLinkPreviewService_FetchMetaTags_SlowPageTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Stall past the client budget; bail out when the client gives up
		select {
		case <-time.After(linkPreviewTimeout + time.Second):
		case <-r.Context().Done():
		}
		w.Write([]byte(`<html><head><title>Too Late</title></head></html>`))
	}))
	t.Cleanup(server.Close)

	service := NewLinkPreviewService()
	start := time.Now()
	_, err := service.FetchMetaTags(context.Background(), server.URL)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), linkPreviewTimeout+time.Second)
}
