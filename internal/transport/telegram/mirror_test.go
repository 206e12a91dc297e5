package telegram_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/transport/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	path   string
	chatID string
	text   string
}

func newServer(t *testing.T, body string) (*httptest.Server, func() []sent) {
	t.Helper()

	var (
		mu   sync.Mutex
		reqs []sent
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)

		mu.Lock()
		reqs = append(reqs, sent{path: r.URL.Path, chatID: r.FormValue("chat_id"), text: r.FormValue("text")})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, func() []sent {
		mu.Lock()
		defer mu.Unlock()
		return append([]sent(nil), reqs...)
	}
}

func TestMirror_MirrorAlert(t *testing.T) {
	t.Parallel()

	srv, requests := newServer(t, `{"ok":true,"result":{"message_id":1,"date":1700000000,"chat":{"id":-100200,"type":"supergroup"},"text":"x"}}`)

	mirror, err := telegram.NewMirror("123:abc", srv.URL, "-100200")
	require.NoError(t, err)

	require.NoError(t, mirror.MirrorAlert(context.Background(), "NG: spam"))

	reqs := requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/bot123:abc/sendMessage", reqs[0].path)
	assert.Equal(t, "-100200", reqs[0].chatID)
	assert.Equal(t, "NG: spam", reqs[0].text)
}

func TestMirror_MirrorAlertFailure(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)

	mirror, err := telegram.NewMirror("123:abc", srv.URL, "-1")
	require.NoError(t, err)

	require.Error(t, mirror.MirrorAlert(context.Background(), "NG: spam"))
}
