package handler

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

type recordingDispatcher struct {
	events []*core.GitHubEvent
	err    error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, event *core.GitHubEvent) error {
	if d.err != nil {
		return d.err
	}
	d.events = append(d.events, event)
	return nil
}

const pullRequestPayload = `{
	"action": "%s",
	"number": 12,
	"pull_request": {"number": 12, "head": {"sha": "deadbeef"}},
	"repository": {"name": "widgets", "full_name": "acme/widgets", "owner": {"login": "acme"}},
	"installation": {"id": 77}
}`

const reviewCommentPayload = `{
	"action": "created",
	"issue": {"number": 5, "pull_request": {"url": "https://api.github.com/repos/acme/widgets/pulls/5"}},
	"comment": {"body": " /review "},
	"repository": {"name": "widgets", "full_name": "acme/widgets", "owner": {"login": "acme"}}
}`

func sign(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func newRequest(eventType, body, signature string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", eventType)
	if signature != "" {
		req.Header.Set("X-Hub-Signature-256", signature)
	}
	return req
}

func newHandler(secret string, d core.JobDispatcher) *WebhookHandler {
	cfg := &config.Config{GitHub: config.GitHubConfig{WebhookSecret: secret}}
	return NewWebhookHandler(cfg, d, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func prBody(action string) string {
	return fmt.Sprintf(pullRequestPayload, action)
}

func TestHandle_PullRequestEvents(t *testing.T) {
	tests := []struct {
		action     string
		wantStatus int
		wantQueued bool
	}{
		{action: "opened", wantStatus: http.StatusAccepted, wantQueued: true},
		{action: "synchronize", wantStatus: http.StatusAccepted, wantQueued: true},
		{action: "reopened", wantStatus: http.StatusAccepted, wantQueued: true},
		{action: "closed", wantStatus: http.StatusOK},
		{action: "labeled", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			d := &recordingDispatcher{}
			body := prBody(tt.action)
			rec := httptest.NewRecorder()

			newHandler("s3cret", d).Handle(rec, newRequest("pull_request", body, sign("s3cret", body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantQueued {
				assert.Empty(t, d.events)
				return
			}
			require.Len(t, d.events, 1)
			ev := d.events[0]
			assert.Equal(t, "acme", ev.RepoOwner)
			assert.Equal(t, "widgets", ev.RepoName)
			assert.Equal(t, 12, ev.PRNumber)
			assert.Equal(t, "deadbeef", ev.HeadSHA)
			assert.Equal(t, int64(77), ev.InstallationID)
			assert.Equal(t, tt.action, ev.Trigger)
		})
	}
}

func TestHandle_ReviewComment(t *testing.T) {
	d := &recordingDispatcher{}
	rec := httptest.NewRecorder()

	newHandler("", d).Handle(rec, newRequest("issue_comment", reviewCommentPayload, ""))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, d.events, 1)
	assert.Equal(t, 5, d.events[0].PRNumber)
	assert.Equal(t, "/review", d.events[0].Trigger)
}

func TestHandle_BadSignature(t *testing.T) {
	d := &recordingDispatcher{}
	body := prBody("opened")
	rec := httptest.NewRecorder()

	newHandler("s3cret", d).Handle(rec, newRequest("pull_request", body, sign("wrong", body)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, d.events)
}

func TestHandle_MissingSignature(t *testing.T) {
	d := &recordingDispatcher{}
	rec := httptest.NewRecorder()

	newHandler("s3cret", d).Handle(rec, newRequest("pull_request", prBody("opened"), ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, d.events)
}

func TestHandle_UnknownEvent(t *testing.T) {
	d := &recordingDispatcher{}
	rec := httptest.NewRecorder()

	newHandler("", d).Handle(rec, newRequest("not_a_real_event", `{}`, ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnhandledEvent(t *testing.T) {
	d := &recordingDispatcher{}
	rec := httptest.NewRecorder()

	newHandler("", d).Handle(rec, newRequest("star", `{"action":"created"}`, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "not handled")
	assert.Empty(t, d.events)
}

func TestHandle_Ping(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler("", &recordingDispatcher{}).Handle(rec, newRequest("ping", `{"zen":"Keep it simple."}`, ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandle_DispatchErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "queue full", err: core.ErrQueueFull, wantStatus: http.StatusServiceUnavailable},
		{name: "other", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHandler("", &recordingDispatcher{err: tt.err}).Handle(rec, newRequest("pull_request", prBody("opened"), ""))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
