// Package handler provides the HTTP handlers of the review service.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v73/github"

	"github.com/Srinivas2193/AI-PR-Reviewer/internal/config"
	"github.com/Srinivas2193/AI-PR-Reviewer/internal/core"
)

// WebhookHandler turns GitHub webhook deliveries into queued reviews.
type WebhookHandler struct {
	cfg        *config.Config
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewWebhookHandler creates a new webhook handler with the given configuration and dispatcher.
func NewWebhookHandler(cfg *config.Config, dispatcher core.JobDispatcher, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes GitHub webhook requests. The signature is only checked
// when a webhook secret is configured.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := github.ValidatePayload(r, []byte(h.cfg.GitHub.WebhookSecret))
	if err != nil {
		h.logger.Error("invalid webhook payload signature", "error", err)
		http.Error(w, "Invalid signature", http.StatusUnauthorized)
		return
	}

	eventType := github.WebHookType(r)
	event, err := github.ParseWebHook(eventType, payload)
	if err != nil {
		h.logger.Error("could not parse webhook", "type", eventType, "error", err)
		http.Error(w, "Could not parse webhook", http.StatusBadRequest)
		return
	}

	switch e := event.(type) {
	case *github.PingEvent:
		h.logger.Info("received ping", "zen", e.GetZen())
		_, _ = fmt.Fprint(w, "pong")
	case *github.PullRequestEvent:
		reviewEvent, err := core.EventFromPullRequest(e)
		if err != nil {
			h.ignore(w, "pull request", err, e.GetRepo().GetFullName())
			return
		}
		h.dispatch(r.Context(), w, reviewEvent)
	case *github.IssueCommentEvent:
		reviewEvent, err := core.EventFromIssueComment(e)
		if err != nil {
			h.ignore(w, "issue comment", err, e.GetRepo().GetFullName())
			return
		}
		h.dispatch(r.Context(), w, reviewEvent)
	default:
		h.logger.Debug("ignoring unhandled webhook event type", "type", eventType)
		_, _ = fmt.Fprint(w, "Event type not handled")
	}
}

func (h *WebhookHandler) ignore(w http.ResponseWriter, kind string, reason error, repo string) {
	h.logger.Debug("ignoring "+kind, "reason", reason.Error(), "repo", repo)
	_, _ = fmt.Fprint(w, "Event ignored")
}

func (h *WebhookHandler) dispatch(ctx context.Context, w http.ResponseWriter, event *core.GitHubEvent) {
	if err := h.dispatcher.Dispatch(ctx, event); err != nil {
		h.logger.Error("failed to dispatch review job", "error", err, "repo", event.RepoFullName, "pr", event.PRNumber)
		if errors.Is(err, core.ErrQueueFull) {
			http.Error(w, "Review queue is full, try again later", http.StatusServiceUnavailable)
			return
		}
		http.Error(w, "Failed to start review job", http.StatusInternalServerError)
		return
	}

	h.logger.Info("review job dispatched successfully", "repo", event.RepoFullName, "pr", event.PRNumber)
	w.WriteHeader(http.StatusAccepted)
	_, _ = fmt.Fprint(w, "Review job accepted")
}
