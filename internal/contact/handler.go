package contact

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"dealpulse/internal/api"
	"dealpulse/internal/observability"
	"dealpulse/internal/repository"
	logx "dealpulse/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Handler serves POST /contact, forwarding the message to the mail
// provider. A nil mailer means no provider key is configured.
func Handler(mailer *Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "invalid json body")
			return
		}
		if req.Name == "" || req.Email == "" || req.Message == "" {
			api.WriteError(w, http.StatusBadRequest, "name, email and message are required")
			return
		}
		if mailer == nil {
			api.WriteError(w, http.StatusServiceUnavailable, "contact form is disabled")
			return
		}

		subject := req.Subject
		if subject == "" {
			subject = "New contact message"
		}
		text := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)

		if err := mailer.Send(r.Context(), subject, text, req.Email); err != nil {
			logx.Warn().Err(err).Msg("contact message not delivered")
			api.WriteError(w, http.StatusBadGateway, "message could not be delivered")
			return
		}

		observability.ContactMessages.Inc()
		api.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeHandler serves POST /subscribe. A nil repository means no
// database is configured.
func SubscribeHandler(subscribers *repository.SubscriberRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, http.StatusBadRequest, "invalid json body")
			return
		}
		if !emailPattern.MatchString(req.Email) {
			api.WriteError(w, http.StatusBadRequest, "a valid email is required")
			return
		}
		if subscribers == nil {
			api.WriteError(w, http.StatusServiceUnavailable, "subscriptions are disabled")
			return
		}

		err := subscribers.Save(repository.Subscriber{
			ID:           uuid.NewString(),
			Email:        req.Email,
			SubscribedAt: time.Now().UTC(),
		})
		if err != nil {
			logx.Error().Err(err).Msg("subscriber not saved")
			api.WriteError(w, http.StatusInternalServerError, "subscription failed")
			return
		}

		api.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
