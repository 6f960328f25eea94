package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNotify(r chi.Router, notifyHandler *adaptor.NotifyHandler) {
	r.Get("/notifications", notifyHandler.GetNotifications)
	r.Get("/ws/notifications", notifyHandler.Stream)
}
