package adaptor

import (
	"net/http"

	"movie-reviews/internal/notify"
	"movie-reviews/pkg/utils"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type NotifyHandler struct {
	center *notify.Center
	hub    *notify.Hub
	log    *zap.Logger
}

func NewNotifyHandler(center *notify.Center, hub *notify.Hub, log *zap.Logger) *NotifyHandler {
	return &NotifyHandler{
		center: center,
		hub:    hub,
		log:    log.With(zap.String("handler", "notify")),
	}
}

// GetNotifications handles GET /notifications
func (h *NotifyHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.center.Active())
}

// Stream handles GET /ws/notifications
func (h *NotifyHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	h.hub.Attach(r.Context(), conn)
}
