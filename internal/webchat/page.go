package webchat

import (
	_ "embed"
	"net/http"
)

//go:embed chatbot.html
var chatbotPage []byte

// HandleChatPage serves the standalone chat page for a business. The page
// reads the business ID from its own path and dials the customer socket.
func (h *Handler) HandleChatPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(chatbotPage)
}
