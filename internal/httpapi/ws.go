package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"textlab/internal/dashboard"
	"textlab/internal/detect"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type wsEvent struct {
	Type    string          `json:"type"`
	Percent int             `json:"percent,omitempty"`
	Stage   string          `json:"stage,omitempty"`
	Detail  string          `json:"detail,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    *dashboard.Data `json:"data,omitempty"`
}

// AnalyzeStream runs one analysis over a websocket, pushing progress frames
// as the stages complete and a final result or error frame before closing.
func (h *Handler) AnalyzeStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var req wsRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(wsEvent{Type: "error", Error: "invalid request"})
		return
	}

	onProgress := func(percent int, stage, detail string) {
		conn.WriteJSON(wsEvent{Type: "progress", Percent: percent, Stage: stage, Detail: detail})
	}

	data := h.builder.Build(detect.Input{Text: req.Text, Mode: req.Mode}, onProgress)
	if data == nil {
		conn.WriteJSON(wsEvent{Type: "error", Error: "input required"})
		return
	}

	conn.WriteJSON(wsEvent{Type: "result", Data: data})
}
