package controllers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"smartpet-backend/internal/realtime"
)

type StreamHandler struct {
	Hub       *realtime.Hub
	KeepAlive time.Duration
}

// StreamPosts godoc
// @Summary      Post change events
// @Description  Server-Sent Events; one "posts.changed" event per change to the posts collection
// @Tags         posts
// @Produce      text/event-stream
// @Success      200
// @Router       /posts/stream [get]
func (h *StreamHandler) StreamPosts(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	client := h.Hub.Subscribe()
	keepAlive := h.KeepAlive
	if keepAlive <= 0 {
		keepAlive = 30 * time.Second
	}

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer client.Close()

		fmt.Fprint(w, ": connected\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-client.Events():
				if !ok {
					return
				}
				if err := writeEvent(w, ev); err != nil {
					return
				}
			case <-ticker.C:
				fmt.Fprint(w, ": ping\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

func writeEvent(w *bufio.Writer, ev realtime.Event) error {
	data, err := json.Marshal(ev.Data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, data)
	return w.Flush()
}
