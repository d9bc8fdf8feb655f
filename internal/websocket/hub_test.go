package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesConnectedClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { ServeWs(hub, c) })
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish("trends.refreshed", map[string]int{"months": 6})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Event string         `json:"event"`
		Data  map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "trends.refreshed", got.Event)
	assert.Equal(t, 6, got.Data["months"])
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub() // not running, nothing drains the queue

	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.Broadcast)+5; i++ {
			hub.Publish("trends.refreshed", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	assert.Len(t, hub.Broadcast, cap(hub.Broadcast))
}

func TestHub_UnencodableEventIsDropped(t *testing.T) {
	hub := NewHub()
	hub.Publish("bad", make(chan int))
	assert.Len(t, hub.Broadcast, 0)
}
