package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marcelomiracles/storefront-service/internal/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	client := telegram.NewClient("TOKEN", telegram.WithBaseURL(srv.URL))

	err := client.SendMessage(context.Background(), 42, "hello")
	require.NoError(t, err)

	assert.Equal(t, "/botTOKEN/sendMessage", gotPath)
	assert.Equal(t, float64(42), gotBody["chat_id"])
	assert.Equal(t, "hello", gotBody["text"])
}

func TestClient_SendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "bot was blocked by the user"})
	}))
	defer srv.Close()

	client := telegram.NewClient("TOKEN", telegram.WithBaseURL(srv.URL))

	err := client.SendMessage(context.Background(), 42, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bot was blocked by the user")
}

func TestClient_Broadcast(t *testing.T) {
	// Второй получатель падает, остальные должны получить сообщение
	var sent []int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ChatID int64 `json:"chat_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.ChatID == 2 {
			json.NewEncoder(w).Encode(map[string]any{"ok": false, "description": "chat not found"})
			return
		}
		sent = append(sent, req.ChatID)
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	defer srv.Close()

	client := telegram.NewClient("TOKEN", telegram.WithBaseURL(srv.URL))

	deliveries := client.Broadcast(context.Background(), []int64{1, 2, 3}, "new order")

	require.Len(t, deliveries, 3)
	assert.NoError(t, deliveries[0].Err)
	assert.Error(t, deliveries[1].Err)
	assert.NoError(t, deliveries[2].Err)
	assert.Equal(t, []int64{1, 3}, sent)
}
