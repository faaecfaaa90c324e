package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Girishnag18/crownx-arena-sub000/config"
	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
	"github.com/Girishnag18/crownx-arena-sub000/internal/rating"
	"github.com/Girishnag18/crownx-arena-sub000/internal/services"
	"github.com/Girishnag18/crownx-arena-sub000/internal/store"
	"github.com/Girishnag18/crownx-arena-sub000/internal/wires"
)

type fixedRatings map[string]int

func (f fixedRatings) Rating(playerID string) int {
	if r, ok := f[playerID]; ok {
		return r
	}
	return 1200
}

func newTestRouter(t *testing.T, ratings fixedRatings) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	cfg := config.MatchmakingConfig{
		RatingWindow:  200,
		KFactor:       24,
		DefaultRating: 1200,
		TierTable:     "classic",
		QualityMode:   "elo",
		StoreBackend:  "memory",
	}
	logger := zerolog.Nop()
	wires.Instance = &wires.Wires{
		Store:              st,
		MatchmakingService: services.NewMatchmakingService(st, ratings, cfg, logger),
		RatingService:      services.NewRatingService(st, ratings, rating.ClassicTable, 24, nil, logger),
	}

	router := gin.New()
	ctx := context.Background()
	RegisterMatchmaking(router, ctx)
	RegisterMatches(router, ctx)
	RegisterTickets(router, ctx)
	RegisterHealth(router, ctx)
	return router, st
}

func doRequest(router *gin.Engine, method, path, player, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if player != "" {
		req.Header.Set("X-Player-ID", player)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthReportsStatus(t *testing.T) {
	router, _ := newTestRouter(t, fixedRatings{})

	rec := doRequest(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestGetMatchVisibleToParticipantsOnly(t *testing.T) {
	router, st := newTestRouter(t, fixedRatings{})
	require.NoError(t, st.CreateMatch(&model.MatchRecord{
		ID:      "match_1",
		WhiteID: "w",
		BlackID: "b",
		Mode:    "blitz",
		State:   model.MatchInProgress,
	}))

	rec := doRequest(router, http.MethodGet, "/matches/match_1", "w", "")
	assert.Equal(t, 200, rec.Code)

	rec = doRequest(router, http.MethodGet, "/matches/match_1", "stranger", "")
	assert.Equal(t, 404, rec.Code, "outsiders cannot see the match")

	rec = doRequest(router, http.MethodGet, "/matches/missing", "w", "")
	assert.Equal(t, 404, rec.Code)
}

func TestPlayerHistoryUnconfigured(t *testing.T) {
	router, _ := newTestRouter(t, fixedRatings{})

	rec := doRequest(router, http.MethodGet, "/players/p1/history", "", "")
	assert.Equal(t, 404, rec.Code, "no database configured means no history")
}

func TestFetchAllQueues(t *testing.T) {
	router, st := newTestRouter(t, fixedRatings{})
	require.NoError(t, st.Enqueue(model.QueueEntry{PlayerID: "p1", GameMode: "blitz", Rating: 1200, EnqueuedAt: 1}))
	require.NoError(t, st.Enqueue(model.QueueEntry{PlayerID: "p2", GameMode: "rapid", Rating: 1300, EnqueuedAt: 2}))

	rec := doRequest(router, http.MethodGet, "/tickets/fetch", "", "")
	require.Equal(t, 200, rec.Code)

	var queues map[string][]model.QueueEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &queues))
	assert.Len(t, queues, 4, "every game mode is listed")
	assert.Len(t, queues["blitz"], 1)
	assert.Len(t, queues["rapid"], 1)
	assert.Empty(t, queues["bullet"])
}

type wsEnvelope struct {
	EventType string          `json:"eventType"`
	Message   json.RawMessage `json:"message"`
}

func dialQueue(t *testing.T, srv *httptest.Server, queue, id string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/" + queue + "/" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) wsEnvelope {
	t.Helper()
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var env wsEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func joinQueueOverSocket(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	assert.Equal(t, "info", readEvent(t, conn).EventType, "greeting on connect")
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "joinQueue"}))
	assert.Equal(t, "info", readEvent(t, conn).EventType, "join confirmation")
}

func TestCancelNotifiesQueuedSocket(t *testing.T) {
	router, _ := newTestRouter(t, fixedRatings{})
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialQueue(t, srv, "blitz", "p1")
	joinQueueOverSocket(t, conn)

	rec := doRequest(router, http.MethodDelete, "/matchmaking/search/blitz", "p1", "")
	require.Equal(t, 204, rec.Code)

	assert.Equal(t, "removed", readEvent(t, conn).EventType)
}

func TestMatchFoundPushedAndSessionClosed(t *testing.T) {
	router, _ := newTestRouter(t, fixedRatings{"p1": 1200, "p2": 1250})
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialQueue(t, srv, "blitz", "p1")
	joinQueueOverSocket(t, conn)

	rec := doRequest(router, http.MethodPost, "/matchmaking/search", "p2", `{"game_mode":"blitz"}`)
	require.Equal(t, 200, rec.Code)

	var result model.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.True(t, result.Matched)

	env := readEvent(t, conn)
	assert.Equal(t, "matchFound", env.EventType)

	var found struct {
		MatchId string `json:"matchId"`
	}
	require.NoError(t, json.Unmarshal(env.Message, &found))
	assert.Equal(t, result.Match.ID, found.MatchId)

	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "the queue session closes once the match is delivered")
}
