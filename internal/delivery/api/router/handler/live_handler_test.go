package handler_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"drinkpos/internal/delivery/api/router/handler"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/infra/livequery"
	mockUsecase "drinkpos/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type liveHandlerFixtures struct {
	server    *httptest.Server
	feed      service.ChangeFeed
	catalogUC *mockUsecase.MockCatalogUsecase
	userUC    *mockUsecase.MockUserUsecase
	user      *entity.User
}

func createTestLiveHandler(t *testing.T) liveHandlerFixtures {
	feed := livequery.NewLocalFeed(newDiscardLogger())
	hub := livequery.NewHub(feed, newDiscardLogger())
	require.NoError(t, hub.Start(context.Background()))

	fx := liveHandlerFixtures{
		feed:      feed,
		catalogUC: mockUsecase.NewMockCatalogUsecase(t),
		userUC:    mockUsecase.NewMockUserUsecase(t),
		user:      newStaff(),
	}

	h := handler.NewLiveHandler(handler.LiveHandlerParams{
		Hub:            hub,
		CatalogUC:      fx.catalogUC,
		OrderUC:        mockUsecase.NewMockOrderUsecase(t),
		AuditUC:        mockUsecase.NewMockAuditUsecase(t),
		UserUC:         fx.userUC,
		NotificationUC: mockUsecase.NewMockNotificationUsecase(t),
		Logger:         newDiscardLogger(),
	})

	e := newTestEcho()
	g := e.Group("/live", asUser(fx.user))
	g.GET("/menu", h.Menu)
	g.GET("/me", h.Me)

	fx.server = httptest.NewServer(e)
	t.Cleanup(func() {
		fx.server.Close()
		_ = hub.Close()
		_ = feed.Close()
	})

	return fx
}

type sseEvent struct {
	name string
	data string
}

// openStream starts a GET on path and returns a channel of parsed events.
func openStream(t *testing.T, ctx context.Context, url string) (*http.Response, <-chan sseEvent) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	events := make(chan sseEvent, 8)
	go func() {
		defer close(events)

		scanner := bufio.NewScanner(res.Body)
		var current sseEvent
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case strings.HasPrefix(line, "event: "):
				current.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				current.data = strings.TrimPrefix(line, "data: ")
			case line == "" && current.name != "":
				events <- current
				current = sseEvent{}
			}
		}
	}()

	return res, events
}

func nextEvent(t *testing.T, events <-chan sseEvent) sseEvent {
	t.Helper()

	select {
	case event, ok := <-events:
		require.True(t, ok, "stream closed")

		return event
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")

		return sseEvent{}
	}
}

func TestLiveHandler_Menu(t *testing.T) {
	fx := createTestLiveHandler(t)
	first := []*entity.MenuItem{{ID: uuid.New(), Name: "Trà đào", Stock: 3}}
	second := []*entity.MenuItem{{ID: first[0].ID, Name: "Trà đào", Stock: 2}}

	fx.catalogUC.EXPECT().ListItems(mock.Anything).Return(first, nil).Once()
	fx.catalogUC.EXPECT().ListItems(mock.Anything).Return(second, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, events := openStream(t, ctx, fx.server.URL+"/live/menu")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	initial := nextEvent(t, events)
	require.Equal(t, "snapshot", initial.name)
	var items []entity.MenuItem
	require.NoError(t, json.Unmarshal([]byte(initial.data), &items))
	assert.Equal(t, 3, items[0].Stock)

	require.NoError(t, fx.feed.Publish(ctx, service.TopicMenu))

	updated := nextEvent(t, events)
	require.Equal(t, "snapshot", updated.name)
	require.NoError(t, json.Unmarshal([]byte(updated.data), &items))
	assert.Equal(t, 2, items[0].Stock)
}

func TestLiveHandler_MeReportsQueryErrors(t *testing.T) {
	fx := createTestLiveHandler(t)
	fx.userUC.EXPECT().GetUser(mock.Anything, fx.user.ID).Return(nil, domainerrors.ErrUserNotFound).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, events := openStream(t, ctx, fx.server.URL+"/live/me")

	event := nextEvent(t, events)
	require.Equal(t, "error", event.name)
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal([]byte(event.data), &body))
	assert.Equal(t, "USER_NOT_FOUND", body.Code)
}
