package streaks_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/2fit/fitstreak/internal/auth"
	"github.com/2fit/fitstreak/internal/instrumentation"
	"github.com/2fit/fitstreak/internal/streaks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*mux.Router, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		events:   NewMockeventsRepo(ctrl),
		counters: NewMockcountersRepo(ctrl),
		calendar: NewMockcalendarMirror(ctrl),
	}
	svc := streaks.NewService(
		mocks.events, mocks.counters, mocks.calendar,
		instrumentation.NewTestInstrumentation(),
	)
	h := streaks.NewHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc("/events", h.HandleList).Methods("GET")
	r.HandleFunc("/events", h.HandleAdd).Methods("POST")
	r.HandleFunc("/events/past", h.HandleRemovePast).Methods("DELETE")
	r.HandleFunc("/events/{id}/complete", h.HandleComplete).Methods("POST")
	r.HandleFunc("/streaks/today", h.HandleToday).Methods("GET")
	r.HandleFunc("/streaks/reconcile", h.HandleReconcile).Methods("POST")
	r.HandleFunc("/streaks/monthly/{year}/{month}", h.HandleMonthly).Methods("GET")
	return r, mocks
}

func authedRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req, err = http.NewRequest(method, target, nil)
	}
	require.NoError(t, err)
	return req.WithContext(auth.ContextWithOwnerID(req.Context(), "owner-1"))
}

func TestHandler_HandleList(t *testing.T) {
	r, mocks := newTestRouter(t)

	ev := eventOn(streaks.Mon, streaks.KindWorkout, 9, 11, false)
	mocks.events.EXPECT().
		List(gomock.Any(), streaks.ListParams{OwnerID: "owner-1"}).
		Return([]streaks.Event{ev}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "GET", "/events", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var events []streaks.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)
}

func TestHandler_HandleList_KindFilter(t *testing.T) {
	r, mocks := newTestRouter(t)

	workout := streaks.KindWorkout
	mocks.events.EXPECT().
		List(gomock.Any(), streaks.ListParams{OwnerID: "owner-1", Kind: &workout}).
		Return([]streaks.Event{}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "GET", "/events?kind=Workout", nil))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestHandler_HandleList_UnknownKind(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "GET", "/events?kind=Swimming", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleList_NoSession(t *testing.T) {
	r, _ := newTestRouter(t)

	req, err := http.NewRequest("GET", "/events", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_HandleAdd(t *testing.T) {
	r, mocks := newTestRouter(t)

	input := streaks.EventInput{
		Day:   streaks.Fri,
		Kind:  streaks.KindWorkout,
		Title: "deadlifts",
		Start: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC),
	}
	inputJson, err := json.Marshal(input)
	require.NoError(t, err)

	mocks.events.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *streaks.Event) (*streaks.Event, error) {
			assert.Equal(t, "owner-1", ev.OwnerID)
			assert.Equal(t, "deadlifts", ev.Title)
			ev.ID = 11
			return ev, nil
		})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "POST", "/events", inputJson))
	require.Equal(t, http.StatusCreated, rr.Code)

	var res streaks.CreateEventResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, 11, res.Event.ID)
	assert.Empty(t, res.SyncWarning)
}

func TestHandler_HandleAdd_Invalid(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "POST", "/events", []byte(`{"title":""}`)))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleAdd_WithCalendarToken(t *testing.T) {
	r, mocks := newTestRouter(t)

	input := streaks.EventInput{
		Day:   streaks.Fri,
		Kind:  streaks.KindClasses,
		Title: "pilates",
		Start: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC),
	}
	inputJson, err := json.Marshal(input)
	require.NoError(t, err)

	mocks.events.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *streaks.Event) (*streaks.Event, error) {
			ev.ID = 12
			return ev, nil
		})
	mocks.calendar.EXPECT().
		CreateRemoteEvent(gomock.Any(), "g-token", "pilates", gomock.Any(), gomock.Any()).
		Return("remote-xyz", nil)
	mocks.events.EXPECT().
		SetExternalSyncID(gomock.Any(), "owner-1", 12, "remote-xyz").
		Return(nil)

	req := authedRequest(t, "POST", "/events", inputJson)
	req.Header.Set(streaks.CalendarTokenHeader, "g-token")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var res streaks.CreateEventResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, "remote-xyz", res.Event.ExternalSyncID)
}

func TestHandler_HandleComplete(t *testing.T) {
	r, mocks := newTestRouter(t)

	ev := eventOn(streaks.Mon, streaks.KindWorkout, 9, 11, false)
	mocks.events.EXPECT().Get(gomock.Any(), "owner-1", 1).Return(&ev, nil)
	mocks.counters.EXPECT().GetCounters(gomock.Any(), "owner-1").
		Return(streaks.Counters{StreakCount: 4}, nil)
	mocks.events.EXPECT().SetCompleted(gomock.Any(), "owner-1", 1).Return(nil)
	mocks.counters.EXPECT().UpdateCounters(gomock.Any(), "owner-1", gomock.Any()).Return(nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "POST", "/events/1/complete", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Event    streaks.Event    `json:"event"`
		Counters streaks.Counters `json:"counters"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Event.Completed)
	assert.Equal(t, 5, resp.Counters.StreakCount)
}

func TestHandler_HandleComplete_NotFound(t *testing.T) {
	r, mocks := newTestRouter(t)

	mocks.events.EXPECT().Get(gomock.Any(), "owner-1", 99).Return(nil, streaks.ErrEventNotFound)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "POST", "/events/99/complete", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_HandleComplete_BadID(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "POST", "/events/nope/complete", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleToday(t *testing.T) {
	r, mocks := newTestRouter(t)

	ev := streaks.Event{
		ID:      1,
		OwnerID: "owner-1",
		Day:     streaks.WeekdayOf(time.Now()),
		Kind:    streaks.KindWorkout,
		Title:   "session",
		Start:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
		End:     time.Date(2024, 3, 1, 23, 59, 59, 0, time.Local),
	}
	mocks.events.EXPECT().
		List(gomock.Any(), streaks.ListParams{OwnerID: "owner-1"}).
		Return([]streaks.Event{ev}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "GET", "/streaks/today", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var status streaks.TodayStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	require.NotNil(t, status.Active)
	assert.Equal(t, 1, status.Active.ID)
}

func TestHandler_HandleReconcile(t *testing.T) {
	r, mocks := newTestRouter(t)

	mocks.events.EXPECT().
		List(gomock.Any(), streaks.ListParams{OwnerID: "owner-1"}).
		Return([]streaks.Event{}, nil)
	mocks.counters.EXPECT().GetCounters(gomock.Any(), "owner-1").
		Return(streaks.Counters{StreakCount: 2, LastStreakUpdate: time.Now()}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "POST", "/streaks/reconcile", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var res streaks.ReconcileResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Counters.StreakCount)
}

func TestHandler_HandleMonthly(t *testing.T) {
	r, mocks := newTestRouter(t)

	mocks.events.EXPECT().
		List(gomock.Any(), streaks.ListParams{OwnerID: "owner-1"}).
		Return([]streaks.Event{completedOn(1, 2)}, nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "GET", "/streaks/monthly/2024/3", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Year    int    `json:"year"`
		Month   int    `json:"month"`
		Buckets [4]int `json:"buckets"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, [4]int{1, 0, 0, 0}, resp.Buckets)
}

func TestHandler_HandleMonthly_BadMonth(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "GET", "/streaks/monthly/2024/13", nil))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleRemovePast(t *testing.T) {
	r, mocks := newTestRouter(t)

	elapsed := eventOn(streaks.Mon, streaks.KindWorkout, 6, 7, false)
	elapsed.End = time.Now().Add(-time.Hour)
	mocks.events.EXPECT().
		List(gomock.Any(), streaks.ListParams{OwnerID: "owner-1"}).
		Return([]streaks.Event{elapsed}, nil)
	mocks.events.EXPECT().Delete(gomock.Any(), "owner-1", elapsed.ID).Return(nil)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, authedRequest(t, "DELETE", "/events/past", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var res streaks.SweepResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res.Removed, 1)
}
