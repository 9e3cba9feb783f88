package api_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/rexfit/internal/api"
	apimocks "github.com/limbo/rexfit/internal/api/mocks"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/internal/notify"
	"github.com/limbo/rexfit/internal/resttimer"
	"github.com/limbo/rexfit/internal/service"
	"github.com/limbo/rexfit/internal/service/mocks"
	"github.com/limbo/rexfit/internal/tracker"
	"github.com/limbo/rexfit/pkg/entity"
	"github.com/limbo/rexfit/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)

func testSnapshot() *service.Snapshot {
	doc := tracker.Default(now)
	return &service.Snapshot{State: doc, Summary: tracker.Summarize(doc, now)}
}

func newServer(t *testing.T) (*api.Server, *mocks.MockTrackerServiceI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tService := mocks.NewMockTrackerServiceI(ctrl)
	return api.New(&api.ServicesList{TrackerService: tService}), tService
}

func do(serv http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(method, target, body))
	return rr
}

func TestAddWater(t *testing.T) {
	serv, tService := newServer(t)
	body, err := sonic.ConfigDefault.Marshal(service.WaterRequest{DeltaMl: 250})
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		Warning      string
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "added",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				tService.EXPECT().AddWater(gomock.Any(), &service.WaterRequest{DeltaMl: 250}).Return(testSnapshot(), nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "added but not saved",
			ExpectedCode: http.StatusOK,
			Warning:      api.StorageFullWarning,
			MockPrepFunc: func() {
				tService.EXPECT().AddWater(gomock.Any(), gomock.Any()).
					Return(testSnapshot(), fmt.Errorf("%w: %w", errorvalues.ErrPersistFailed, errorvalues.ErrQuotaExceeded))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "validation error",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				tService.EXPECT().AddWater(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrInvalidInput)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				tService.EXPECT().AddWater(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         strings.NewReader("corrupted"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := do(serv, http.MethodPost, "/api/v1/water", tc.Body)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedCode == http.StatusOK {
				var resp httputil.DataResponse
				require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.Warning, resp.Warning)
				assert.NotNil(t, resp.Data)
			}
		})
	}
}

func TestBuy(t *testing.T) {
	serv, tService := newServer(t)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		Message      string
		Err          error
	}{
		{Desc: "bought", ExpectedCode: http.StatusOK},
		{Desc: "too poor", ExpectedCode: http.StatusPaymentRequired, Message: "Not enough bones!", Err: errorvalues.ErrInsufficientFunds},
		{Desc: "unknown item", ExpectedCode: http.StatusNotFound, Message: "item doesn't exist", Err: errorvalues.ErrUnknownItem},
		{Desc: "owned", ExpectedCode: http.StatusConflict, Message: "item already owned", Err: errorvalues.ErrItemOwned},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			var res *service.PurchaseResult
			if tc.Err == nil {
				res = &service.PurchaseResult{Snapshot: testSnapshot(), Item: entity.StoreItem{ID: "crown"}}
			}
			tService.EXPECT().Buy(gomock.Any(), "crown").Return(res, tc.Err)
			rr := do(serv, http.MethodPost, "/api/v1/market/crown/buy", nil)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.Message != "" {
				var resp httputil.ErrorResponse
				require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.Message, resp.Message)
			}
		})
	}
}

func TestToggleEquip(t *testing.T) {
	serv, tService := newServer(t)

	tService.EXPECT().ToggleEquip(gomock.Any(), "treat").Return(nil, errorvalues.ErrNotEquippable)
	assert.Equal(t, http.StatusBadRequest, do(serv, http.MethodPost, "/api/v1/inventory/treat/equip", nil).Code)

	tService.EXPECT().ToggleEquip(gomock.Any(), "shades").Return(nil, errorvalues.ErrItemNotOwned)
	assert.Equal(t, http.StatusConflict, do(serv, http.MethodPost, "/api/v1/inventory/shades/equip", nil).Code)

	tService.EXPECT().ToggleEquip(gomock.Any(), "crown").Return(&service.EquipResult{Snapshot: testSnapshot(), Equipped: true}, nil)
	rr := do(serv, http.MethodPost, "/api/v1/inventory/crown/equip", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"equipped":true`)
}

func TestToggleExercise(t *testing.T) {
	serv, tService := newServer(t)

	tService.EXPECT().ToggleExercise(gomock.Any(), "a-1").
		Return(&service.ExerciseResult{Snapshot: testSnapshot(), Completed: true, Phrase: "Good dog!"}, nil)
	rr := do(serv, http.MethodPost, "/api/v1/exercises/a-1/toggle", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"phrase":"Good dog!"`)

	tService.EXPECT().ToggleExercise(gomock.Any(), "b-9").Return(nil, errorvalues.ErrUnknownExercise)
	assert.Equal(t, http.StatusNotFound, do(serv, http.MethodPost, "/api/v1/exercises/b-9/toggle", nil).Code)
}

func TestDeleteMood(t *testing.T) {
	serv, tService := newServer(t)

	tService.EXPECT().DeleteMood(gomock.Any(), "2024-01-01").Return(nil, errorvalues.ErrMoodNotFound)
	assert.Equal(t, http.StatusNotFound, do(serv, http.MethodDelete, "/api/v1/moods/2024-01-01", nil).Code)

	tService.EXPECT().DeleteMood(gomock.Any(), "2024-01-02").Return(testSnapshot(), nil)
	assert.Equal(t, http.StatusOK, do(serv, http.MethodDelete, "/api/v1/moods/2024-01-02", nil).Code)
}

func TestNotifications(t *testing.T) {
	serv, tService := newServer(t)

	testCases := []struct {
		Desc         string
		ExpectedCode int
		Err          error
	}{
		{Desc: "unsupported", ExpectedCode: http.StatusPreconditionFailed, Err: errorvalues.ErrNotificationsUnsupported},
		{Desc: "denied", ExpectedCode: http.StatusForbidden, Err: errorvalues.ErrPermissionDenied},
		{Desc: "enabled", ExpectedCode: http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			var snap *service.Snapshot
			if tc.Err == nil {
				snap = testSnapshot()
			}
			tService.EXPECT().EnableNotifications(gomock.Any()).Return(snap, tc.Err)
			assert.Equal(t, tc.ExpectedCode, do(serv, http.MethodPost, "/api/v1/notifications/enable", nil).Code)
		})
	}

	tService.EXPECT().DisableNotifications(gomock.Any()).Return(testSnapshot(), nil)
	assert.Equal(t, http.StatusOK, do(serv, http.MethodPost, "/api/v1/notifications/disable", nil).Code)
}

func TestAddPhoto(t *testing.T) {
	serv, tService := newServer(t)

	t.Run("multipart", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("image", "rex.png")
		require.NoError(t, err)
		part.Write([]byte("raw image"))
		require.NoError(t, mw.Close())

		tService.EXPECT().AddPhoto(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, image io.Reader) (*service.Snapshot, error) {
			data, err := io.ReadAll(image)
			require.NoError(t, err)
			assert.Equal(t, "raw image", string(data))
			return testSnapshot(), nil
		})
		r := httptest.NewRequest(http.MethodPost, "/api/v1/photos", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("multipart without image", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("note", "leg day"))
		require.NoError(t, mw.Close())
		r := httptest.NewRequest(http.MethodPost, "/api/v1/photos", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("raw body rejected by compressor", func(t *testing.T) {
		tService.EXPECT().AddPhoto(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrInvalidInput)
		rr := do(serv, http.MethodPost, "/api/v1/photos", strings.NewReader("not an image"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestExport(t *testing.T) {
	serv, tService := newServer(t)

	tService.EXPECT().Export(gomock.Any()).Return([]byte(`{"wallet":3}`), nil)
	rr := do(serv, http.MethodGet, "/api/v1/export", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"wallet":3}`, rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "footsafe_tracker_v1.json")
}

func TestReadEndpoints(t *testing.T) {
	serv, tService := newServer(t)

	assert.Equal(t, http.StatusOK, do(serv, http.MethodGet, "/api/v1/routines/A", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(serv, http.MethodGet, "/api/v1/routines/Rest", nil).Code)

	tService.EXPECT().State(gomock.Any()).Return(testSnapshot(), nil).Times(2)
	rr := do(serv, http.MethodGet, "/api/v1/market", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	var market api.MarketResponse
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &market))
	assert.Len(t, market.Items, 9)
	assert.Zero(t, market.Wallet)

	rr = do(serv, http.MethodGet, "/api/v1/achievements", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"unlocked":0`)

	rr = do(serv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestGetAchievement(t *testing.T) {
	serv, tService := newServer(t)

	rr := do(serv, http.MethodGet, "/api/v1/achievements/moon_landing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	tService.EXPECT().State(gomock.Any()).Return(testSnapshot(), nil)
	rr = do(serv, http.MethodGet, "/api/v1/achievements/Weekend_Warrior", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got tracker.AchievementStatus
	require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "weekend_warrior", got.ID)
	assert.False(t, got.Unlocked)
}

func TestGetPhotos(t *testing.T) {
	serv, tService := newServer(t)
	snap := testSnapshot()
	snap.State.PhotoJournal = []entity.PhotoEntry{{
		ID:      "p-1",
		Date:    now.Format(time.RFC3339),
		DataURL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg bytes")),
	}}
	tService.EXPECT().State(gomock.Any()).Return(snap, nil).Times(3)

	rr := do(serv, http.MethodGet, "/api/v1/photos/p-1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg bytes", rr.Body.String())

	assert.Equal(t, http.StatusNotFound, do(serv, http.MethodGet, "/api/v1/photos/p-2", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(serv, http.MethodGet, "/api/v1/profile/photo", nil).Code)
}

func TestRestTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := apimocks.NewMockEventPublisher(ctrl)
	serv := api.New(&api.ServicesList{
		TrackerService: mocks.NewMockTrackerServiceI(ctrl),
		Events:         events,
		TimerOptions:   []resttimer.Option{resttimer.WithTick(10 * time.Millisecond)},
	})

	assert.Equal(t, http.StatusConflict, do(serv, http.MethodPost, "/api/v1/timer/toggle", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(serv, http.MethodPost, "/api/v1/timer/start", strings.NewReader(`{"seconds":0}`)).Code)

	done := make(chan notify.Event, 1)
	events.EXPECT().Publish(gomock.Any()).DoAndReturn(func(ev notify.Event) (int, error) {
		done <- ev
		return 1, nil
	}).MinTimes(1)

	rr := do(serv, http.MethodPost, "/api/v1/timer/start", strings.NewReader(`{"seconds":1}`))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"running":true`)
	assert.Contains(t, rr.Body.String(), `"label":"0:01"`)

	select {
	case ev := <-done:
		assert.Equal(t, notify.EventTimer, ev.Type)
		assert.Equal(t, api.RestOverTitle, ev.Title)
	case <-time.After(2 * time.Second):
		t.Fatal("rest over event was not published")
	}
	rr = do(serv, http.MethodGet, "/api/v1/timer", nil)
	assert.Contains(t, rr.Body.String(), `"running":false`)
}
