package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/limbo/rexfit/internal/catalog"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/internal/imaging"
	"github.com/limbo/rexfit/internal/resttimer"
	"github.com/limbo/rexfit/internal/service"
	"github.com/limbo/rexfit/internal/tracker"
	"github.com/limbo/rexfit/pkg/entity"
	"github.com/limbo/rexfit/pkg/httputil"
)

const (
	StorageFullWarning = "Storage full! Try deleting some photos."

	requestTimeout = 10 * time.Second
	maxUploadBytes = 20 << 20
)

type TimerRequest struct {
	Seconds int `json:"seconds"`
}

// TimerResponse adds the m:ss label the countdown view shows.
type TimerResponse struct {
	resttimer.State
	Label string `json:"label"`
}

func timerResponse(state resttimer.State) TimerResponse {
	return TimerResponse{State: state, Label: state.Label()}
}

type MarketResponse struct {
	Items     []entity.StoreItem `json:"items"`
	Wallet    int                `json:"wallet"`
	Inventory []string           `json:"inventory"`
	Equipped  []string           `json:"equipped"`
}

// writeResult answers with the result, or with the mapped error. A change
// that was applied but not saved still answers 200, with a warning.
func writeResult[T any](w http.ResponseWriter, logger *slog.Logger, op string, result *T, err error) {
	if err != nil {
		if result != nil && errors.Is(err, errorvalues.ErrPersistFailed) {
			logger.Warn(op+": change kept in memory only", slog.String("error", err.Error()))
			httputil.WriteDataResponse(w, http.StatusOK, result, StorageFullWarning)
			return
		}
		writeServiceError(w, logger, op, err)
		return
	}
	httputil.WriteDataResponse(w, http.StatusOK, result, "")
	logger.Info(op + " done")
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var (
		status  int
		message string
		details error
	)
	switch {
	case errors.Is(err, errorvalues.ErrInvalidInput):
		status, message, details = http.StatusBadRequest, "invalid input", err
	case errors.Is(err, errorvalues.ErrInsufficientFunds):
		status, message = http.StatusPaymentRequired, "Not enough bones!"
	case errors.Is(err, errorvalues.ErrUnknownExercise):
		status, message = http.StatusNotFound, "exercise isn't part of today's routine"
	case errors.Is(err, errorvalues.ErrUnknownItem):
		status, message = http.StatusNotFound, "item doesn't exist"
	case errors.Is(err, errorvalues.ErrPhotoNotFound):
		status, message = http.StatusNotFound, "photo doesn't exist"
	case errors.Is(err, errorvalues.ErrMoodNotFound):
		status, message = http.StatusNotFound, "no check-in on that date"
	case errors.Is(err, errorvalues.ErrUnknownAchievement):
		status, message = http.StatusNotFound, "achievement doesn't exist"
	case errors.Is(err, errorvalues.ErrItemOwned):
		status, message = http.StatusConflict, "item already owned"
	case errors.Is(err, errorvalues.ErrItemNotOwned):
		status, message = http.StatusConflict, "item isn't owned"
	case errors.Is(err, errorvalues.ErrNotEquippable):
		status, message = http.StatusBadRequest, "item can't be equipped"
	case errors.Is(err, errorvalues.ErrTimerNotRunning):
		status, message = http.StatusConflict, "rest timer isn't running"
	case errors.Is(err, errorvalues.ErrNotificationsUnsupported):
		status, message = http.StatusPreconditionFailed, "notifications aren't supported"
	case errors.Is(err, errorvalues.ErrPermissionDenied):
		status, message = http.StatusForbidden, "notification permission denied"
	case errors.Is(err, errorvalues.ErrPersistFailed):
		status, message = http.StatusInsufficientStorage, StorageFullWarning
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	logger.Warn(op+" rejected", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, message, details)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}

// uploadedImage accepts either a multipart form with an "image" field or the
// raw image as the request body.
func uploadedImage(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, _, err := r.FormFile("image")
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return r.Body, nil
}

func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.State(ctx)
	writeResult(w, GetLoggerFromCtx(r.Context()), "get state", snap, err)
}

func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, err := s.trackerService.Export(ctx)
	if err != nil {
		writeServiceError(w, logger, "export", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+catalog.StorageKey+`.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
	logger.Info("snapshot exported")
}

func (s *Server) GetAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.State(ctx)
	if snap == nil {
		writeServiceError(w, logger, "get achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"achievements": snap.Summary.Achievements,
		"unlocked":     snap.Summary.UnlockedAchievements,
	})
}

func (s *Server) GetAchievement(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := tracker.AchievementByID(chi.URLParam(r, "id"))
	if !ok {
		writeServiceError(w, logger, "get achievement", errorvalues.ErrUnknownAchievement)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.State(ctx)
	if snap == nil {
		writeServiceError(w, logger, "get achievement", err)
		return
	}
	status := tracker.AchievementStatus{Achievement: a}
	for _, st := range snap.Summary.Achievements {
		if st.ID == a.ID {
			status.Unlocked = st.Unlocked
			break
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) GetRoutine(w http.ResponseWriter, r *http.Request) {
	routine, ok := catalog.Routine(entity.RoutineType(chi.URLParam(r, "id")))
	if !ok {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "routine doesn't exist", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, routine)
}

func (s *Server) GetMarket(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.State(ctx)
	if snap == nil {
		writeServiceError(w, logger, "get market", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MarketResponse{
		Items:     catalog.Market(),
		Wallet:    snap.State.Wallet,
		Inventory: snap.State.Inventory,
		Equipped:  snap.State.EquippedItems,
	})
}

func (s *Server) CycleRoutine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.CycleRoutine(ctx)
	writeResult(w, GetLoggerFromCtx(r.Context()), "cycle routine", snap, err)
}

func (s *Server) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.ScheduleRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("update schedule error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.UpdateSchedule(ctx, &req)
	writeResult(w, logger, "update schedule", snap, err)
}

func (s *Server) ToggleExercise(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.trackerService.ToggleExercise(ctx, chi.URLParam(r, "id"))
	writeResult(w, GetLoggerFromCtx(r.Context()), "toggle exercise", res, err)
}

func (s *Server) ToggleRestDayActivity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.ToggleRestDayActivity(ctx)
	writeResult(w, GetLoggerFromCtx(r.Context()), "toggle rest activity", snap, err)
}

func (s *Server) AddWater(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.WaterRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("add water error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.AddWater(ctx, &req)
	writeResult(w, logger, "add water", snap, err)
}

func (s *Server) AddWeight(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.WeightRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("add weight error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.AddWeight(ctx, &req)
	writeResult(w, logger, "add weight", snap, err)
}

func (s *Server) SetHeight(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.HeightRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("set height error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.SetHeight(ctx, &req)
	writeResult(w, logger, "set height", snap, err)
}

func (s *Server) SaveMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.MoodRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("save mood error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.trackerService.SaveMood(ctx, &req)
	writeResult(w, logger, "save mood", res, err)
}

func (s *Server) DeleteMood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.DeleteMood(ctx, chi.URLParam(r, "date"))
	writeResult(w, GetLoggerFromCtx(r.Context()), "delete mood", snap, err)
}

func (s *Server) AddPhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	image, err := uploadedImage(w, r)
	if err != nil {
		logger.Error("add photo error: no image in request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "image is missing", nil)
		return
	}
	defer image.Close()
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.AddPhoto(ctx, image)
	writeResult(w, logger, "add photo", snap, err)
}

// writeJPEG answers with the image behind a stored data URL.
func writeJPEG(w http.ResponseWriter, logger *slog.Logger, op, dataURL string) {
	data, err := imaging.Decode(dataURL)
	if err != nil {
		logger.Error(op+" error: stored image is unreadable", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) GetPhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.State(ctx)
	if snap == nil {
		writeServiceError(w, logger, "get photo", err)
		return
	}
	id := chi.URLParam(r, "id")
	idx := slices.IndexFunc(snap.State.PhotoJournal, func(p entity.PhotoEntry) bool { return p.ID == id })
	if idx < 0 {
		writeServiceError(w, logger, "get photo", errorvalues.ErrPhotoNotFound)
		return
	}
	writeJPEG(w, logger, "get photo", snap.State.PhotoJournal[idx].DataURL)
}

func (s *Server) GetUserPhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.State(ctx)
	if snap == nil {
		writeServiceError(w, logger, "get profile photo", err)
		return
	}
	if snap.State.UserPhoto == "" {
		writeServiceError(w, logger, "get profile photo", errorvalues.ErrPhotoNotFound)
		return
	}
	writeJPEG(w, logger, "get profile photo", snap.State.UserPhoto)
}

func (s *Server) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.DeletePhoto(ctx, chi.URLParam(r, "id"))
	writeResult(w, GetLoggerFromCtx(r.Context()), "delete photo", snap, err)
}

func (s *Server) SetUserName(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.NameRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("set name error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.SetUserName(ctx, &req)
	writeResult(w, logger, "set name", snap, err)
}

func (s *Server) SetUserPhoto(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	image, err := uploadedImage(w, r)
	if err != nil {
		logger.Error("set profile photo error: no image in request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "image is missing", nil)
		return
	}
	defer image.Close()
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.SetUserPhoto(ctx, image)
	writeResult(w, logger, "set profile photo", snap, err)
}

func (s *Server) RemoveUserPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.RemoveUserPhoto(ctx)
	writeResult(w, GetLoggerFromCtx(r.Context()), "remove profile photo", snap, err)
}

func (s *Server) Buy(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.trackerService.Buy(ctx, chi.URLParam(r, "id"))
	writeResult(w, GetLoggerFromCtx(r.Context()), "buy", res, err)
}

func (s *Server) ToggleEquip(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.trackerService.ToggleEquip(ctx, chi.URLParam(r, "id"))
	writeResult(w, GetLoggerFromCtx(r.Context()), "toggle equip", res, err)
}

func (s *Server) EnableNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.EnableNotifications(ctx)
	writeResult(w, GetLoggerFromCtx(r.Context()), "enable notifications", snap, err)
}

func (s *Server) DisableNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	snap, err := s.trackerService.DisableNotifications(ctx)
	writeResult(w, GetLoggerFromCtx(r.Context()), "disable notifications", snap, err)
}

func (s *Server) GetTimer(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, timerResponse(s.timer.State()))
}

func (s *Server) StartTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req TimerRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("start timer error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	state, err := s.timer.Start(req.Seconds)
	if err != nil {
		writeServiceError(w, logger, "start timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, timerResponse(state))
}

func (s *Server) ToggleTimer(w http.ResponseWriter, r *http.Request) {
	state, err := s.timer.Toggle()
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "toggle timer", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, timerResponse(state))
}

func (s *Server) CancelTimer(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, timerResponse(s.timer.Cancel()))
}
