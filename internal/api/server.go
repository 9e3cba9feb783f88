package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/rexfit/internal/notify"
	"github.com/limbo/rexfit/internal/resttimer"
	"github.com/limbo/rexfit/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const (
	RestOverTitle = "Rest over"
	RestOverBody  = "Back to work! Rex is watching. 🐶"
)

type Server struct {
	mx             *chi.Mux
	trackerService service.TrackerServiceI
	events         EventPublisher
	ws             http.Handler
	timer          *resttimer.Timer
	corsOrigins    []string
}

type ServicesList struct {
	TrackerService service.TrackerServiceI
	// Optional. Without it timer events are dropped.
	Events EventPublisher
	// Optional handler mounted at /ws.
	WebSocket   http.Handler
	CORSOrigins []string
	// Optional timer options, tests shorten the tick with them.
	TimerOptions []resttimer.Option
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		trackerService: servicesOptions.TrackerService,
		events:         servicesOptions.Events,
		ws:             servicesOptions.WebSocket,
		corsOrigins:    servicesOptions.CORSOrigins,
	}
	timerOpts := append([]resttimer.Option{
		resttimer.OnTick(s.publishTimer),
		resttimer.OnDone(s.publishRestOver),
	}, servicesOptions.TimerOptions...)
	s.timer = resttimer.New(timerOpts...)
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}).Handler)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)

	s.mx.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	s.mx.Handle("/metrics", promhttp.Handler())
	if s.ws != nil {
		s.mx.Handle("/ws", s.ws)
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.GetState)
		r.Get("/export", s.Export)
		r.Get("/achievements", s.GetAchievements)
		r.Get("/achievements/{id}", s.GetAchievement)
		r.Get("/routines/{id}", s.GetRoutine)
		r.Get("/market", s.GetMarket)

		r.Post("/routine/cycle", s.CycleRoutine)
		r.Put("/schedule", s.UpdateSchedule)
		r.Post("/exercises/{id}/toggle", s.ToggleExercise)
		r.Post("/rest-activity/toggle", s.ToggleRestDayActivity)
		r.Post("/water", s.AddWater)

		r.Post("/weight", s.AddWeight)
		r.Put("/height", s.SetHeight)
		r.Post("/moods", s.SaveMood)
		r.Delete("/moods/{date}", s.DeleteMood)
		r.Post("/photos", s.AddPhoto)
		r.Get("/photos/{id}", s.GetPhoto)
		r.Delete("/photos/{id}", s.DeletePhoto)
		r.Put("/profile/name", s.SetUserName)
		r.Get("/profile/photo", s.GetUserPhoto)
		r.Put("/profile/photo", s.SetUserPhoto)
		r.Delete("/profile/photo", s.RemoveUserPhoto)

		r.Post("/market/{id}/buy", s.Buy)
		r.Post("/inventory/{id}/equip", s.ToggleEquip)

		r.Post("/notifications/enable", s.EnableNotifications)
		r.Post("/notifications/disable", s.DisableNotifications)

		r.Get("/timer", s.GetTimer)
		r.Post("/timer/start", s.StartTimer)
		r.Post("/timer/toggle", s.ToggleTimer)
		r.Post("/timer/cancel", s.CancelTimer)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api listening", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.timer.Cancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) publishTimer(state resttimer.State) {
	s.publish(notify.Event{Type: notify.EventTimer, Data: state})
}

func (s *Server) publishRestOver(state resttimer.State) {
	s.publish(notify.Event{Type: notify.EventTimer, Title: RestOverTitle, Body: RestOverBody, Data: state})
}

func (s *Server) publish(ev notify.Event) {
	if s.events == nil {
		return
	}
	if _, err := s.events.Publish(ev); err != nil {
		slog.Warn("publishing event failed", slog.String("type", string(ev.Type)), slog.String("error", err.Error()))
	}
}
