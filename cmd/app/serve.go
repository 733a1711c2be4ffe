package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0x0FACED/voronoi-regions/pkg/config"
	apperrors "github.com/0x0FACED/voronoi-regions/pkg/errors"
	"github.com/0x0FACED/voronoi-regions/pkg/logger"
	"github.com/0x0FACED/voronoi-regions/pkg/regions"
	"github.com/0x0FACED/voronoi-regions/pkg/render"
	"github.com/0x0FACED/voronoi-regions/pkg/voronoi"
	"github.com/0x0FACED/voronoi-regions/static"
)

const (
	maxCanvas   = 5000
	maxStations = 2000
)

func (a *app) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive cells page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			return newServer(a.cfg, a.log).run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}

type server struct {
	cfg config.Config
	log *logger.ZapLogger
}

func newServer(cfg config.Config, log *logger.ZapLogger) *server {
	return &server{cfg: cfg, log: log}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.diagramHandler)
	r.Post("/", s.diagramHandler)
	r.Get("/cells.png", s.pngHandler)
	r.Get("/cells.json", s.jsonHandler)

	return r
}

func (s *server) run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("Сервер запущен", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Остановка сервера", zap.Duration("timeout", s.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// params разбирает параметры формы или запроса поверх значений из конфига
func (s *server) params(r *http.Request) (siteParams, error) {
	p := siteParams{
		Width:    s.cfg.Canvas.Width,
		Height:   s.cfg.Canvas.Height,
		Stations: s.cfg.Sites.Count,
		Random:   s.cfg.Sites.Random,
		Seed:     s.cfg.Sites.Seed,
	}
	if err := r.ParseForm(); err != nil {
		return p, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "parse form")
	}

	ints := []struct {
		key      string
		dst      *int
		min, max int
	}{
		{"width", &p.Width, 1, maxCanvas},
		{"height", &p.Height, 1, maxCanvas},
		{"stations", &p.Stations, 0, maxStations},
	}
	for _, f := range ints {
		v := r.Form.Get(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < f.min || n > f.max {
			return p, apperrors.New(apperrors.ErrCodeInvalidInput, "%s must be an integer in [%d, %d], got %q", f.key, f.min, f.max, v)
		}
		*f.dst = n
	}

	// форма без галочки не присылает random вовсе
	if r.Method == http.MethodPost {
		p.Random = false
	}
	if v := r.Form.Get("random"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return p, apperrors.New(apperrors.ErrCodeInvalidInput, "random must be a boolean, got %q", v)
		}
		p.Random = b
	}
	if v := r.Form.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return p, apperrors.New(apperrors.ErrCodeInvalidInput, "seed must be an integer, got %q", v)
		}
		p.Seed = seed
	}
	return p, nil
}

func (p siteParams) query() string {
	q := url.Values{}
	q.Set("width", strconv.Itoa(p.Width))
	q.Set("height", strconv.Itoa(p.Height))
	q.Set("stations", strconv.Itoa(p.Stations))
	q.Set("random", strconv.FormatBool(p.Random))
	q.Set("seed", strconv.FormatInt(p.Seed, 10))
	return q.Encode()
}

func (p siteParams) view() render.Viewport {
	return render.Viewport{MaxX: float64(p.Width), MaxY: float64(p.Height)}
}

// build генерирует станции и строит ячейки с логгером запроса
func (s *server) build(p siteParams, log *logger.ZapLogger) ([]voronoi.Vertex, *regions.Result, error) {
	sites := p.generate()
	log.Info("[s] Станции сгенерированы",
		zap.Int("stations", len(sites)),
		zap.Bool("random", p.Random),
		zap.Int64("seed", p.Seed))

	res, err := regions.New(log).Synthesize(sites)
	return sites, res, err
}

func requestLogger(base *logger.ZapLogger, r *http.Request) *logger.ZapLogger {
	return base.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("path", r.URL.Path))
}

func statusFor(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.ErrCodeDegenerateInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// http обработчик страницы с диаграммой и формой для ввода данных
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	level, _ := logger.ParseLevel(s.cfg.Log.Level)
	pageLog := logger.New(level)
	log := requestLogger(pageLog, r)

	p, err := s.params(r)
	if err != nil {
		log.Error("[s] Неверные параметры", zap.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	sites, res, err := s.build(p, log)
	status := http.StatusOK
	if err != nil {
		log.Error("[s] Ячейки не построены", zap.Error(err))
		status = statusFor(err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	fmt.Fprintln(w, static.Part1)
	checked := ""
	if p.Random {
		checked = "checked"
	}
	query := p.query()
	fmt.Fprintf(w, static.Form, p.Width, p.Height, p.Stations, checked, p.Seed, query, query)

	if res != nil {
		scatter, err := render.Chart(sites, res, p.view(), s.cfg.Style.Palette)
		if err == nil {
			err = scatter.Render(w)
		}
		if err != nil {
			log.Error("Ошибка рендеринга диаграммы", zap.Error(err))
		}
	}

	fmt.Fprintln(w, static.Part2)
	// Вставляем логи в HTML
	fmt.Fprintln(w, pageLog.HTML())
	fmt.Fprintln(w, static.Part3)

	s.log.Info("[s] Страница", zap.Int("status", status), zap.Int("stations", len(sites)))
}

func (s *server) pngHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(s.log, r)

	p, err := s.params(r)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	sites, res, err := s.build(p, log)
	if err != nil {
		log.Error("[s] Ячейки не построены", zap.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	frame := render.Frame{Width: p.Width, Height: p.Height, View: p.view()}
	if err := render.PNG(w, res, sites, frame, renderStyle(s.cfg.Style)); err != nil {
		log.Error("[s] PNG не записан", zap.Error(err))
	}
}

func (s *server) jsonHandler(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(s.log, r)

	p, err := s.params(r)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	sites, res, err := s.build(p, log)
	if err != nil {
		log.Error("[s] Ячейки не построены", zap.Error(err))
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := writeCellsJSON(w, sites, res); err != nil {
		log.Error("[s] JSON не записан", zap.Error(err))
	}
}
