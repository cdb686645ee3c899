package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pandodao/spl-minter/core"
	"github.com/pandodao/spl-minter/service/session"
)

// Session is the controller surface the browser UI drives.
type Session interface {
	Snapshot() session.Snapshot
	SelectNetwork(network core.Network) error
	SetForm(form core.TokenForm)
	Connect(ctx context.Context, opts core.ConnectOptions) error
	RefreshBalance(ctx context.Context) error
	LoadTokens(ctx context.Context) error
	CreateToken(ctx context.Context, form core.TokenForm) (*core.Token, error)
}

// Disconnecter fires the wallet extension's disconnect event.
type Disconnecter interface {
	Disconnect()
}

func New(session Session, wallet Disconnecter, logger *slog.Logger) *Server {
	return &Server{
		session: session,
		wallet:  wallet,
		logger:  logger.With("server", "api"),
	}
}

type Server struct {
	session Session
	wallet  Disconnecter
	logger  *slog.Logger
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Route("/session", func(r chi.Router) {
		r.Get("/", s.getSession)
		r.Put("/network", s.selectNetwork)
		r.Post("/connect", s.connect)
		r.Post("/disconnect", s.disconnect)
		r.Post("/balance", s.refreshBalance)
	})

	r.Put("/form", s.setForm)

	r.Route("/tokens", func(r chi.Router) {
		r.Get("/", s.listTokens)
		r.Post("/", s.createToken)
	})

	return r
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) selectNetwork(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Network core.Network `json:"network"`
	}

	if err := decodeBody(r, &body); err != nil {
		renderError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.session.SelectNetwork(body.Network); err != nil {
		renderError(w, http.StatusBadRequest, err)
		return
	}

	renderJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) connect(w http.ResponseWriter, r *http.Request) {
	var opts core.ConnectOptions
	if err := decodeBody(r, &opts); err != nil {
		renderError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.session.Connect(r.Context(), opts); err != nil {
		s.logger.Debug("session.Connect", "err", err)
		renderError(w, statusOf(err), err)
		return
	}

	renderJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) disconnect(w http.ResponseWriter, r *http.Request) {
	s.wallet.Disconnect()
	renderJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) refreshBalance(w http.ResponseWriter, r *http.Request) {
	// failures surface as the balance error marker
	if err := s.session.RefreshBalance(r.Context()); err != nil {
		s.logger.Warn("session.RefreshBalance", "err", err)
	}

	renderJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) setForm(w http.ResponseWriter, r *http.Request) {
	form := core.DefaultTokenForm()
	if err := decodeBody(r, &form); err != nil {
		renderError(w, http.StatusBadRequest, err)
		return
	}

	s.session.SetForm(form)
	renderJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) listTokens(w http.ResponseWriter, r *http.Request) {
	if err := s.session.LoadTokens(r.Context()); err != nil {
		renderError(w, statusOf(err), err)
		return
	}

	renderJSON(w, http.StatusOK, map[string]any{
		"tokens": s.session.Snapshot().Tokens,
	})
}

func (s *Server) createToken(w http.ResponseWriter, r *http.Request) {
	form := s.session.Snapshot().Form
	if err := decodeBody(r, &form); err != nil {
		renderError(w, http.StatusBadRequest, err)
		return
	}

	token, err := s.session.CreateToken(r.Context(), form)
	if err != nil {
		renderError(w, statusOf(err), err)
		return
	}

	renderJSON(w, http.StatusCreated, map[string]any{
		"token": token,
	})
}
