package daemon

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"soundboard/internal/api"
	"soundboard/internal/logging"
	"soundboard/internal/services"
)

//go:embed templates/board.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("board.html").
	Funcs(template.FuncMap{"upper": strings.ToUpper}).
	ParseFS(templateFS, "templates/board.html"))

type pageData struct {
	View    api.BoardView
	Error   string
	Refresh bool
}

type webManifest struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	StartURL        string `json:"start_url"`
	Display         string `json:"display"`
	BackgroundColor string `json:"background_color"`
	ThemeColor      string `json:"theme_color"`
}

func (s *apiServer) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "")
}

func (s *apiServer) renderPage(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	view := s.service().View()
	refresh := false
	for _, sound := range view.Sounds {
		if sound.Playing || sound.Pressed {
			refresh = true
			break
		}
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, pageData{View: view, Error: errMsg, Refresh: refresh}); err != nil {
		logging.ErrorWithContext(logging.WithContext(r.Context(), s.logger), "render page failed", "page_render_failed",
			logging.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *apiServer) handleManifest(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/manifest+json")
	_ = json.NewEncoder(w).Encode(webManifest{
		Name:            "Meme Soundboard",
		ShortName:       "Soundboard",
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#1b1b1f",
		ThemeColor:      "#1b1b1f",
	})
}

func (s *apiServer) handleUIFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	req := api.FilterRequest{Action: r.PostForm.Get("action")}
	if values, ok := r.PostForm["category"]; ok && len(values) > 0 {
		req.Category = &values[0]
	}
	if values, ok := r.PostForm["query"]; ok && len(values) > 0 {
		req.Query = &values[0]
	}
	if _, err := s.service().ApplyFilter(req); err != nil {
		s.renderUIError(w, r, err)
		return
	}
	redirectHome(w, r)
}

func (s *apiServer) handleUIPlay(w http.ResponseWriter, r *http.Request) {
	s.service().Play(r.Context(), r.PathValue("id"))
	redirectHome(w, r)
}

func (s *apiServer) handleUIUpload(w http.ResponseWriter, r *http.Request) {
	if _, err := s.upload(w, r); err != nil {
		s.renderUIError(w, r, err)
		return
	}
	redirectHome(w, r)
}

func (s *apiServer) handleUILogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPage(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	req := api.LoginRequest{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
		SignUp:   r.PostForm.Get("signup") != "",
	}
	if _, err := s.service().Login(r.Context(), req); err != nil {
		s.renderUIError(w, r, err)
		return
	}
	redirectHome(w, r)
}

func (s *apiServer) handleUIInstall(w http.ResponseWriter, r *http.Request) {
	s.service().Install(boardURL(r))
	redirectHome(w, r)
}

func (s *apiServer) renderUIError(w http.ResponseWriter, r *http.Request, err error) {
	status := services.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logging.ErrorWithContext(logging.WithContext(r.Context(), s.logger), "form request failed", "ui_request_failed",
			logging.Error(err),
			logging.String("path", r.URL.Path),
		)
	}
	s.renderPage(w, r, status, services.UserMessage(err))
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
