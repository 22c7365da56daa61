package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/versescope/versescope/internal/utils"
	"github.com/versescope/versescope/pkg/reference"
	"github.com/versescope/versescope/pkg/render"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Ctrl.State().View())
}

func (s *Server) handleTranslations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Catalog.All())
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	tokens := utils.SplitList(r.FormValue("translations"))
	sel, unknown := s.Catalog.Select(tokens...)
	if len(unknown) > 0 {
		http.Error(w, "unknown translations: "+strings.Join(unknown, ", "), http.StatusBadRequest)
		return
	}
	s.Ctrl.ChangeSelection(sel)
	writeJSON(w, http.StatusOK, s.Ctrl.State().View())
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	chapter, err := strconv.Atoi(r.FormValue("chapter"))
	if err != nil {
		http.Error(w, "invalid chapter", http.StatusBadRequest)
		return
	}
	ref, err := reference.New(r.FormValue("book"), chapter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.Ctrl.ChangeReference(ref)
	writeJSON(w, http.StatusOK, s.Ctrl.State().View())
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	s.Ctrl.RequestFetch()
	writeJSON(w, http.StatusAccepted, s.Ctrl.State().View())
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	state := s.Ctrl.State()
	view := state.View()

	page := render.Page{
		Title:   state.Reference.String(),
		Status:  view.State + " · " + state.Selection.String(),
		Error:   view.Error,
		Columns: view.Columns,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTMLPage(w, page); err != nil {
		utils.Log.Warnf("Rendering page failed: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := render.JSON(w, v); err != nil {
		utils.Log.Warnf("Writing JSON response failed: %v", err)
	}
}
