package adapthttp

import (
	"net/http"
	"strconv"
	"strings"

	"cataloguer/internal/domain"
)

func (s *Server) handleCatalogues(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listCatalogues(w, r)
	case http.MethodPost:
		s.createCatalogue(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCatalogueByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/catalogues/"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Catalogue not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getCatalogue(w, r, id)
	case http.MethodPut:
		s.updateCatalogue(w, r, id)
	case http.MethodDelete:
		s.deleteCatalogue(w, r, id)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listCatalogues(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalogues.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) getCatalogue(w http.ResponseWriter, r *http.Request, id int64) {
	c, err := s.catalogues.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Catalogue not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) createCatalogue(w http.ResponseWriter, r *http.Request) {
	var c domain.Catalogue
	if err := parseJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if _, err := s.catalogues.Create(r.Context(), c); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeMessage(w, http.StatusCreated, "Catalogue created")
}

func (s *Server) updateCatalogue(w http.ResponseWriter, r *http.Request, id int64) {
	var c domain.Catalogue
	if err := parseJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	// A missing id affects zero rows; the original API reported success for
	// that case and the contract keeps it.
	if _, err := s.catalogues.UpdateByID(r.Context(), id, c); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeMessage(w, http.StatusOK, "Catalogue updated")
}

func (s *Server) deleteCatalogue(w http.ResponseWriter, r *http.Request, id int64) {
	ok, err := s.catalogues.DeleteByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Catalogue not found")
		return
	}
	writeMessage(w, http.StatusOK, "Catalogue deleted")
}
