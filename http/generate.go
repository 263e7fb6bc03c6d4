package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gold9-app/autopress"
)

// defaultHistoryLimit bounds history listings without an explicit limit.
const defaultHistoryLimit = 50

type generateRequest struct {
	Topic string `json:"topic"`
	Save  bool   `json:"save"`
}

type generateResponse struct {
	OK      bool   `json:"ok"`
	HTML    string `json:"html"`
	SavedAs string `json:"saved_as,omitempty"`
}

// handleGenerate produces an article body for a topic. With save set, the
// result is written to a new draft folder awaiting an image.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if s.Generator == nil {
		s.writeError(w, autopress.Errorf(autopress.EUNAVAILABLE, "article generation is not configured"))
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, autopress.Errorf(autopress.EINVALID, "invalid request body: %v", err))
		return
	}

	html, err := s.Generator.Generate(r.Context(), req.Topic)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := generateResponse{OK: true, HTML: html}
	if req.Save {
		if err := s.Drafts.SaveHTML(req.Topic, html); err != nil {
			s.writeError(w, err)
			return
		}
		resp.SavedAs = req.Topic
	}

	s.writeJSON(w, http.StatusOK, resp)
}

type historyResponse struct {
	OK      bool                       `json:"ok"`
	Records []*autopress.PublishRecord `json:"records"`
}

// handleHistory lists publish records, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.History == nil {
		s.writeError(w, autopress.Errorf(autopress.EUNAVAILABLE, "publish history is not configured"))
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := s.History.FindRecords(r.Context(), autopress.RecordFilter{Limit: limit, Offset: offset})
	if err != nil {
		s.writeError(w, err)
		return
	}
	if records == nil {
		records = []*autopress.PublishRecord{}
	}

	s.writeJSON(w, http.StatusOK, historyResponse{OK: true, Records: records})
}
