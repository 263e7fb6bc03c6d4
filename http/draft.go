package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gold9-app/autopress"
)

type folderEntry struct {
	*autopress.DraftInfo
	Inspection *autopress.Inspection `json:"inspection,omitempty"`
}

type foldersResponse struct {
	OK      bool           `json:"ok"`
	Folders []*folderEntry `json:"folders"`
}

// handleListFolders returns one entry per draft folder: its count-based
// validation state, the focus keyword its title would yield, and for valid
// folders a structural summary of the body. Summaries are best-effort; a
// folder that fails to load still appears in the listing.
func (s *Server) handleListFolders(w http.ResponseWriter, r *http.Request) {
	infos, err := s.Drafts.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	entries := make([]*folderEntry, 0, len(infos))
	for _, info := range infos {
		entry := &folderEntry{DraftInfo: info}
		if info.Valid {
			if draft, err := s.Drafts.Load(info.Name); err == nil {
				entry.Inspection, _ = s.Inspector.Inspect(draft.HTML)
			}
		}
		entries = append(entries, entry)
	}

	s.writeJSON(w, http.StatusOK, foldersResponse{OK: true, Folders: entries})
}

type previewResponse struct {
	OK         bool                     `json:"ok"`
	Name       string                   `json:"name"`
	Markdown   string                   `json:"markdown"`
	Inspection *autopress.Inspection    `json:"inspection"`
	SEO        autopress.SEOFields      `json:"seo"`
	Published  *autopress.PublishRecord `json:"previously_published,omitempty"`
}

// handlePreviewFolder renders a draft for review: its body as Markdown, a
// structural summary, and the SEO fields a publish would derive. Previewing
// never mutates the draft or talks to WordPress.
func (s *Server) handlePreviewFolder(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	draft, err := s.Drafts.Load(name)
	if err != nil {
		s.writeError(w, err)
		return
	}

	markdown, err := s.Converter.Convert(draft.HTML)
	if err != nil {
		s.writeError(w, err)
		return
	}

	inspection, err := s.Inspector.Inspect(draft.HTML)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := previewResponse{
		OK:         true,
		Name:       name,
		Markdown:   markdown,
		Inspection: inspection,
		SEO:        autopress.BuildSEOFields(draft.Title, draft.HTML, s.SiteName, draft.Meta),
	}

	if s.History != nil {
		if record, err := s.History.FindByContent(r.Context(), draft.HTML); err == nil {
			resp.Published = record
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}
