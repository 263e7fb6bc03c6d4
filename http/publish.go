package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gold9-app/autopress"
)

// maxUploadBytes caps the multipart memory buffer for direct uploads.
const maxUploadBytes = 32 << 20

type publishRequest struct {
	Folder       string `json:"folder"`
	Status       string `json:"status"`
	AuthorID     int    `json:"author_id"`
	CategoryID   int    `json:"category_id"`
	InternalLink string `json:"internal_link"`
	ExternalLink string `json:"external_link"`
}

type publishResponse struct {
	OK bool `json:"ok"`
	*autopress.Receipt
}

// handlePublish loads a draft folder and runs the full publish pipeline.
// A missing folder maps to 404, a validation failure to 400, and an
// upstream WordPress failure to 500.
func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, autopress.Errorf(autopress.EINVALID, "invalid request body: %v", err))
		return
	}
	if req.Folder == "" {
		s.writeError(w, autopress.Errorf(autopress.EINVALID, "folder name required"))
		return
	}
	if req.Status == "" {
		req.Status = "publish"
	}

	draft, err := s.Drafts.Load(req.Folder)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var duplicate *autopress.PublishRecord
	if s.History != nil {
		if record, err := s.History.FindByContent(r.Context(), draft.HTML); err == nil {
			duplicate = record
		}
	}

	receipt, err := s.Publisher.Publish(r.Context(), &autopress.PublishRequest{
		Draft:        draft,
		Status:       req.Status,
		AuthorID:     req.AuthorID,
		CategoryID:   req.CategoryID,
		InternalLink: req.InternalLink,
		ExternalLink: req.ExternalLink,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	if duplicate != nil {
		receipt.Warnings = append(receipt.Warnings,
			fmt.Sprintf("same content already published as post %d on %s",
				duplicate.PostID, duplicate.PublishedAt.Format("2006-01-02")))
	}

	s.writeJSON(w, http.StatusOK, publishResponse{OK: true, Receipt: receipt})
}

// handleUpload publishes a post from a multipart form instead of a draft
// folder. The image part is staged through a temp file that is removed on
// every exit path.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, autopress.Errorf(autopress.EINVALID, "invalid multipart form: %v", err))
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		s.writeError(w, autopress.Errorf(autopress.EINVALID, "title required"))
		return
	}

	htmlData, _, err := readFormFile(r, "html")
	if err != nil {
		s.writeError(w, err)
		return
	}
	if !utf8.Valid(htmlData) {
		s.writeError(w, autopress.Errorf(autopress.EINVALID, "HTML file is not valid UTF-8"))
		return
	}

	imageName, imageData, err := s.stageImage(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	status := r.FormValue("status")
	if status == "" {
		status = "publish"
	}

	draft := &autopress.Draft{
		Title:     title,
		HTML:      string(htmlData),
		ImageName: imageName,
		ImageData: imageData,
		Meta: autopress.MetaOverride{
			FocusKeyword: r.FormValue("focus_keyword"),
			SEOTitle:     r.FormValue("seo_title"),
			Description:  r.FormValue("description"),
			Slug:         r.FormValue("slug"),
			Tags:         splitTags(r.FormValue("tags")),
		},
	}

	receipt, err := s.Publisher.Publish(r.Context(), &autopress.PublishRequest{
		Draft:        draft,
		Status:       status,
		AuthorID:     formInt(r, "author_id"),
		CategoryID:   formInt(r, "category_id"),
		InternalLink: r.FormValue("internal_link"),
		ExternalLink: r.FormValue("external_link"),
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, publishResponse{OK: true, Receipt: receipt})
}

// stageImage writes the uploaded image part to a temp file, reads it back,
// and deletes the file before returning.
func (s *Server) stageImage(r *http.Request) (string, []byte, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", nil, autopress.Errorf(autopress.EINVALID, "image file required")
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "autopress-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}

func readFormFile(r *http.Request, field string) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", autopress.Errorf(autopress.EINVALID, "%s file required", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

func formInt(r *http.Request, field string) int {
	n, _ := strconv.Atoi(r.FormValue(field))
	return n
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
