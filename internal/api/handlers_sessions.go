// Replayed - Personal Streaming History Analytics
// Copyright 2026 The Replayed Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/replayed-app/replayed

package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/replayed-app/replayed/internal/ingest"
	"github.com/replayed-app/replayed/internal/logging"
	"github.com/replayed-app/replayed/internal/metrics"
	"github.com/replayed-app/replayed/internal/models"
)

// SessionResponse is the payload returned when a session is created.
type SessionResponse struct {
	SessionID  string `json:"session_id"`
	CreatedAt  string `json:"created_at"`
	TTLSeconds int64  `json:"ttl_seconds"`
}

// CreateSession handles POST /api/v1/sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()

	logging.Ctx(r.Context()).Info().
		Str("session_id", sess.ID).
		Msg("Session created")

	NewResponseWriter(w, r).Created(SessionResponse{
		SessionID:  sess.ID,
		CreatedAt:  sess.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		TTLSeconds: int64(h.cfg.Session.TTL.Seconds()),
	})
}

// UploadResponse summarizes an accepted upload batch.
type UploadResponse struct {
	Files        []models.FileSummary `json:"files"`
	TotalRecords int                  `json:"total_records"`
	DateRange    *models.DateRange    `json:"date_range,omitempty"`
}

// UploadFiles handles POST /api/v1/sessions/{sessionID}/files
//
// Accepts a multipart form with one or more JSON export files under the
// "files" field. The batch replaces any previously uploaded files in the
// session. Malformed JSON rejects the whole batch; unrecognized but
// well-formed files are accepted and classified via the fallback chain.
func (h *Handler) UploadFiles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	maxBatch := h.cfg.Upload.MaxFileBytes * int64(h.cfg.Upload.MaxFilesPerBatch)
	r.Body = http.MaxBytesReader(w, r.Body, maxBatch)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			rw.PayloadTooLarge(fmt.Sprintf("upload exceeds %d byte limit", maxBatch))
			return
		}
		rw.BadRequest("invalid multipart form: " + err.Error())
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Multipart cleanup failed")
		}
	}()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		rw.BadRequest("no files provided under the \"files\" field")
		return
	}
	if len(headers) > h.cfg.Upload.MaxFilesPerBatch {
		rw.BadRequest(fmt.Sprintf("too many files: %d exceeds batch limit of %d",
			len(headers), h.cfg.Upload.MaxFilesPerBatch))
		return
	}

	files := make([]models.UploadedFile, 0, len(headers))
	summaries := make([]models.FileSummary, 0, len(headers))
	total := 0

	for _, fh := range headers {
		if fh.Size > h.cfg.Upload.MaxFileBytes {
			rw.PayloadTooLarge(fmt.Sprintf("file %q exceeds %d byte limit",
				fh.Filename, h.cfg.Upload.MaxFileBytes))
			return
		}

		records, err := h.readExport(fh)
		if err != nil {
			rw.BadRequest(fmt.Sprintf("file %q: %v", fh.Filename, err))
			return
		}

		fileType, detail := ingest.ClassifyFile(fh.Filename, records)
		metrics.FilesUploaded.WithLabelValues(string(fileType)).Inc()
		if detail != "" {
			metrics.FileClassificationFallbacks.Inc()
		}

		files = append(files, models.UploadedFile{
			Name:    fh.Filename,
			Type:    fileType,
			Records: records,
		})
		summaries = append(summaries, models.FileSummary{
			Name:        fh.Filename,
			Type:        fileType,
			RecordCount: len(records),
			Detection:   detail,
		})
		total += len(records)
	}

	sess.SetFiles(files)

	logging.Ctx(r.Context()).Info().
		Str("session_id", sess.ID).
		Int("files", len(files)).
		Int("records", total).
		Msg("Upload batch accepted")

	rw.Success(UploadResponse{
		Files:        summaries,
		TotalRecords: total,
		DateRange:    sess.DateRange(),
	})
}

// readExport reads and decodes one uploaded JSON file.
func (h *Handler) readExport(fh *multipart.FileHeader) ([]models.RawRecord, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.cfg.Upload.MaxFileBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if int64(len(data)) > h.cfg.Upload.MaxFileBytes {
		return nil, fmt.Errorf("exceeds %d byte limit", h.cfg.Upload.MaxFileBytes)
	}

	records, err := ingest.DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return records, nil
}

// ClearFiles handles DELETE /api/v1/sessions/{sessionID}/files
func (h *Handler) ClearFiles(w http.ResponseWriter, r *http.Request) {
	sess := h.sessionFromRequest(w, r)
	if sess == nil {
		return
	}

	sess.Clear()

	logging.Ctx(r.Context()).Info().
		Str("session_id", sess.ID).
		Msg("Session files cleared")

	NewResponseWriter(w, r).NoContent()
}
