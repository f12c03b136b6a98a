package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/avvvet/bingo-validator/internal/validatorsvc/service"
	"github.com/avvvet/bingo-validator/internal/validatorsvc/web"
	log "github.com/sirupsen/logrus"
)

const (
	flashNoFile      = "No file selected."
	flashNotUTF8     = "Uploaded file is not valid UTF-8 text."
	flashUnreadable  = "Unable to read the submitted form."
	flashTooLargeFmt = "Submission exceeds the %d byte limit."
)

func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, web.Page{})
}

// ValidateFormHandler takes pasted text from text_input or, when that is
// blank, an uploaded file, and renders the batch results.
func (h *Handler) ValidateFormHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.flash(w, http.StatusRequestEntityTooLarge, fmt.Sprintf(flashTooLargeFmt, h.maxUploadBytes))
			return
		}
		log.Warnf("unable to parse form: %s", err)
		h.flash(w, http.StatusBadRequest, flashUnreadable)
		return
	}

	text, flash, code := h.submittedText(r)
	if flash != "" {
		h.flash(w, code, flash)
		return
	}

	report, err := h.service.Validate(r.Context(), text)
	if err != nil {
		if errors.Is(err, service.ErrNoInput) || errors.Is(err, service.ErrNoCards) {
			h.flash(w, http.StatusOK, err.Error())
			return
		}
		log.Errorf("Error [ValidationService.Validate] %s", err)
		h.flash(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.render(w, http.StatusOK, web.Page{
		Submitted:       true,
		ValidCount:      report.ValidCount,
		InvalidMessages: report.InvalidMessages,
		DuplicateGroups: report.DuplicateGroups,
		OriginalText:    report.OriginalText,
	})
}

// submittedText returns the text to validate, or a flash message and
// status when the request carries nothing usable.
func (h *Handler) submittedText(r *http.Request) (string, string, int) {
	if text := r.FormValue("text_input"); strings.TrimSpace(text) != "" {
		return text, "", 0
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if r.MultipartForm != nil {
			// a file input left empty arrives as a part without a filename
			if _, ok := r.MultipartForm.Value["file"]; ok {
				return "", flashNoFile, http.StatusOK
			}
		}
		return "", service.ErrNoInput.Error(), http.StatusOK
	}
	defer file.Close()

	if header.Filename == "" {
		return "", flashNoFile, http.StatusOK
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		log.Warnf("unable to read upload %s: %s", header.Filename, err)
		return "", flashUnreadable, http.StatusBadRequest
	}
	if !utf8.Valid(raw) {
		return "", flashNotUTF8, http.StatusBadRequest
	}

	log.Debugf("received upload %s (%d bytes)", header.Filename, len(raw))
	return strings.TrimPrefix(string(raw), "\ufeff"), "", 0
}

func (h *Handler) flash(w http.ResponseWriter, code int, msg string) {
	h.render(w, code, web.Page{Flashes: []string{msg}})
}

func (h *Handler) render(w http.ResponseWriter, code int, p web.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := web.RenderIndex(w, p); err != nil {
		log.Errorf("Failed to render index: %v", err)
	}
}
