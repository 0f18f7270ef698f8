package server

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"magis-backend/internal/metrics"
	"magis-backend/internal/models"
	"magis-backend/internal/notify"
	"magis-backend/internal/store"
	"magis-backend/internal/util"
)

const maxUploadBytes = 16 << 20

// handleSubmit runs the four pipeline stages in fixed order: notify the
// Telegram chat, store the payment proof, append the registry row,
// redirect. Stages two to four are best-effort; the submitter always
// gets the same redirect.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid multipart form"})
		return
	}

	sub := models.Submission{
		Name:       r.FormValue("name"),
		RegisterNo: r.FormValue("register_no"),
		Phone:      r.FormValue("phone"),
		Email:      r.FormValue("email"),
		College:    r.FormValue("college"),
		ClassName:  r.FormValue("class"),
		Gender:     r.FormValue("gender"),
		BloodGroup: r.FormValue("blood_group"),
		TshirtSize: r.FormValue("tshirt_size"),
	}

	file, header, err := r.FormFile("payment_proof")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "missing required field: payment_proof"})
		return
	}
	defer file.Close()

	if err := s.validate.Struct(sub); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": validationMessage(err)})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "could not read payment_proof"})
		return
	}
	att := models.Attachment{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}

	metrics.SubmissionsTotal.Inc()
	stamp := util.NowStamp()

	status := s.notifier.Notify(r.Context(), sub, att, stamp)
	if status != notify.StatusSent {
		metrics.NotifyFailures.Inc()
	}

	key := store.KeyFor(sub.RegisterNo, att.Filename)
	locator, err := s.store.Store(r.Context(), key, data, att.ContentType)
	if err != nil {
		log.Printf("store: %s: %v", key, err)
		metrics.StoreFailures.Inc()
		locator = store.FailedLocator
	}

	if err := s.registry.AppendSubmission(r.Context(), sub, string(status), locator, stamp); err != nil {
		// The only failure that leaves no durable record of the submission.
		log.Printf("registry: append failed for %s, no record written: %v", sub.RegisterNo, err)
		metrics.RegistryFailures.Inc()
	}

	http.Redirect(w, r, s.cfg.RedirectURL, http.StatusSeeOther)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return "missing required field: " + strings.Join(fields, ", ")
}
