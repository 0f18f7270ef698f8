package server

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"magis-backend/internal/store"
)

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	regNo := mux.Vars(r)["regno"]

	path, err := s.local.Find(regNo)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "File not found"})
		return
	}
	if err != nil {
		log.Printf("download %s: %v", regNo, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}

func (s *Server) handleDownloadAll(w http.ResponseWriter, r *http.Request) {
	path, err := s.local.ArchiveAll()
	if errors.Is(err, store.ErrEmpty) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "No payment proofs found"})
		return
	}
	if err != nil {
		log.Printf("download-all: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "archive failed"})
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}
