package http

import (
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/service/ingest"
	"github.com/revisor-lab/revisor/pkg/utils/errutil"
	"github.com/revisor-lab/revisor/pkg/utils/safe"
)

// maxIngestBody bounds the whole multipart request, on top of the
// per-file ceiling enforced by the ingest service.
const maxIngestBody = 64 << 20

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxIngestBody)
	if err := r.ParseMultipartForm(maxIngestBody); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to parse multipart form"), http.StatusBadRequest)
		return
	}

	var files []ingest.File
	for _, headers := range r.MultipartForm.File {
		for _, header := range headers {
			f, err := header.Open()
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to open uploaded file", goerr.V("name", header.Filename)), http.StatusBadRequest)
				return
			}
			// Read one byte past the ceiling so oversized files are
			// detected without buffering them whole.
			data, err := io.ReadAll(io.LimitReader(f, ingest.MaxFileSize+1))
			safe.Close(r.Context(), f)
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to read uploaded file", goerr.V("name", header.Filename)), http.StatusBadRequest)
				return
			}
			files = append(files, ingest.File{Name: header.Filename, Data: data})
		}
	}

	if len(files) == 0 {
		writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "no files uploaded"})
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, s.ingest.Process(files))
}
