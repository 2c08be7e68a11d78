package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/apperr"
	"github.com/justsurfingit/job-board/internal/auth"
	"github.com/justsurfingit/job-board/internal/storage"
)

// caller returns the principal Authenticate stored on the request.
func caller(c *gin.Context) (auth.Principal, bool) {
	p, ok := auth.FromContext(c)
	if !ok {
		_ = c.Error(apperr.Auth("User Not Authorized"))
	}
	return p, ok
}

// limitBody caps the request body at max bytes.
func limitBody(c *gin.Context, max int64) {
	if max > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
	}
}

// formFile opens the named multipart file. A missing part yields a nil
// file; the returned close func is always safe to call.
func formFile(c *gin.Context, field string) (*storage.File, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, uploadError(err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, apperr.Internal("Could not read the uploaded file.", err)
	}
	file := &storage.File{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}
	return file, func() { _ = f.Close() }, nil
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.Validation("Uploaded file is too large.")
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, http.ErrNotMultipart) {
		return apperr.Validation("Invalid multipart form.")
	}
	return apperr.Validation("Invalid file upload.")
}
