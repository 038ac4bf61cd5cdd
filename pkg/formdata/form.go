package formdata

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// FromValues converts url.Values into schema input. Fields with one value
// map to a string, fields with several to a []string. Fields without values
// are dropped.
func FromValues(values url.Values) map[string]any {
	data := make(map[string]any, len(values))
	for name, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			data[name] = vals[0]
		default:
			data[name] = append([]string(nil), vals...)
		}
	}
	return data
}

// FromRequest parses a urlencoded or multipart request body, merged with the
// query string, into schema input. Files are added under their field name
// as *multipart.FileHeader, or []*multipart.FileHeader for multiple files,
// with sanitized file names. A file field shadows a value field of the same
// name.
func FromRequest(r *http.Request, maxMemory int64) (map[string]any, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type: %v", ErrFailedToParseForm, err)
	}
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return FromValues(r.Form), nil

	case "multipart/form-data":
		if params["boundary"] == "" {
			return nil, fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
		}
		if err := r.ParseMultipartForm(maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		data := FromValues(r.Form)
		if r.MultipartForm != nil {
			for name, headers := range r.MultipartForm.File {
				for _, fh := range headers {
					fh.Filename = sanitizeFilename(fh.Filename)
				}
				switch len(headers) {
				case 0:
				case 1:
					data[name] = headers[0]
				default:
					data[name] = append([]*multipart.FileHeader(nil), headers...)
				}
			}
		}
		return data, nil

	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
	}
}

// FromQuery converts the request query string into schema input.
func FromQuery(r *http.Request) map[string]any {
	return FromValues(r.URL.Query())
}

func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
