package snapshots

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

const defaultMaxBytes = 256 << 20

// HTTPConfig configures the HTTP snapshot source
type HTTPConfig struct {
	// URL is the snapshot location. A URL ending in "/" is a directory and
	// db.json or db.bin is appended based on the requested encoding.
	URL string
	// Client defaults to a client with a 30s timeout
	Client *http.Client
	// MaxBytes caps the payload size; defaults to 256MiB
	MaxBytes int64
}

// Validate validates the HTTPConfig
func (cfg *HTTPConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.URL == "" {
		vb.RequiredField("url")
	} else if u, err := url.Parse(cfg.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		vb.InvalidField("url", "must be an absolute http or https url")
	}
	if cfg.MaxBytes < 0 {
		vb.InvalidField("max_bytes", "must not be negative")
	}
	return vb.Build()
}

type httpRepository struct {
	url      string
	client   *http.Client
	maxBytes int64
}

// NewHTTP creates a Repository that GETs the snapshot over HTTP
func NewHTTP(cfg *HTTPConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = defaultMaxBytes
	}

	return &httpRepository{
		url:      cfg.URL,
		client:   client,
		maxBytes: maxBytes,
	}, nil
}

func (r *httpRepository) Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error) {
	enc := preferredEncoding(input)
	target := r.url
	if strings.HasSuffix(target, "/") {
		target += DefaultName + enc.Extension()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid snapshot url %s", target)
	}
	req.Header.Set("Accept", enc.ContentType())

	resp, err := r.client.Do(req)
	if err != nil {
		switch ctx.Err() {
		case context.Canceled:
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "snapshot fetch canceled")
		case context.DeadlineExceeded:
			return nil, errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "snapshot fetch timed out")
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch snapshot from %s", target)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("snapshot not found at %s", target)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errors.Unavailablef("snapshot fetch from %s returned %s", target, resp.Status).
			WithMeta("status_code", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBytes+1))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read snapshot from %s", target)
	}
	if int64(len(data)) > r.maxBytes {
		return nil, errors.Newf(errors.CodeFailedPrecondition, "snapshot at %s exceeds %d bytes", target, r.maxBytes)
	}

	actual, ok := snapshot.DetectEncoding(req.URL.Path, resp.Header.Get("Content-Type"))
	if !ok {
		actual = enc
	}

	return &FetchOutput{
		Data:     data,
		Encoding: actual,
		Source:   fmt.Sprintf("http %s", target),
	}, nil
}
