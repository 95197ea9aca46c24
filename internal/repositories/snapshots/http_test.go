package snapshots_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
	"github.com/KirkDiggler/sim-catalog/internal/repositories/snapshots"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

type HTTPRepositoryTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests []string
	ctx      context.Context
}

func TestHTTPRepositorySuite(t *testing.T) {
	suite.Run(t, new(HTTPRepositoryTestSuite))
}

func (s *HTTPRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.requests = nil

	mux := http.NewServeMux()
	mux.HandleFunc("/database/db.json", func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":1}]}`))
	})
	mux.HandleFunc("/database/db.bin", func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r.URL.Path)
		_, _ = w.Write([]byte{0x0a, 0x02, 0x08, 0x01})
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	})
	s.server = httptest.NewServer(mux)
}

func (s *HTTPRepositoryTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *HTTPRepositoryTestSuite) TestNewHTTP() {
	testCases := []struct {
		name    string
		config  *snapshots.HTTPConfig
		wantErr bool
	}{
		{name: "valid", config: &snapshots.HTTPConfig{URL: "http://localhost/db.json"}},
		{name: "nil config", config: nil, wantErr: true},
		{name: "missing url", config: &snapshots.HTTPConfig{}, wantErr: true},
		{name: "relative url", config: &snapshots.HTTPConfig{URL: "/db.json"}, wantErr: true},
		{name: "negative max bytes", config: &snapshots.HTTPConfig{URL: "http://localhost/", MaxBytes: -1}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := snapshots.NewHTTP(tc.config)
			if tc.wantErr {
				s.Error(err)
				s.True(errors.IsInvalidArgument(err))
				s.Nil(repo)
				return
			}
			s.NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *HTTPRepositoryTestSuite) TestFetchDirectoryPicksFileByEncoding() {
	repo, err := snapshots.NewHTTP(&snapshots.HTTPConfig{URL: s.server.URL + "/database/"})
	s.Require().NoError(err)

	out, err := repo.Fetch(s.ctx, &snapshots.FetchInput{Encoding: snapshot.EncodingBinary})
	s.Require().NoError(err)
	s.Equal(snapshot.EncodingBinary, out.Encoding)
	s.Equal([]byte{0x0a, 0x02, 0x08, 0x01}, out.Data)
	s.False(out.Cached)

	out, err = repo.Fetch(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(snapshot.EncodingJSON, out.Encoding)
	s.JSONEq(`{"items":[{"id":1}]}`, string(out.Data))

	s.Equal([]string{"/database/db.bin", "/database/db.json"}, s.requests)
}

func (s *HTTPRepositoryTestSuite) TestFetchFileURLKeepsItsEncoding() {
	repo, err := snapshots.NewHTTP(&snapshots.HTTPConfig{URL: s.server.URL + "/database/db.json"})
	s.Require().NoError(err)

	out, err := repo.Fetch(s.ctx, &snapshots.FetchInput{Encoding: snapshot.EncodingBinary})
	s.Require().NoError(err)
	s.Equal(snapshot.EncodingJSON, out.Encoding)
}

func (s *HTTPRepositoryTestSuite) TestFetchErrors() {
	testCases := []struct {
		name  string
		url   string
		check func(error) bool
	}{
		{name: "not found", url: s.server.URL + "/missing.json", check: errors.IsNotFound},
		{name: "server error", url: s.server.URL + "/broken", check: errors.IsUnavailable},
		{name: "unreachable", url: "http://127.0.0.1:1/db.json", check: errors.IsUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := snapshots.NewHTTP(&snapshots.HTTPConfig{URL: tc.url})
			s.Require().NoError(err)

			out, err := repo.Fetch(s.ctx, nil)
			s.Error(err)
			s.Nil(out)
			s.True(tc.check(err), "unexpected error %v", err)
		})
	}
}

func (s *HTTPRepositoryTestSuite) TestFetchTooLarge() {
	repo, err := snapshots.NewHTTP(&snapshots.HTTPConfig{
		URL:      s.server.URL + "/database/db.json",
		MaxBytes: 4,
	})
	s.Require().NoError(err)

	_, err = repo.Fetch(s.ctx, nil)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *HTTPRepositoryTestSuite) TestFetchCanceled() {
	repo, err := snapshots.NewHTTP(&snapshots.HTTPConfig{URL: s.server.URL + "/database/db.json"})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err = repo.Fetch(ctx, nil)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}
