package github_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/fedora-notofonts/notofonts/pkg/domain/interfaces"
	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	githubinfra "github.com/fedora-notofonts/notofonts/pkg/infra/github"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/orgs/notofonts/repos", func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Query().Get("type")).Equal("public")
		gt.Value(t, r.Header.Get("Authorization")).Equal("Bearer test-token")

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"name":"old-project","archived":true}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/orgs/notofonts/repos?page=2>; rel="next"`, server.URL))
		fmt.Fprint(w, `[{"name":"arabic","archived":false},{"name":"adlam"}]`)
	})

	mux.HandleFunc("/repos/notofonts/arabic", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name":"arabic","archived":false}`)
	})

	mux.HandleFunc("/repos/notofonts/missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})

	mux.HandleFunc("/repos/notofonts/arabic/releases", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[
			{"name":"NotoSansArabic-v2.010","tag_name":"NotoSansArabic-v2.010","assets":[
				{"name":"NotoSansArabic-v2.010.zip","size":16,"browser_download_url":"%s/download/NotoSansArabic-v2.010.zip"}
			]},
			{"name":"","tag_name":"NotoNaskhArabic-v2.016","assets":[]}
		]`, server.URL)
	})

	mux.HandleFunc("/download/NotoSansArabic-v2.010.zip", func(w http.ResponseWriter, r *http.Request) {
		// Downloads are sent without API credentials
		gt.Value(t, r.Header.Get("Authorization")).Equal("")
		fmt.Fprint(w, "fake zip content")
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, server *httptest.Server) interfaces.GitHubClient {
	t.Helper()
	client, err := githubinfra.NewClient("test-token", githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)
	return client
}

func TestClient_ListRepositories(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server)

	repos, err := client.ListRepositories(context.Background(), "notofonts", "public")
	gt.NoError(t, err)
	gt.Number(t, len(repos)).Equal(3)
	gt.Value(t, repos[0].Name).Equal("arabic")
	gt.Value(t, repos[1].Name).Equal("adlam")
	gt.Value(t, repos[2].Name).Equal("old-project")
	gt.True(t, repos[2].Archived)
}

func TestClient_GetRepository(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server)

	repo, err := client.GetRepository(context.Background(), "notofonts", "arabic")
	gt.NoError(t, err)
	gt.Value(t, repo.Name).Equal("arabic")

	_, err = client.GetRepository(context.Background(), "notofonts", "missing")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrRepositoryNotFound))
}

func TestClient_ListReleases(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server)

	releases, err := client.ListReleases(context.Background(), "notofonts", "arabic")
	gt.NoError(t, err)
	gt.Number(t, len(releases)).Equal(2)

	gt.Value(t, releases[0].Title).Equal("NotoSansArabic-v2.010")
	gt.Number(t, len(releases[0].Assets)).Equal(1)
	gt.Value(t, releases[0].Assets[0].Name).Equal("NotoSansArabic-v2.010.zip")
	gt.Value(t, releases[0].Assets[0].Size).Equal(int64(16))
	gt.True(t, strings.HasSuffix(releases[0].Assets[0].URL, "/download/NotoSansArabic-v2.010.zip"))

	// Untitled releases fall back to the tag
	gt.Value(t, releases[1].DisplayTitle()).Equal("NotoNaskhArabic-v2.016")
}

func TestClient_DownloadAsset(t *testing.T) {
	server := newTestServer(t)
	client := newTestClient(t, server)

	var buf strings.Builder
	err := client.DownloadAsset(context.Background(), server.URL+"/download/NotoSansArabic-v2.010.zip", &buf)
	gt.NoError(t, err)
	gt.Value(t, buf.String()).Equal("fake zip content")

	err = client.DownloadAsset(context.Background(), server.URL+"/download/unknown.zip", &buf)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("unexpected status code")
}

func TestNewClient_EmptyToken(t *testing.T) {
	_, err := githubinfra.NewClient("")
	gt.Error(t, err)
}

func TestNewAppClient(t *testing.T) {
	// This test requires GitHub App credentials from environment variables
	appID := os.Getenv("TEST_GITHUB_APP_ID")
	installationID := os.Getenv("TEST_GITHUB_INSTALLATION_ID")
	privateKey := os.Getenv("TEST_GITHUB_PRIVATE_KEY")

	if appID == "" || installationID == "" || privateKey == "" {
		t.Skip("Test GitHub App credentials not provided via environment variables")
	}

	appIDInt, err := strconv.ParseInt(appID, 10, 64)
	gt.NoError(t, err)

	installationIDInt, err := strconv.ParseInt(installationID, 10, 64)
	gt.NoError(t, err)

	client, err := githubinfra.NewAppClient(appIDInt, installationIDInt, []byte(privateKey))
	gt.NoError(t, err)
	gt.Value(t, client).NotNil()

	repos, err := client.ListRepositories(context.Background(), model.DefaultOrganization, "public")
	gt.NoError(t, err)
	gt.Number(t, len(repos)).Greater(0)
}
