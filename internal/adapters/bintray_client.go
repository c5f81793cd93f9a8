package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"artifact-cleaner/internal/ports"
	"artifact-cleaner/internal/shared"
	"artifact-cleaner/internal/types"
)

const DefaultBintrayEndpoint = "https://bintray.com/api/v1/"

type BintrayAdapter struct {
	Endpoint string
	Timeout  time.Duration
	client   *http.Client
}

type bintrayPackage struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

type bintrayVersion struct {
	Name    string `json:"name"`
	Created string `json:"created"`
}

func NewBintrayAdapter(endpoint string, timeout time.Duration) BintrayAdapter {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultBintrayEndpoint
	}
	if timeout <= 0 {
		timeout = defaultBintrayTimeout
	}
	return BintrayAdapter{
		Endpoint: endpoint,
		Timeout:  timeout,
		client:   newHTTPClient(timeout),
	}
}

func (a BintrayAdapter) ListVersions(ctx context.Context, pkg types.PackageCoordinates) ([]string, error) {
	listURL, err := a.packageURL(pkg)
	if err != nil {
		return nil, err
	}
	body, err := a.do(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}
	var payload bintrayPackage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse package version list").
			WithCause(err)
	}
	return payload.Versions, nil
}

func (a BintrayAdapter) GetVersion(ctx context.Context, creds types.Credentials, pkg types.PackageCoordinates, version string) (types.VersionInfo, error) {
	versionURL, err := a.versionURL(pkg, version)
	if err != nil {
		return types.VersionInfo{}, err
	}
	body, err := a.do(ctx, http.MethodGet, versionURL, &creds)
	if err != nil {
		return types.VersionInfo{}, err
	}
	var payload bintrayVersion
	if err := json.Unmarshal(body, &payload); err != nil {
		return types.VersionInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse version metadata").
			WithCause(err)
	}
	created := parseCreated(payload.Created)
	if created.IsZero() {
		return types.VersionInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("version metadata has no creation date").
			WithCause(fmt.Errorf("version=%s created=%q", version, payload.Created))
	}
	name := payload.Name
	if name == "" {
		name = version
	}
	return types.VersionInfo{Name: name, CreatedAt: created}, nil
}

func (a BintrayAdapter) DeleteVersion(ctx context.Context, creds types.Credentials, pkg types.PackageCoordinates, version string) error {
	versionURL, err := a.versionURL(pkg, version)
	if err != nil {
		return err
	}
	_, err = a.do(ctx, http.MethodDelete, versionURL, &creds)
	return err
}

// do performs a single request without retries. Non-2xx answers become
// *types.StatusError and timeouts wrap types.ErrTimeout.
func (a BintrayAdapter) do(ctx context.Context, method string, target string, creds *types.Credentials) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create bintray request").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if creds != nil {
		req.SetBasicAuth(creds.User, creds.APIKey)
	}
	client := a.client
	if client == nil {
		client = newHTTPClient(a.Timeout)
	}
	started := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s %s: %v", types.ErrTimeout, method, target, err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("bintray request failed: %v", err)).
			WithCause(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %s %s: %v", types.ErrTimeout, method, target, err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read bintray response").
			WithCause(err)
	}
	log.Ctx(ctx).Debug().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(started)).
		Msg("bintray request completed")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Ctx(ctx).Debug().
			Str("url", target).
			Str("body", strings.TrimSpace(string(body))).
			Msg("bintray request rejected")
		return nil, &types.StatusError{
			StatusCode: resp.StatusCode,
			URL:        target,
			Message:    shared.StatusMessage(resp.Status, resp.StatusCode),
		}
	}
	return body, nil
}

func (a BintrayAdapter) packageURL(pkg types.PackageCoordinates) (string, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(a.Endpoint), "/")
	if endpoint == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bintray endpoint is empty")
	}
	if strings.TrimSpace(pkg.Owner) == "" || strings.TrimSpace(pkg.Repo) == "" || strings.TrimSpace(pkg.Package) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package owner, repo and name are required")
	}
	return fmt.Sprintf("%s/packages/%s/%s/%s",
		endpoint,
		url.PathEscape(pkg.Owner),
		url.PathEscape(pkg.Repo),
		url.PathEscape(pkg.Package),
	), nil
}

func (a BintrayAdapter) versionURL(pkg types.PackageCoordinates, version string) (string, error) {
	base, err := a.packageURL(pkg)
	if err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(version)
	if trimmed == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version id is empty")
	}
	return fmt.Sprintf("%s/versions/%s", base, url.PathEscape(trimmed)), nil
}

var _ ports.VersionRegistryPort = BintrayAdapter{}
