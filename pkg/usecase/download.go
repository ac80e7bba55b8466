package usecase

import (
	"context"
	"maps"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fedora-notofonts/notofonts/pkg/domain/interfaces"
	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type downloadUseCase struct {
	githubClient interfaces.GitHubClient
	releaseUC    interfaces.ReleaseUseCase
}

// NewDownload creates a new instance of DownloadUseCase
func NewDownload(githubClient interfaces.GitHubClient, releaseUC interfaces.ReleaseUseCase) interfaces.DownloadUseCase {
	return &downloadUseCase{
		githubClient: githubClient,
		releaseUC:    releaseUC,
	}
}

// Download fetches assets of a project. With a release tag only the release
// titled so is used, otherwise the latest release of each logical name.
// Titles are matched before duplicate versions are dropped.
func (uc *downloadUseCase) Download(ctx context.Context, project string, opts model.DownloadOptions) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)

	mode := model.ModeLatest
	if opts.ReleaseTag != "" {
		mode = model.ModeEvery
	}

	resolution, err := uc.releaseUC.ResolveAll(ctx, []string{project}, mode)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve releases", goerr.V("project", project))
	}

	groups := resolution.Result[project]
	if len(groups) == 0 {
		return nil, goerr.Wrap(model.ErrEmptyResult, "project has no releases", goerr.V("project", project))
	}

	selected, err := selectReleases(groups, opts.ReleaseTag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to select releases", goerr.V("project", project))
	}

	result := &model.DownloadResult{Releases: selected}
	for _, rel := range selected {
		logger.Info("Downloading release assets",
			"repository", rel.Repository,
			"title", rel.Title,
			"assets", len(rel.Assets),
		)

		for _, asset := range rel.Assets {
			stored, err := storeAsset(ctx, uc.githubClient, asset, opts.OutputDir, false, opts.Progress)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to download asset",
					goerr.V("title", rel.Title),
					goerr.V("asset", asset.Name),
				)
			}
			result.Files = append(result.Files, stored.path)
			result.Size += stored.size
		}
	}

	logger.Info("Downloaded release assets",
		"project", project,
		"file_count", len(result.Files),
		"total_size_bytes", result.Size,
		"output", opts.OutputDir,
	)

	return result, nil
}

func selectReleases(groups map[string][]*model.Release, tag string) ([]*model.Release, error) {
	names := slices.Sorted(maps.Keys(groups))

	var selected []*model.Release
	if tag != "" {
		for _, name := range names {
			for _, rel := range groups[name] {
				if rel.Title == tag {
					selected = append(selected, rel)
				}
			}
		}
		if len(selected) == 0 {
			return nil, goerr.Wrap(model.ErrReleaseTagNotFound, "no release with the tag", goerr.V("release_tag", tag))
		}
		return selected, nil
	}

	for _, name := range names {
		if latest := Latest(groups[name]); latest != nil {
			selected = append(selected, latest)
		}
	}
	return selected, nil
}

type storedAsset struct {
	path    string
	size    int64
	skipped bool
}

// storeAsset downloads an asset into destDir under the last path segment of
// its URL. With skipExisting an already present file is kept as is.
func storeAsset(ctx context.Context, client interfaces.GitHubClient, asset model.Asset, destDir string, skipExisting bool, progress func(string)) (*storedAsset, error) {
	logger := ctxlog.From(ctx)

	name, err := assetFileName(asset)
	if err != nil {
		return nil, err
	}

	if destDir == "" {
		destDir = "."
	}

	destPath := filepath.Join(destDir, name)

	if skipExisting {
		if info, err := os.Stat(destPath); err == nil && !info.IsDir() {
			logger.Debug("Asset already present", "path", destPath)
			return &storedAsset{path: destPath, size: info.Size(), skipped: true}, nil
		}
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", destDir))
	}

	tmp, err := os.CreateTemp(destDir, ".notofonts-download-*")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temporary file", goerr.V("dir", destDir))
	}
	defer func() {
		_ = os.Remove(tmp.Name()) // no-op after a successful rename
	}()

	logger.Debug("Downloading asset", "url", asset.URL, "path", destPath)
	if progress != nil {
		progress(asset.URL)
	}

	if err := client.DownloadAsset(ctx, asset.URL, tmp); err != nil {
		_ = tmp.Close()
		return nil, goerr.Wrap(err, "failed to download asset", goerr.V("url", asset.URL))
	}

	info, err := tmp.Stat()
	if err != nil {
		_ = tmp.Close()
		return nil, goerr.Wrap(err, "failed to stat downloaded asset", goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close downloaded asset", goerr.V("path", tmp.Name()))
	}

	if err := os.Rename(tmp.Name(), destPath); err != nil {
		return nil, goerr.Wrap(err, "failed to move downloaded asset", goerr.V("path", destPath))
	}

	return &storedAsset{path: destPath, size: info.Size()}, nil
}

// assetFileName returns a plain file name for an asset. Names that could
// escape the output directory are rejected.
func assetFileName(asset model.Asset) (string, error) {
	name := asset.Name
	if u, err := url.Parse(asset.URL); err == nil && u.Path != "" {
		if base := path.Base(u.Path); base != "/" && base != "." {
			name = base
		}
	}

	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", goerr.New("invalid asset file name", goerr.V("asset", asset.Name), goerr.V("url", asset.URL))
	}
	return name, nil
}
