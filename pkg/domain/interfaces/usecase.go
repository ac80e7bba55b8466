package interfaces

import (
	"context"

	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
)

// ReleaseUseCase resolves releases across the organization catalog
type ReleaseUseCase interface {
	// ResolveAll resolves releases of the repositories in include (all
	// repositories when include is empty) with the given selection mode
	ResolveAll(ctx context.Context, include []string, mode model.Mode) (*model.Resolution, error)
}

// DownloadUseCase fetches release assets of a project
type DownloadUseCase interface {
	// Download stores assets of the selected releases of project into outputDir
	Download(ctx context.Context, project string, opts model.DownloadOptions) (*model.DownloadResult, error)
}

// GenSpecUseCase prepares sources and generation plans for the spec generator
type GenSpecUseCase interface {
	// Prepare fetches missing sources of the latest releases of project and writes plans into outputDir
	Prepare(ctx context.Context, project string, opts model.GenSpecOptions) ([]*model.GenerationPlan, error)
}
