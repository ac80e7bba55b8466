package usecase

import (
	"context"
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/fedora-notofonts/notofonts/pkg/domain/interfaces"
	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// PlanFileSuffix is appended to the logical name to build a plan file name
const PlanFileSuffix = ".plan.json"

type genSpecUseCase struct {
	githubClient interfaces.GitHubClient
	releaseUC    interfaces.ReleaseUseCase
	organization string
}

// NewGenSpec creates a new instance of GenSpecUseCase
func NewGenSpec(githubClient interfaces.GitHubClient, releaseUC interfaces.ReleaseUseCase, organization string) interfaces.GenSpecUseCase {
	if organization == "" {
		organization = model.DefaultOrganization
	}
	return &genSpecUseCase{
		githubClient: githubClient,
		releaseUC:    releaseUC,
		organization: organization,
	}
}

// Prepare resolves the latest release of every logical name of project,
// downloads sources not yet in the output directory and writes one
// generation plan per logical name for the spec generator.
func (uc *genSpecUseCase) Prepare(ctx context.Context, project string, opts model.GenSpecOptions) ([]*model.GenerationPlan, error) {
	logger := ctxlog.From(ctx)

	resolution, err := uc.releaseUC.ResolveAll(ctx, []string{project}, model.ModeLatest)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve releases", goerr.V("project", project))
	}

	groups := resolution.Result[project]
	if len(groups) == 0 {
		return nil, goerr.Wrap(model.ErrEmptyResult, "project has no releases", goerr.V("project", project))
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	epoch := opts.Epoch
	if epoch <= 0 {
		epoch = model.DefaultSpecEpoch
	}

	var plans []*model.GenerationPlan
	for _, name := range slices.Sorted(maps.Keys(groups)) {
		rel := groups[name][0]

		plan := &model.GenerationPlan{
			Name:         rel.Name,
			Repository:   rel.Repository,
			Title:        rel.Title,
			Version:      rel.Version.Raw(),
			URL:          "https://github.com/" + uc.organization + "/" + project,
			Epoch:        epoch,
			Description:  model.NotoDescription,
			ExcludePaths: slices.Clone(model.DefaultExcludePaths),
			IgnoreErrors: slices.Clone(opts.IgnoreErrors),
		}

		for _, asset := range rel.Assets {
			stored, err := storeAsset(ctx, uc.githubClient, asset, outputDir, true, opts.Progress)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to fetch source",
					goerr.V("title", rel.Title),
					goerr.V("asset", asset.Name),
				)
			}
			if !stored.skipped {
				logger.Info("Fetched source", "title", rel.Title, "path", stored.path)
			}
			plan.Sources = append(plan.Sources, filepath.Base(stored.path))
		}

		if err := writePlan(outputDir, plan); err != nil {
			return nil, err
		}

		logger.Info("Wrote generation plan",
			"name", plan.Name,
			"version", plan.Version,
			"sources", len(plan.Sources),
		)
		plans = append(plans, plan)
	}

	return plans, nil
}

func writePlan(dir string, plan *model.GenerationPlan) error {
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal generation plan", goerr.V("name", plan.Name))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	path := filepath.Join(dir, plan.Name+PlanFileSuffix)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return goerr.Wrap(err, "failed to write generation plan", goerr.V("path", path))
	}
	return nil
}
