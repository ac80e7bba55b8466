package cli

import (
	"context"
	"fmt"

	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/fedora-notofonts/notofonts/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdGenSpec() Command {
	var (
		outputDir   string
		epoch       int
		ignoreError []string
		verbose     bool
	)

	return Command{
		Name:      "genspec",
		Usage:     "Fetch sources and write generation plans for the RPM spec generator, one per logical name",
		ArgsUsage: "PROJECT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "outputdir",
				Aliases:     []string{"o"},
				Usage:       "Output directory",
				Value:       ".",
				Destination: &outputDir,
			},
			&cli.IntFlag{
				Name:        "epoch",
				Usage:       "Package epoch",
				Value:       model.DefaultSpecEpoch,
				Destination: &epoch,
			},
			&cli.StringSliceFlag{
				Name:        "ignore-error",
				Usage:       "Deal with the specific generator error as warning",
				Destination: &ignoreError,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Verbose operation",
				Destination: &verbose,
			},
		},
		Action: func(ctx context.Context, c *cli.Command, app *App) error {
			if c.NArg() != 1 {
				return goerr.New("exactly one PROJECT is required", goerr.V("args", c.Args().Slice()))
			}
			project := c.Args().First()

			client, err := app.GitHubClient()
			if err != nil {
				return err
			}
			releaseUC, err := app.ReleaseUseCase()
			if err != nil {
				return err
			}

			w := app.Output()
			opts := model.GenSpecOptions{
				OutputDir:    outputDir,
				Epoch:        epoch,
				IgnoreErrors: ignoreError,
			}
			if verbose {
				opts.Progress = func(url string) {
					fmt.Fprintf(w, "Downloading from %s\n", infoColor.Sprint(url))
				}
			}

			genSpecUC := usecase.NewGenSpec(client, releaseUC, app.Catalog.Organization)
			plans, err := genSpecUC.Prepare(ctx, project, opts)
			if err != nil {
				reportFailure(w, project, "", err)
				return err
			}

			for _, plan := range plans {
				printField(w, plan.Name, plan.Version)
			}
			return nil
		},
	}
}
