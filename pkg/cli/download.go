package cli

import (
	"context"
	"fmt"

	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/fedora-notofonts/notofonts/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdDownload() Command {
	var (
		tag     string
		output  string
		verbose bool
	)

	return Command{
		Name:      "download",
		Aliases:   []string{"dl"},
		Usage:     "Download release assets of a project. Without a release tag the latest assets are used",
		ArgsUsage: "PROJECT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "release-tag",
				Aliases:     []string{"t"},
				Usage:       "Release tag to download",
				Destination: &tag,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output directory to store downloaded archives",
				Value:       ".",
				Destination: &output,
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
			opts := model.DownloadOptions{
				ReleaseTag: tag,
				OutputDir:  output,
			}
			if verbose {
				opts.Progress = func(url string) {
					fmt.Fprintf(w, "Downloading from %s\n", infoColor.Sprint(url))
				}
			} else {
				fmt.Fprintln(w, infoColor.Sprint("This may take some time..."))
			}

			result, err := usecase.NewDownload(client, releaseUC).Download(ctx, project, opts)
			if err != nil {
				reportFailure(w, project, tag, err)
				return err
			}

			if verbose {
				for _, path := range result.Files {
					printField(w, "Saved", path)
				}
			}
			return nil
		},
	}
}
