package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdList() Command {
	var all bool

	return Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List the latest releases of every project",
		ArgsUsage: "[PROJECT]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "releases",
				Aliases:     []string{"r"},
				Usage:       "List all the releases",
				Destination: &all,
			},
		},
		Action: func(ctx context.Context, c *cli.Command, app *App) error {
			releaseUC, err := app.ReleaseUseCase()
			if err != nil {
				return err
			}

			var include []string
			if c.NArg() > 0 {
				include = []string{c.Args().First()}
			}

			mode := model.ModeLatest
			if all {
				mode = model.ModeAll
			}

			resolution, err := releaseUC.ResolveAll(ctx, include, mode)
			if err != nil {
				if len(include) > 0 {
					reportFailure(app.Output(), include[0], "", err)
				}
				return goerr.Wrap(err, "failed to list releases", goerr.V("mode", mode.String()))
			}

			w := app.Output()
			var nproj, nrel int
			for _, repo := range resolution.Result.Repositories() {
				releases := resolution.Result.Releases(repo)
				titles := make([]string, len(releases))
				for i, rel := range releases {
					titles[i] = rel.Title
				}

				printField(w, repo, strings.Join(titles, ", "))
				nproj++
				nrel += len(releases)
			}

			fmt.Fprintln(w)
			printField(w, "Project#", nproj)
			printField(w, "Release#", nrel)
			return nil
		},
	}
}
