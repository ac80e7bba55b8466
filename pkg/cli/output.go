package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
)

var (
	infoColor  = color.New(color.FgCyan, color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
)

// printField writes "key: value" with the key highlighted
func printField(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s: %v\n", infoColor.Sprint(key), value)
}

// reportFailure prints a short message for failures a user can act on
func reportFailure(w io.Writer, project, tag string, err error) {
	switch {
	case errors.Is(err, model.ErrRepositoryNotFound):
		fmt.Fprintf(w, "%s: %s\n", infoColor.Sprint(project), errorColor.Sprint("Project not found."))
	case errors.Is(err, model.ErrEmptyResult):
		fmt.Fprintf(w, "%s: %s\n", infoColor.Sprint(project), errorColor.Sprint("No releases."))
	case errors.Is(err, model.ErrReleaseTagNotFound):
		fmt.Fprintf(w, "%s: %s %s\n", infoColor.Sprint(tag), errorColor.Sprint("Release tag is not available in"), infoColor.Sprint(project))
	}
}
