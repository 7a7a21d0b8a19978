package cmd

import (
	"errors"
	"os"
	"strings"

	perrors "github.com/pkg/errors"

	"github.com/Zaneham/Jovial-LSP"
	log "github.com/sirupsen/logrus"
)

// errNoResult marks an otherwise-successful query that found nothing to
// report (e.g. hover on a position that names no known entity). main
// distinguishes it from a file-I/O failure to choose exit code 2 vs 1
// (§9's CLI framing).
var errNoResult = errors.New("no result for query")

// IsNoResult reports whether err is (or wraps) errNoResult.
func IsNoResult(err error) bool {
	return errors.Is(err, errNoResult)
}

// loadModel reads path, parses it, and returns the resulting model along
// with its source lines (the form every QueryLayer operation expects).
// File-read failures are wrapped with file-path context, logged at Error
// level, and returned for the caller to propagate as a non-zero exit.
func loadModel(path string) (*jovial.Model, []string, error) {
	if path == "" {
		return nil, nil, errors.New("--file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithField("file", path).Error("could not read source file")
		return nil, nil, perrors.Wrapf(err, "reading %s", path)
	}

	text := string(data)
	model := jovial.Parse(text)
	lines := strings.Split(text, "\n")

	log.WithFields(log.Fields{"file": path, "items": len(model.Items), "tables": len(model.Tables), "procs": len(model.Procs)}).Debug("parsed source file")

	return model, lines, nil
}
