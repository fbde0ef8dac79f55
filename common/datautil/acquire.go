// Copyright 2026 predict-heart-disease Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datautil

import (
	"context"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/rushikeshdhumal/predict-heart-disease/base/log"
	"github.com/rushikeshdhumal/predict-heart-disease/config"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Status int

const (
	// Cached means every raw file was already present and nothing was fetched.
	Cached Status = iota
	// Downloaded means the raw files were fetched and extracted.
	Downloaded
)

func (s Status) String() string {
	switch s {
	case Cached:
		return "cached"
	case Downloaded:
		return "downloaded"
	default:
		return "unknown"
	}
}

// Acquirer makes sure the raw files of a competition exist in a local
// directory, downloading them with the Kaggle CLI when any is missing.
type Acquirer struct {
	Runner      Runner
	Command     string
	Competition string
	Archive     string
	Files       []string
	// Progress receives extraction progress. Nil discards it.
	Progress io.Writer
}

func NewAcquirer(cfg *config.Config) *Acquirer {
	return &Acquirer{
		Runner:      ExecRunner{},
		Command:     cfg.Kaggle.Command,
		Competition: cfg.Kaggle.Competition,
		Archive:     cfg.Kaggle.Archive,
		Files:       cfg.Dataset.Files(),
	}
}

// DownloadCommand returns the argv used to download the competition into dir.
func (a *Acquirer) DownloadCommand(dir string) []string {
	return []string{a.Command, "competitions", "download", "-c", a.Competition, "-p", dir}
}

// Acquire ensures the raw files exist in dir (or DefaultRawDir if dir is empty).
// Files are only checked for existence, never for integrity.
func (a *Acquirer) Acquire(ctx context.Context, dir string) (Status, error) {
	dir = ResolveDir(dir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return 0, errors.Trace(err)
	}
	if len(a.missing(dir)) == 0 {
		log.Logger().Info("dataset already exists locally", zap.String("dir", dir))
		return Cached, nil
	}

	log.Logger().Info("download dataset",
		zap.String("competition", a.Competition),
		zap.String("destination", dir))
	command := a.DownloadCommand(dir)
	result, err := a.Runner.Run(ctx, command[0], command[1:]...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return 0, &ToolNotFoundError{Command: a.Command, Err: err}
		}
		return 0, errors.Annotatef(err, "failed to run %s", a.Command)
	}
	if result.ExitCode != 0 {
		return 0, &ToolExecutionError{
			Command:  command,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}
	}

	archive := filepath.Join(dir, a.Archive)
	if exists(archive) {
		fileNames, err := unzip(archive, dir, a.Progress)
		if err != nil {
			return 0, errors.Annotatef(err, "failed to extract %s", archive)
		}
		log.Logger().Debug("extract archive", zap.String("archive", archive), zap.Strings("files", fileNames))
		if err = os.Remove(archive); err != nil {
			return 0, errors.Trace(err)
		}
	}

	if missing := a.missing(dir); len(missing) > 0 {
		return 0, &MissingFilesError{Dir: dir, Missing: missing}
	}
	log.Logger().Info("dataset downloaded and extracted", zap.String("dir", dir))
	return Downloaded, nil
}

func (a *Acquirer) missing(dir string) []string {
	return lo.Filter(a.Files, func(name string, _ int) bool {
		return !exists(filepath.Join(dir, name))
	})
}
