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
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/rushikeshdhumal/predict-heart-disease/base/log"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

var (
	// BaseDir is the installation root: the parent of the directory holding the
	// running executable.
	BaseDir string
	// DefaultRawDir is the dataset directory used when no override is given.
	DefaultRawDir string
)

func init() {
	BaseDir = installRoot()
	DefaultRawDir = filepath.Join(BaseDir, "data", "raw")
}

func installRoot() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(filepath.Dir(exe))
	}
	log.Logger().Warn("failed to locate executable, fall back to working directory", zap.Error(err))
	wd, err := os.Getwd()
	if err != nil {
		log.Logger().Fatal("failed to get working directory", zap.Error(err))
	}
	return wd
}

// ResolveDir returns dir, or DefaultRawDir if dir is empty.
func ResolveDir(dir string) string {
	if dir == "" {
		return DefaultRawDir
	}
	return dir
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// unzip extracts every entry of the zip file src into dst. Byte progress is
// written to progress if it is not nil.
func unzip(src, dst string, progress io.Writer) ([]string, error) {
	var fileNames []string
	// Open zip file
	r, err := zip.OpenReader(src)
	if err != nil {
		return fileNames, errors.Trace(err)
	}
	defer r.Close()
	// Create progress bar
	if progress == nil {
		progress = io.Discard
	}
	var total int64
	for _, f := range r.File {
		total += int64(f.UncompressedSize64)
	}
	if total == 0 {
		total = -1
	}
	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Extracting "+filepath.Base(src)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish())
	defer bar.Close()
	// Extract files
	for _, f := range r.File {
		// Check for ZipSlip. More Info: http://bit.ly/2MsjAWE
		if !filepath.IsLocal(f.Name) {
			return fileNames, fmt.Errorf("%s: illegal file path", f.Name)
		}
		// Store filename/path for returning and using later on
		filePath := filepath.Join(dst, f.Name)
		fileNames = append(fileNames, filePath)
		if f.FileInfo().IsDir() {
			// Create folder
			if err = os.MkdirAll(filePath, os.ModePerm); err != nil {
				return fileNames, errors.Trace(err)
			}
			continue
		}
		if err = extractFile(f, filePath, bar); err != nil {
			return fileNames, err
		}
	}
	return fileNames, nil
}

func extractFile(f *zip.File, filePath string, bar io.Writer) error {
	// Create all folders
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return errors.Trace(err)
	}
	rc, err := f.Open()
	if err != nil {
		return errors.Trace(err)
	}
	defer rc.Close()
	outFile, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return errors.Trace(err)
	}
	if _, err = io.Copy(io.MultiWriter(outFile, bar), rc); err != nil {
		_ = outFile.Close()
		return errors.Trace(err)
	}
	return errors.Trace(outFile.Close())
}
