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

package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cenkalti/backoff/v5"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
	"github.com/rushikeshdhumal/predict-heart-disease/base/log"
	"go.uber.org/zap"
)

const transferTries = 3

var newBackOff = func() backoff.BackOff {
	return backoff.NewExponentialBackOff()
}

// retry runs a transfer until it succeeds, fails permanently or runs out of
// tries.
func retry(ctx context.Context, name string, transfer func() error) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := transfer()
		if err != nil {
			log.Logger().Warn("mirror transfer failed", zap.String("file", name), zap.Error(err))
		}
		return struct{}{}, err
	}, backoff.WithBackOff(newBackOff()), backoff.WithMaxTries(transferTries))
	return err
}

// Pull copies the named objects from the mirror into dir. Objects absent from
// the mirror and files already present in dir are skipped. It returns the
// number of files copied.
func Pull(ctx context.Context, store Blob, dir string, names ...string) (int, error) {
	remote, err := store.List()
	if err != nil {
		return 0, errors.Trace(err)
	}
	available := mapset.NewSet[string](remote...)
	if err = os.MkdirAll(dir, os.ModePerm); err != nil {
		return 0, errors.Trace(err)
	}
	var pulled int
	for _, name := range names {
		filePath := filepath.Join(dir, name)
		if _, err = os.Stat(filePath); err == nil {
			continue
		}
		if !available.Contains(name) {
			log.Logger().Debug("file not found in mirror", zap.String("file", name))
			continue
		}
		if err = retry(ctx, name, func() error { return pullFile(store, name, filePath) }); err != nil {
			return pulled, errors.Annotatef(err, "failed to pull %s", name)
		}
		log.Logger().Info("pulled file from mirror", zap.String("file", filePath))
		pulled++
	}
	return pulled, nil
}

// pullFile writes to a temporary file first so an interrupted download never
// leaves a partial file under the final name.
func pullFile(store Blob, name, filePath string) error {
	r, err := store.Open(name)
	if err != nil {
		return errors.Trace(err)
	}
	defer r.Close()
	tmp, err := os.CreateTemp(filepath.Dir(filePath), "."+name+".*")
	if err != nil {
		return errors.Trace(err)
	}
	defer os.Remove(tmp.Name())
	if _, err = io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return errors.Trace(err)
	}
	if err = tmp.Close(); err != nil {
		return errors.Trace(err)
	}
	return os.Rename(tmp.Name(), filePath)
}

// Push uploads the named files in dir to the mirror, overwriting existing
// objects.
func Push(ctx context.Context, store Blob, dir string, names ...string) error {
	for _, name := range names {
		filePath := filepath.Join(dir, name)
		if err := retry(ctx, name, func() error { return pushFile(store, name, filePath) }); err != nil {
			return errors.Annotatef(err, "failed to push %s", name)
		}
		log.Logger().Info("pushed file to mirror", zap.String("file", filePath))
	}
	return nil
}

// pushFile uploads one file. A failed upload removes whatever part of the
// object reached the mirror.
func pushFile(store Blob, name, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return backoff.Permanent(errors.Trace(err))
	}
	defer file.Close()
	w, done, err := store.Create(name)
	if err != nil {
		return errors.Trace(err)
	}
	_, err = io.Copy(w, file)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	<-done
	if err != nil {
		if removeErr := store.Remove(name); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			log.Logger().Warn("failed to remove partial object from mirror", zap.String("file", name), zap.Error(removeErr))
		}
		return errors.Trace(err)
	}
	return nil
}
