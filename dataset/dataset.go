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

package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/rushikeshdhumal/predict-heart-disease/base/log"
	"github.com/rushikeshdhumal/predict-heart-disease/common/datautil"
	"github.com/rushikeshdhumal/predict-heart-disease/config"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Loader reads the training and test sets from a dataset directory.
type Loader struct {
	TrainFile string
	TestFile  string
}

func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		TrainFile: cfg.Dataset.TrainFile,
		TestFile:  cfg.Dataset.TestFile,
	}
}

// LoadData loads train.csv and test.csv from dir, or from the default dataset
// directory if dir is empty.
func LoadData(ctx context.Context, dir string) (train, test *dataframe.DataFrame, err error) {
	return NewLoader(config.GetDefaultConfig()).Load(ctx, dir)
}

// Load parses both files, training set first. It never downloads anything: a
// missing file fails with fs.ErrNotExist.
func (l *Loader) Load(ctx context.Context, dir string) (train, test *dataframe.DataFrame, err error) {
	dir = datautil.ResolveDir(dir)
	if train, err = LoadCSV(ctx, filepath.Join(dir, l.TrainFile)); err != nil {
		return nil, nil, err
	}
	if test, err = LoadCSV(ctx, filepath.Join(dir, l.TestFile)); err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// LoadCSV parses a comma separated file with a header row. Column types are
// inferred from the values and empty cells are nil.
func LoadCSV(ctx context.Context, path string) (*dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	if err = checkHeader(f); err != nil {
		return nil, errors.Annotatef(err, "failed to parse %s", path)
	}
	df, err := imports.LoadFromCSV(ctx, f, imports.CSVLoadOptions{
		InferDataTypes: true,
		NilValue:       lo.ToPtr(""),
	})
	if err != nil {
		return nil, errors.Annotatef(err, "failed to parse %s", path)
	}
	log.Logger().Debug("load table",
		zap.String("path", path),
		zap.Int("rows", df.NRows()),
		zap.Int("columns", len(df.Series)))
	return df, nil
}

// checkHeader rejects repeated column names and rewinds r. Files whose header
// cannot be read are left to the table parser to report.
func checkHeader(r io.ReadSeeker) error {
	header, err := csv.NewReader(r).Read()
	if err == nil {
		if duplicates := lo.FindDuplicates(header); len(duplicates) > 0 {
			return errors.NotValidf("duplicate column %q", duplicates[0])
		}
	}
	_, err = r.Seek(0, io.SeekStart)
	return errors.Trace(err)
}
