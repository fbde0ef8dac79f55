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
package main

import (
	"fmt"
	"io"

	"github.com/juju/errors"
	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rushikeshdhumal/predict-heart-disease/dataset"
)

// report prints table shapes, the positive rate of the label column and the
// column summaries. An empty label column skips the rate line.
func report(w io.Writer, labelColumn string, train, test *dataframe.DataFrame) error {
	if _, err := fmt.Fprintf(w, "Train shape: %s\n", dataset.ShapeOf(train)); err != nil {
		return errors.Trace(err)
	}
	if _, err := fmt.Fprintf(w, "Test shape: %s\n", dataset.ShapeOf(test)); err != nil {
		return errors.Trace(err)
	}
	if labelColumn != "" {
		rate, err := dataset.ColumnMean(train, labelColumn)
		if err != nil {
			return errors.Annotate(err, "failed to compute label rate")
		}
		if _, err = fmt.Fprintf(w, "%s rate: %.2f%%\n", labelColumn, rate*100); err != nil {
			return errors.Trace(err)
		}
	}
	for _, table := range []struct {
		title string
		df    *dataframe.DataFrame
	}{{"Train", train}, {"Test", test}} {
		if _, err := fmt.Fprintln(w); err != nil {
			return errors.Trace(err)
		}
		if err := dataset.WriteSummary(w, table.title, table.df); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}
