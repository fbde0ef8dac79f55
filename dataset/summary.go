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
	"fmt"
	"io"
	"strconv"

	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/rocketlaunchr/dataframe-go"
	"gonum.org/v1/gonum/stat"
)

// Shape is the number of rows and columns of a table.
type Shape struct {
	Rows    int
	Columns int
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Columns)
}

func ShapeOf(df *dataframe.DataFrame) Shape {
	return Shape{Rows: df.NRows(), Columns: len(df.Series)}
}

// Floats returns the numeric values of a column. Nil cells are skipped.
func Floats(df *dataframe.DataFrame, column string) ([]float64, error) {
	idx, err := df.NameToColumn(column)
	if err != nil {
		return nil, errors.NotFoundf("column %q", column)
	}
	series := df.Series[idx]
	values := make([]float64, 0, series.NRows())
	for row := 0; row < series.NRows(); row++ {
		switch v := series.Value(row).(type) {
		case nil:
		case int64:
			values = append(values, float64(v))
		case float64:
			values = append(values, v)
		case bool:
			if v {
				values = append(values, 1)
			} else {
				values = append(values, 0)
			}
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, errors.NotValidf("value %q in column %q", v, column)
			}
			values = append(values, f)
		default:
			return nil, errors.NotSupportedf("value of type %T in column %q", v, column)
		}
	}
	return values, nil
}

// ColumnMean returns the mean of a numeric column.
func ColumnMean(df *dataframe.DataFrame, column string) (float64, error) {
	values, err := Floats(df, column)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, errors.Errorf("column %q has no values", column)
	}
	return stat.Mean(values, nil), nil
}

// WriteSummary renders the name, type and non-null count of every column.
func WriteSummary(w io.Writer, title string, df *dataframe.DataFrame) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", title, ShapeOf(df)); err != nil {
		return errors.Trace(err)
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Column", "Type", "Non-Null"})
	for _, series := range df.Series {
		nonNull := 0
		for row := 0; row < series.NRows(); row++ {
			if series.Value(row) != nil {
				nonNull++
			}
		}
		if err := table.Append([]string{series.Name(), series.Type(), strconv.Itoa(nonNull)}); err != nil {
			return errors.Trace(err)
		}
	}
	return errors.Trace(table.Render())
}
