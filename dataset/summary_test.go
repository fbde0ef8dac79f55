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
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	assert.Equal(t, "(630000, 15)", Shape{Rows: 630000, Columns: 15}.String())
}

func TestColumnMean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	writeFile(t, path, "id,Sex,Heart Disease\n0,M,1\n1,F,0\n2,M,1\n3,F,1\n")
	df, err := LoadCSV(context.Background(), path)
	require.NoError(t, err)

	mean, err := ColumnMean(df, "Heart Disease")
	assert.NoError(t, err)
	assert.InDelta(t, 0.75, mean, 1e-9)

	mean, err = ColumnMean(df, "id")
	assert.NoError(t, err)
	assert.InDelta(t, 1.5, mean, 1e-9)

	_, err = ColumnMean(df, "Age")
	assert.True(t, errors.Is(err, errors.NotFound))

	_, err = ColumnMean(df, "Sex")
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	writeFile(t, path, "id,Age,Heart Disease\n0,58,1\n1,52,0\n")
	df, err := LoadCSV(context.Background(), path)
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteSummary(&buf, "Train shape:", df))
	output := buf.String()
	assert.Contains(t, output, "Train shape: (2, 3)")
	assert.Contains(t, output, "Age")
	assert.Contains(t, output, "Heart Disease")
}
