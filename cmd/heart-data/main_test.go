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
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	jujuerrors "github.com/juju/errors"
	"github.com/rushikeshdhumal/predict-heart-disease/common/datautil"
	"github.com/rushikeshdhumal/predict-heart-disease/config"
	"github.com/rushikeshdhumal/predict-heart-disease/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	trainCSV = "id,Age,Cholesterol,Heart Disease\n0,58,239,1\n1,52,212,0\n2,60,305,1\n"
	testCSV  = "id,Age,Cholesterol\n3,45,180\n4,67,260\n"
)

func writeFile(t *testing.T, path, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), os.ModePerm))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newTestConfig points the download command at a tool that does not exist,
// so any attempt to download fails.
func newTestConfig(dir string) *config.Config {
	conf := config.GetDefaultConfig()
	conf.Dataset.Dir = dir
	conf.Kaggle.Command = "heart-data-no-such-tool"
	return conf
}

func TestRunCached(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.DefaultTrainFile), trainCSV)
	writeFile(t, filepath.Join(dir, config.DefaultTestFile), testCSV)

	var out bytes.Buffer
	err := run(context.Background(), newTestConfig(dir), &out, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Train shape: (3, 4)\n")
	assert.Contains(t, out.String(), "Test shape: (2, 3)\n")
	assert.Contains(t, out.String(), "Heart Disease rate: 66.67%\n")
	assert.Contains(t, out.String(), "Cholesterol")
}

func TestRunToolNotFound(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "raw")
	var out bytes.Buffer
	err := run(context.Background(), newTestConfig(dir), &out, nil)
	var notFound *datautil.ToolNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.DirExists(t, dir)
	assert.Empty(t, out.String())
}

func TestRunMirrorPull(t *testing.T) {
	mirrorDir := t.TempDir()
	writeFile(t, filepath.Join(mirrorDir, config.DefaultTrainFile), trainCSV)
	writeFile(t, filepath.Join(mirrorDir, config.DefaultTestFile), testCSV)

	dir := filepath.Join(t.TempDir(), "raw")
	conf := newTestConfig(dir)
	conf.Mirror = config.MirrorConfig{Type: "posix", Dir: mirrorDir, Pull: true}
	var out bytes.Buffer
	err := run(context.Background(), conf, &out, nil)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, config.DefaultTrainFile))
	assert.Contains(t, out.String(), "Train shape: (3, 4)\n")
}

func TestRunMirrorPush(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.DefaultTrainFile), trainCSV)
	writeFile(t, filepath.Join(dir, config.DefaultTestFile), testCSV)

	mirrorDir := filepath.Join(t.TempDir(), "mirror")
	conf := newTestConfig(dir)
	conf.Mirror = config.MirrorConfig{Type: "posix", Dir: mirrorDir, Push: true}
	var out bytes.Buffer
	err := run(context.Background(), conf, &out, nil)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(mirrorDir, config.DefaultTestFile))
	assert.NoError(t, err)
	assert.Equal(t, testCSV, string(data))
}

func TestReportNonNumericLabel(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.DefaultTrainFile), "id,Heart Disease\n0,Presence\n1,Absence\n")
	writeFile(t, filepath.Join(dir, config.DefaultTestFile), "id\n2\n")
	train, test, err := dataset.LoadData(context.Background(), dir)
	require.NoError(t, err)

	var out bytes.Buffer
	err = report(&out, config.DefaultLabelColumn, train, test)
	assert.True(t, jujuerrors.Is(err, jujuerrors.NotValid))

	// an empty label column skips the rate
	out.Reset()
	assert.NoError(t, report(&out, "", train, test))
	assert.Contains(t, out.String(), "Train shape: (2, 2)\n")
	assert.NotContains(t, out.String(), "rate:")
}

func TestDataDirFlag(t *testing.T) {
	flag := rootCommand.PersistentFlags().Lookup("data-dir")
	if assert.NotNil(t, flag) {
		assert.Empty(t, flag.DefValue)
		assert.Contains(t, flag.Usage, "go run")
	}
}
