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
	"io"
	"testing"

	"github.com/juju/errors"
	"github.com/rushikeshdhumal/predict-heart-disease/config"
	"github.com/stretchr/testify/assert"
)

func TestOpen(t *testing.T) {
	// no mirror
	store, err := Open(config.MirrorConfig{})
	assert.NoError(t, err)
	assert.Nil(t, store)

	// posix
	dir := t.TempDir()
	store, err = Open(config.MirrorConfig{Type: "posix", Dir: dir})
	assert.NoError(t, err)
	if assert.IsType(t, &POSIX{}, store) {
		assert.Equal(t, dir, store.(*POSIX).dir)
	}

	// s3 client creation does not contact the server
	store, err = Open(config.MirrorConfig{Type: "s3", S3: config.S3Config{
		Endpoint: "localhost:9000",
		Bucket:   "heart-data",
	}})
	assert.NoError(t, err)
	assert.IsType(t, &S3{}, store)

	// unknown
	_, err = Open(config.MirrorConfig{Type: "ftp"})
	assert.True(t, errors.Is(err, errors.NotSupported))
}

func TestUploadWriterError(t *testing.T) {
	w, done := newUploadWriter(func(r io.Reader) error {
		return errors.New("upload failed")
	})
	<-done
	_, err := w.Write([]byte("hello"))
	assert.Error(t, err)
	assert.EqualError(t, w.Close(), "upload failed")
}
