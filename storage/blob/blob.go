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

	"github.com/juju/errors"
	"github.com/rushikeshdhumal/predict-heart-disease/config"
)

// Blob is a flat store of named objects.
type Blob interface {
	// Open an object for reading.
	Open(name string) (io.ReadCloser, error)
	// Create an object for writing. The done channel is closed once the object
	// has been written; Close on the writer waits for it and returns the
	// upload error.
	Create(name string) (io.WriteCloser, chan struct{}, error)
	// List names of all objects.
	List() ([]string, error)
	// Remove an object.
	Remove(name string) error
}

// Open creates the mirror described by cfg. It returns nil if no mirror is
// configured.
func Open(cfg config.MirrorConfig) (Blob, error) {
	switch cfg.Type {
	case "":
		return nil, nil
	case "posix":
		return NewPOSIX(cfg.Dir), nil
	case "s3":
		return NewS3(cfg.S3)
	case "gcs":
		return NewGCS(cfg.GCS)
	case "azure":
		return NewAzureBlob(cfg.AzureBlob)
	default:
		return nil, errors.NotSupportedf("mirror type %q", cfg.Type)
	}
}

// uploadWriter feeds a background upload through a pipe.
type uploadWriter struct {
	*io.PipeWriter
	done chan struct{}
	err  error
}

func newUploadWriter(upload func(r io.Reader) error) (*uploadWriter, chan struct{}) {
	pr, pw := io.Pipe()
	w := &uploadWriter{PipeWriter: pw, done: make(chan struct{})}
	go func() {
		defer close(w.done)
		w.err = upload(pr)
		// unblock the writer if the upload stopped early
		_ = pr.CloseWithError(w.err)
	}()
	return w, w.done
}

func (w *uploadWriter) Close() error {
	if err := w.PipeWriter.Close(); err != nil {
		return errors.Trace(err)
	}
	<-w.done
	return w.err
}
