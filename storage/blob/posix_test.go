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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOSIX(t *testing.T) {
	// create client
	client := NewPOSIX(filepath.Join(t.TempDir(), "blob"))

	// list an empty mirror
	names, err := client.List()
	assert.NoError(t, err)
	assert.Empty(t, names)

	// write a temp file
	w, done, err := client.Create("train.csv")
	assert.NoError(t, err)
	_, err = w.Write([]byte("id,Age\n1,52\n"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	<-done

	// read the file
	r, err := client.Open("train.csv")
	assert.NoError(t, err)
	content, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Equal(t, "id,Age\n1,52\n", string(content))
	assert.NoError(t, r.Close())

	// list files
	names, err = client.List()
	assert.NoError(t, err)
	assert.Equal(t, []string{"train.csv"}, names)

	// remove file
	assert.NoError(t, client.Remove("train.csv"))
	names, err = client.List()
	assert.NoError(t, err)
	assert.Empty(t, names)
}
