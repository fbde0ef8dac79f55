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
	"fmt"
	"strings"
)

// ToolNotFoundError reports that the download tool is not installed.
type ToolNotFoundError struct {
	Command string
	Err     error
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s CLI not found. Install with 'pip install kaggle' and restart the terminal: %v",
		e.Command, e.Err)
}

func (e *ToolNotFoundError) Unwrap() error {
	return e.Err
}

// ToolExecutionError reports that the download tool exited with a non-zero
// status. Stdout and Stderr hold the raw output of the tool.
type ToolExecutionError struct {
	Command  []string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("%s CLI failed with exit code %d. "+
		"Ensure kaggle.json is in ~/.kaggle and credentials are valid.\n"+
		"Command: %s\nStdout (bytes): %q\nStderr (bytes): %q",
		e.Command[0], e.ExitCode, strings.Join(e.Command, " "), e.Stdout, e.Stderr)
}

// MissingFilesError reports that expected raw files are absent after an
// acquisition attempt.
type MissingFilesError struct {
	Dir     string
	Missing []string
}

func (e *MissingFilesError) Error() string {
	return fmt.Sprintf("expected files not found in %s after unzip: %s", e.Dir, strings.Join(e.Missing, ", "))
}
