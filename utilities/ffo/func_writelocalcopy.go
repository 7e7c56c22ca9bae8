// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ffo

import (
	"os"
	"path/filepath"
)

// WriteLocalCopy writes content to folderPath/fileName, creating the folder when missing, returns the file path
func WriteLocalCopy(folderPath string, fileName string, content []byte) (filePath string, err error) {
	if err = os.MkdirAll(folderPath, 0755); err != nil {
		return "", err
	}
	filePath = filepath.Join(folderPath, fileName)
	if err = os.WriteFile(filePath, content, 0644); err != nil {
		return "", err
	}
	return filePath, nil
}
