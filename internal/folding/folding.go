// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding implements text folding used to normalize dictionary
// headwords and search queries before comparison.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// Folder returns a new transformer that folds whitespace with
// [WhitespaceFolder] and then applies Unicode case folding.
func Folder() transform.Transformer {
	return transform.Chain(&WhitespaceFolder{}, cases.Fold())
}
