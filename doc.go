// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package yomitan converts Toki Pona dictionaries to the Yomitan dictionary
// format and reads Yomitan dictionaries back.
//
// A Yomitan dictionary is a zip archive containing several files:
//  1. An index.json file that contains metadata about the dictionary. It is
//     read and written by the meta package.
//  2. One or more term_bank_<n>.json files that contain the dictionary's
//     terms. They are read and written by the termbank package.
//
// Source dictionaries are CSV files named "toki-pona-to-<language>.csv" with
// "word" and "definition" columns, as produced by the split package from a
// multilingual dictionary.
//
// More info on the dictionary format can be found at this URL:
// https://github.com/yomidevs/yomitan/tree/master/ext/data/schemas
package yomitan
