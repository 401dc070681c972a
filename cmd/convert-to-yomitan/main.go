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

// Command convert-to-yomitan converts every dictionaries/toki-pona-to-*.csv
// file to a Yomitan dictionary archive in yomitan_dictionaries/.
package main

import (
	"os"

	"github.com/ianlewis/go-yomitan/internal/cmdutil"
)

func main() {
	os.Exit(cmdutil.Run(newConvertApp(), os.Args))
}
