// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package urlx

import "strings"

// AppendPath concatenates an already-escaped absolute path onto base without
// re-encoding or normalizing either side. Exactly one slash separates the two.
func AppendPath(base, escapedPath string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(escapedPath, "/")
}
