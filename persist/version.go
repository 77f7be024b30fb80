// Copyright 2024 The Sketch2D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package persist

import (
	"github.com/blang/semver/v4"
	"github.com/cpmech/gosl/chk"
)

// CurrentFormatVersion is stamped onto every Document this package
// encodes. A document whose major version differs is rejected: within
// a major version, the schema may gain optional fields, but the
// record shapes decodeConstraint relies on must not change underneath
// it.
const CurrentFormatVersion = "1.0.0"

func checkFormatVersion(v string) error {
	parsed, err := semver.Parse(v)
	if err != nil {
		return chk.Err("persist: invalid format_version %q: %v", v, err)
	}
	current, err := semver.Parse(CurrentFormatVersion)
	if err != nil {
		return chk.Err("persist: invalid CurrentFormatVersion %q: %v", CurrentFormatVersion, err)
	}
	if parsed.Major != current.Major {
		return chk.Err("persist: document format_version %s is incompatible with this library's %s", v, CurrentFormatVersion)
	}
	return nil
}
