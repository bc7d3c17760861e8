// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cspell

import (
	"fmt"

	"carvel.dev/prepare-cspell/pkg/document"
	"github.com/hashicorp/go-version"
)

const VersionKey = "version"

// MinimumConfigVersion is the oldest configuration format that understands
// dictionaryDefinitions and ignorePaths as written here.
var MinimumConfigVersion = version.Must(version.NewVersion("0.2"))

// CheckConfigVersion returns a non-empty message when the document declares
// a configuration version that cannot be parsed or is too old. A missing
// version is fine.
func CheckConfigVersion(doc *document.Map) string {
	node, found := doc.Get(VersionKey)
	if !found {
		return ""
	}

	scalar, ok := node.(document.Scalar)
	if !ok || scalar.IsNull() {
		return fmt.Sprintf("Expected configuration version to be a string, but was %s", document.CompactString(node))
	}

	verStr := fmt.Sprintf("%v", scalar.Value)

	ver, err := version.NewVersion(verStr)
	if err != nil {
		return fmt.Sprintf("Unable to parse configuration version '%s': %s", verStr, err)
	}

	if ver.LessThan(MinimumConfigVersion) {
		return fmt.Sprintf("Expected configuration version to be at least %s, but was %s", MinimumConfigVersion.Original(), ver.Original())
	}
	return ""
}
