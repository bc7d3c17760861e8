// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"strings"
)

// Environment variables read by prepare-cspell.
const (
	WebRootEnv             = "_WEB_ROOT"
	ProjectNameEnv         = "CI_PROJECT_NAME"
	WordsEnv               = "_CSPELL_WORDS"
	FlagWordsEnv           = "_CSPELL_FLAGWORDS"
	IgnorePathsEnv         = "_CSPELL_IGNORE_PATHS"
	IgnoreStandardFilesEnv = "_CSPELL_IGNORE_STANDARD_FILES"
)

const (
	DefaultWebRoot = "web"

	projectNameSeparator = "-"
)

// Raw holds unparsed values as they appear in the environment. Empty
// strings mean "not provided".
type Raw struct {
	WebRoot             string
	ProjectName         string
	Words               string
	FlagWords           string
	IgnorePaths         string
	IgnoreStandardFiles string
}

type Settings struct {
	WebRoot string

	// ProjectWord is the project name without its trailing "-NNNN" part.
	ProjectWord string
	Words       []string

	// FlagWords is nil when no flagged words were provided; the flagWords
	// field is then left as is.
	FlagWords []string

	IgnorePaths          []string
	IncludeStandardFiles bool
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(string) (string, bool)

func NewRawFromEnv(lookupFunc LookupFunc) Raw {
	get := func(name string) string {
		val, _ := lookupFunc(name)
		return val
	}
	return Raw{
		WebRoot:             get(WebRootEnv),
		ProjectName:         get(ProjectNameEnv),
		Words:               get(WordsEnv),
		FlagWords:           get(FlagWordsEnv),
		IgnorePaths:         get(IgnorePathsEnv),
		IgnoreStandardFiles: get(IgnoreStandardFilesEnv),
	}
}

func (r Raw) Settings() Settings {
	s := Settings{
		WebRoot:              r.WebRoot,
		ProjectWord:          ProjectWord(r.ProjectName),
		Words:                CleanList(r.Words),
		IgnorePaths:          CleanList(r.IgnorePaths),
		IncludeStandardFiles: ParseIncludeFlag(r.IgnoreStandardFiles),
	}
	if s.WebRoot == "" {
		s.WebRoot = DefaultWebRoot
	}
	if r.FlagWords != "" {
		s.FlagWords = append([]string{}, CleanList(r.FlagWords)...)
	}
	return s
}

// NonProjectDirectories lists directories in the project root that do not
// belong to the project itself.
func (s Settings) NonProjectDirectories() []string {
	return []string{s.WebRoot, "vendor", "node_modules", ".git"}
}

var listCleaner = strings.NewReplacer(`'`, "", `"`, "", " ", "")

// CleanList removes quotes and spaces, splits on commas and drops empty
// entries.
func CleanList(val string) []string {
	var result []string
	for _, piece := range strings.Split(listCleaner.Replace(val), ",") {
		if piece != "" {
			result = append(result, piece)
		}
	}
	return result
}

// ParseIncludeFlag reports false only for the exact value "0". Unset, empty
// and any other value (including "false") mean true.
func ParseIncludeFlag(val string) bool {
	return val != "0"
}

// ProjectWord drops everything from the first "-" on, so that
// "mymodule-1234567" becomes "mymodule".
func ProjectWord(projectName string) string {
	word, _, _ := strings.Cut(projectName+projectNameSeparator, projectNameSeparator)
	return word
}
