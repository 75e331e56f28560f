// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file holds one secret: the filename is the key name and the trimmed
// contents are the value.
//
// Known key files: google-books-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// GoogleBooksAPIKey names the file holding the upstream catalog API key.
const GoogleBooksAPIKey = "google-books-api-key"

// Set maps secret names to values.
type Set map[string]string

// Load reads all regular, non-hidden files in dir. A missing directory is not
// an error and yields an empty Set. Unreadable files are logged and skipped.
func Load(dir string) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	set := make(Set)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logrus.WithError(err).WithField("secret", entry.Name()).Warn("could not read secret")
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			set[entry.Name()] = value
		}
	}
	return set, nil
}

// Get returns the value for name, or fallback when name is absent. A
// non-empty fallback wins, so explicit flags and environment take
// precedence over files.
func (s Set) Get(name, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return s[name]
}

// Names returns the loaded secret names in sorted order. Values are never
// listed.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
