package repository

import (
	"os"
	"strings"
)

// HasFileWithSuffixes checks if a directory contains files matching any inclusion suffix
func HasFileWithSuffixes(dirPath string, inclusionSuffix, exclusionSuffix []string) (bool, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return false, err
	}

outer:
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, suffix := range inclusionSuffix {
			if strings.HasSuffix(strings.ToLower(entry.Name()), strings.ToLower(suffix)) {
				for _, exclusion := range exclusionSuffix {
					if strings.HasSuffix(entry.Name(), exclusion) {
						continue outer
					}
				}
				return true, nil
			}
		}
	}
	return false, nil
}
