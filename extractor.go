package logpuzzle

import (
	"os"
	"sort"
	"strings"
)

// ReadURLs returns the puzzle URLs found in the log file at path, sorted
// in increasing order with duplicates removed. The host of every URL is
// taken from the log file name itself, see HostFragment.
func ReadURLs(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	host, err := HostFragment(path)
	if err != nil {
		return nil, err
	}

	return ExtractURLs(content, host), nil
}

// ExtractURLs finds every puzzle path requested in content and converts
// them into absolute URLs on host.
func ExtractURLs(content []byte, host string) []string {
	// Remove duplicates of the rebuilt URLs, since paths differing only
	// in their leading or trailing slashes end up as the same URL
	unique := make(map[string]struct{})
	for _, match := range rxPuzzlePath.FindAllSubmatch(content, -1) {
		unique[createFullURL(host, string(match[1]))] = struct{}{}
	}

	urls := make([]string, 0, len(unique))
	for url := range unique {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	return urls
}

// HostFragment returns the part of the log file path that starts at the
// "code" token, e.g. "code.google.com" for "animal_code.google.com". When the
// token holding it has several "code", the last one wins.
func HostFragment(path string) (string, error) {
	match := rxHostFragment.FindStringSubmatch(path)
	if match == nil {
		return "", ErrMissingHostFragment
	}

	return match[1], nil
}

// createFullURL joins scheme, host and path with a single slash each.
func createFullURL(host, path string) string {
	return "http://" + host + "/" + strings.Trim(path, "/")
}
