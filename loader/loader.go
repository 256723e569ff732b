/*
Package loader fetches style documents and resolves file references.

A style string that is not inline JSON is treated as a reference: an
http(s) URL, or a path relative to the configuration directory. File
references are confined to that directory; references escaping it are
rejected.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package loader

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mapstyle.loader'.
func tracer() tracing.Trace {
	return tracing.Select("mapstyle.loader")
}

// ErrOutsideBaseDir flags a file reference escaping the configuration
// directory.
var ErrOutsideBaseDir = errors.New("file reference escapes the configuration directory")

// ErrNoFileAccess flags a file reference given to a loader without a
// configured file resolver.
var ErrNoFileAccess = errors.New("no configuration directory for file references")

// FileResolver resolves relative references against a base directory
// and guarantees that the result stays inside it.
type FileResolver struct {
	base string
}

// NewFileResolver creates a resolver confined to baseDir.
func NewFileResolver(baseDir string) (*FileResolver, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("configuration directory %q: %w", baseDir, err)
	}
	return &FileResolver{base: abs}, nil
}

// Resolve resolves ref against the base directory. The returned path
// is absolute. References escaping the base directory, by way of
// "..", absolute paths or otherwise, are an error.
func (r *FileResolver) Resolve(ref string) (string, error) {
	ref = strings.TrimPrefix(ref, "file://")
	joined := ref
	if !filepath.IsAbs(joined) {
		joined = filepath.Join(r.base, joined)
	}
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("file reference %q: %w", ref, err)
	}
	rel, err := filepath.Rel(r.base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideBaseDir, ref)
	}
	tracer().Debugf("resolved %q -> %q", ref, abs)
	return abs, nil
}

// Loader fetches the bytes behind a style reference. It implements
// the DocumentLoader collaborator of package mapfishjson.
type Loader struct {
	client *http.Client
	files  *FileResolver
}

// New creates a loader. files may be nil, rejecting file references;
// client may be nil, defaulting to http.DefaultClient.
func New(files *FileResolver, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{client: client, files: files}
}

// Load fetches the bytes behind ref. http(s) URLs are fetched over
// the network, everything else is read as a file confined to the
// configuration directory.
func (l *Loader) Load(ref string) ([]byte, error) {
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return l.fetch(ref)
	}
	if l.files == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoFileAccess, ref)
	}
	path, err := l.files.Resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style document %q: %w", ref, err)
	}
	return data, nil
}

func (l *Loader) fetch(rawURL string) ([]byte, error) {
	tracer().Infof("fetching style document from %s", rawURL)
	resp, err := l.client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("style document %q: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("style document %q: unexpected status %s", rawURL, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
