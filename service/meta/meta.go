// Package meta loads YAML documents from any afs URL, expanding
// ${env.KEY} references before decoding.
package meta

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

var envExpr = regexp.MustCompile(`\$\{env\.([\p{L}\p{N}_]*)\}`)

// ExpandEnv replaces ${env.KEY} with the value of KEY, empty when unset.
// Malformed references are left as they are.
func ExpandEnv(text string) string {
	return envExpr.ReplaceAllStringFunc(text, func(match string) string {
		return os.Getenv(envExpr.FindStringSubmatch(match)[1])
	})
}

// Service loads documents.
type Service struct {
	fs afs.Service
}

// New creates a service; a nil fs uses afs.New().
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}

// Download returns the document at URL with env references expanded.
func (s *Service) Download(ctx context.Context, URL string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", URL, err)
	}
	return []byte(ExpandEnv(string(data))), nil
}

// Load decodes the YAML (or JSON) document at URL into dest.
func (s *Service) Load(ctx context.Context, URL string, dest interface{}) error {
	data, err := s.Download(ctx, URL)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", URL, err)
	}
	return nil
}
