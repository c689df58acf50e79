package news

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskImageStore keeps uploaded images under <assetDir>/images/news and
// serves them through the static /images/ file handler.
type DiskImageStore struct {
	assetDir string
}

func NewDiskImageStore(assetDir string) *DiskImageStore {
	return &DiskImageStore{assetDir: assetDir}
}

func (s *DiskImageStore) dir() string {
	return filepath.Join(s.assetDir, "images", "news")
}

func (s *DiskImageStore) Save(originalName string, data []byte) (string, string, error) {
	if err := os.MkdirAll(s.dir(), 0o755); err != nil {
		return "", "", err
	}

	ext := filepath.Ext(originalName)
	storedName := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir(), storedName), data, 0o644); err != nil {
		return "", "", err
	}
	return "/images/news/" + storedName, storedName, nil
}

func (s *DiskImageStore) Delete(storedName string) error {
	if storedName == "" {
		return nil
	}
	// Reject anything that could escape the image directory.
	if filepath.Base(storedName) != storedName {
		return nil
	}
	return os.Remove(filepath.Join(s.dir(), storedName))
}
