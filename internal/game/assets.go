package game

import (
	"io/fs"
	"log"
	"os"
	"path"
	"strings"
)

// Catalog maps asset names to opaque handles the presentation layer can
// load. Audio clips are keyed by base filename without extension (the
// convention voice fields in scripts use); images are keyed by their path
// relative to the asset root. The engine never opens the files; a handle
// is just the relative path handed to the client.
type Catalog struct {
	audio  map[string]string
	images map[string]string
}

// NewCatalog creates an empty catalog. Resolution against an empty
// catalog always misses, which downstream code treats as a degraded
// no-op.
func NewCatalog() *Catalog {
	return &Catalog{
		audio:  make(map[string]string),
		images: make(map[string]string),
	}
}

// LoadCatalog scans an asset directory for audio (.wav/.ogg) and image
// (.png/.jpg) files. A missing or unreadable directory is logged and
// yields an empty catalog rather than an error.
func LoadCatalog(root string) *Catalog {
	c := NewCatalog()
	if root == "" {
		return c
	}
	if _, err := os.Stat(root); err != nil {
		log.Printf("assets: folder %q not found, running without assets", root)
		return c
	}
	c.scan(os.DirFS(root))
	return c
}

func (c *Catalog) scan(fsys fs.FS) {
	_ = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".wav", ".ogg":
			name := strings.TrimSuffix(path.Base(p), path.Ext(p))
			c.audio[name] = p
		case ".png", ".jpg", ".jpeg":
			c.images[p] = p
		}
		return nil
	})
}

// AddAudio registers a clip by name. Used by tests and embedded content.
func (c *Catalog) AddAudio(name, handle string) {
	c.audio[name] = handle
}

// AddImage registers an image by reference.
func (c *Catalog) AddImage(ref, handle string) {
	c.images[ref] = handle
}

// ResolveAudio maps a clip name to its handle.
func (c *Catalog) ResolveAudio(name string) (string, bool) {
	h, ok := c.audio[name]
	return h, ok
}

// ResolveImage maps an image reference to its handle.
func (c *Catalog) ResolveImage(ref string) (string, bool) {
	h, ok := c.images[ref]
	return h, ok
}

// AudioCount returns how many clips were discovered.
func (c *Catalog) AudioCount() int {
	return len(c.audio)
}
