package config

import (
	"os"
	"path/filepath"
)

// documentFile is the name of the persisted photography document.
const documentFile = "photography.json"

// Backend is the one-shot storage selection derived from the environment at
// process start. It is computed once and treated as immutable for the
// process lifetime; everything downstream receives it by injection instead
// of re-reading the environment.
type Backend struct {
	// UseObjectStore is true only when running serverless with an object
	// store write credential present.
	UseObjectStore bool

	// UploadsDir is the directory served read-only under /uploads, empty in
	// object-store mode.
	UploadsDir string

	// ImageRoot is where uploaded image bytes are written in local mode.
	ImageRoot string

	// ConfigWritePath is where document writes go in local mode.
	ConfigWritePath string

	// ConfigReadPaths are tried in order on document reads. In the degraded
	// serverless mode the persistent deployment snapshot comes first, then
	// the temp path that writes land in.
	ConfigReadPaths []string
}

// Resolve derives the storage backend from the two environment signals:
// the managed-serverless flag and the presence of an object-store write
// credential.
//
// Serverless with a credential uses the object store for both images and the
// document. Serverless without one is a degraded mode: images and document
// writes go under os.TempDir and survive only until the instance recycles,
// while document reads still prefer the read-only deployment snapshot.
// Everything else is plain local disk.
func (c StorageConfig) Resolve() Backend {
	persistent := filepath.Join(c.DataDir, documentFile)

	if c.Serverless && c.Blob.CredentialPresent() {
		return Backend{UseObjectStore: true}
	}

	if c.Serverless {
		tmp := filepath.Join(os.TempDir(), "authentic")
		tmpDoc := filepath.Join(tmp, "storage", documentFile)
		return Backend{
			UploadsDir:      filepath.Join(tmp, "uploads"),
			ImageRoot:       filepath.Join(tmp, "uploads", "photography"),
			ConfigWritePath: tmpDoc,
			ConfigReadPaths: []string{persistent, tmpDoc},
		}
	}

	return Backend{
		UploadsDir:      c.UploadsDir,
		ImageRoot:       filepath.Join(c.UploadsDir, "photography"),
		ConfigWritePath: persistent,
		ConfigReadPaths: []string{persistent},
	}
}
