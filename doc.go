// Package authentic holds the content model and services behind the
// guadalupeabrile design-studio site: the photography gallery document,
// masonry layout resolution, and the image upload relay.
//
// The whole persisted state is one JSON document (PhotographyConfig) plus a
// tree of uploaded images keyed by category slug. Both live behind small
// interfaces so the same service runs against local disk in development and
// an S3-compatible object store in serverless deployments.
//
// # Key Components
//
//   - Service: reads/writes the photography document and relays uploads
//   - DocumentStore: persistence of the single JSON document
//   - ImageStorage: storage of uploaded image bytes (filesystem, blobstore)
//   - Slugify: category name normalization for paths and URLs
//
// Reads of the document never fail: a missing, corrupt, or wrongly shaped
// file yields DefaultConfig so the public site always renders. Writes are
// whole-document replacements with last-writer-wins semantics.
//
// See the http package for the REST API, filesystem and blobstore for the
// two storage backends, and auth for the admin token gate.
package authentic
