// Package sniffkit determines a file's true type from its binary content,
// independent of (and possibly contradicting) its name or extension.
//
// Detection is driven by an ordered registry of magic byte signatures,
// layered with two container resolvers that disambiguate formats sharing an
// outer container signature: ZIP-based Office Open XML / OpenDocument
// packages, and legacy OLE Compound File formats.
//
// # Basic Usage
//
//	res, err := sniffkit.Detect("upload.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Category, res.Subtype, res.MIME)
//
// Detection from an in-memory blob never fails:
//
//	res := sniffkit.DetectBytes(data)
//
// The only error Detect returns is for a path that does not reference an
// existing regular file. Everything else -- corrupt archives, truncated
// headers, unreadable container entries -- silently degrades to the
// next-priority mechanism and ultimately to [CategoryUnknown] with the
// application/octet-stream MIME type. A malformed container never aborts
// classification.
//
// # Detection Priority
//
// The first 8192 bytes of the file are read as the header window. A ZIP
// local-file signature routes through the Office/OpenDocument resolver, an
// OLE Compound File signature routes through the legacy Office resolver,
// and anything the resolvers cannot narrow falls back to an in-order scan
// of the flat signature registry. Registry order is the deterministic
// tie-break when one pattern is a prefix of another.
//
// # Beyond Detection
//
// The package also carries the thin collaborators a classification service
// needs around the engine:
//
//   - [Inspector] persists an uploaded blob to a scoped temp file, detects,
//     checksums, and captures a hex header preview, deleting the temp file
//     on every exit path.
//   - [BuildPreview] produces presentation hints: image dimensions, archive
//     entry listings, and a bounded peek inside gzip/zstd payloads.
//   - [Detector.ScanDir] classifies a directory tree filtered by glob
//     patterns, and [Watcher] re-classifies files as they change on disk.
//   - [Server] exposes the inspection flow over HTTP.
//
// # Configuration
//
// Service-level settings load from environment variables with the
// SNIFFKIT_ prefix via the [Config] struct:
//
//	cfg, err := sniffkit.GetConfig()
//	inspector := sniffkit.NewInspectorFromConfig(cfg)
package sniffkit
