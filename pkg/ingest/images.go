package ingest

import (
	"log"
	"path"
	"strings"

	"github.com/google/uuid"
)

// EmbeddedImage is one raster image pulled out of the workbook, anchored to
// a 0-indexed sheet row. Hint is the extension the workbook claims, without
// the dot; the true format is resolved from the bytes.
type EmbeddedImage struct {
	Row  int
	Data []byte
	Hint string
}

// ImageRowMap records which stored blob illustrates which sheet row. Rows
// are native 0-indexed sheet coordinates, not data-row indexes.
type ImageRowMap map[int]string

// vectorFormats are metafile formats browsers cannot render; such images
// are skipped silently.
var vectorFormats = map[string]bool{"emf": true, "wmf": true, "emz": true, "wmz": true}

// sniffImageFormat resolves the true format from the leading bytes, falling
// back to the workbook's hint for anything unrecognized.
func sniffImageFormat(data []byte, hint string) string {
	switch {
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47:
		return "png"
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "jpg"
	case len(data) >= 3 && data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46:
		return "gif"
	}
	return strings.ToLower(strings.TrimPrefix(hint, "."))
}

// ExtractImages stores every renderable embedded image under dir and maps
// sheet rows to blob paths. When two images anchor to the same row the
// larger source buffer wins and the superseded blob is deleted. Individual
// failures are logged and skipped so one corrupt entry cannot abort the
// batch.
func ExtractImages(images []EmbeddedImage, sink BlobSink, dir string) ImageRowMap {
	m := ImageRowMap{}
	if len(images) == 0 {
		return m
	}
	if err := sink.EnsureDir(dir); err != nil {
		log.Printf("ingest: ensure image dir %s: %v", dir, err)
	}
	sizes := map[int]int{}
	for _, img := range images {
		format := sniffImageFormat(img.Data, img.Hint)
		if format == "" || vectorFormats[format] {
			continue
		}
		if _, taken := m[img.Row]; taken && len(img.Data) <= sizes[img.Row] {
			continue
		}
		p := path.Join(dir, uuid.NewString()+"."+format)
		if err := sink.Put(p, img.Data); err != nil {
			log.Printf("ingest: store image for row %d: %v", img.Row, err)
			continue
		}
		if prev, taken := m[img.Row]; taken {
			if err := sink.Delete(prev); err != nil {
				log.Printf("ingest: delete superseded image %s: %v", prev, err)
			}
		}
		m[img.Row] = p
		sizes[img.Row] = len(img.Data)
	}
	return m
}
