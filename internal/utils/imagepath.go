package utils

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

var dirnameUnsafe = regexp.MustCompile(`[^a-z0-9_-]`)

// Datestamp renders a date as YYYY-MM-DD.
func Datestamp(t time.Time) string {
	return t.Format("2006-01-02")
}

// CleanDirname lowercases a name and replaces every character outside
// [a-z0-9_-] with an underscore. The result is safe as a path segment and the
// function is idempotent.
func CleanDirname(name string) string {
	return dirnameUnsafe.ReplaceAllString(strings.ToLower(name), "_")
}

// BuildImagePath derives a storage path from an uploaded filename. With no
// extra segments the filename is returned unchanged. Otherwise the segments
// are joined as a path and the original file's extension is appended to the
// last segment; a last segment that already carries an extension keeps it and
// gains the original extension on top.
//
//	BuildImagePath("/path/to/image.gif")                         -> "/path/to/image.gif"
//	BuildImagePath("/path/to/image.gif", "new")                  -> "new.gif"
//	BuildImagePath("/path/to/image.gif", "new", "path", "parts") -> "new/path/parts.gif"
//	BuildImagePath("/path/to/image.gif", "new", "parts.jpg")     -> "new/parts.jpg.gif"
func BuildImagePath(filename string, segments ...string) string {
	if len(segments) == 0 {
		return filename
	}
	ext := path.Ext(filename)
	joined := make([]string, len(segments))
	copy(joined, segments)
	joined[len(joined)-1] += ext
	return path.Join(joined...)
}

// ProductImagePath derives the storage path for a product image:
// product/<id>/<date>_<cleaned-name> plus the upload's extension.
func ProductImagePath(productID, productName, filename string, on time.Time) string {
	representation := fmt.Sprintf("%s_%s", Datestamp(on), CleanDirname(productName))
	return BuildImagePath(filename, "product", productID, representation)
}

// ReceiptImagePath derives the storage path for a receipt image:
// receipt/<year>/<month>/<day>/<id>_<cleaned-supplier-name> plus the upload's
// extension.
func ReceiptImagePath(receiptID, supplierName string, date time.Time, filename string) string {
	representation := fmt.Sprintf("%s_%s", receiptID, CleanDirname(supplierName))
	return BuildImagePath(filename,
		"receipt",
		date.Format("2006"),
		date.Format("01"),
		date.Format("02"),
		representation,
	)
}
