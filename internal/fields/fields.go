// Package fields defines the vocabulary of placeholders a destination
// template may reference and assembles the value map for one movie item.
package fields

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/backshelf/reelpath/internal/template"
)

// Field describes one placeholder available to destination templates.
type Field struct {
	Name        string
	Description string
}

// Catalog lists every supported field in display order.
func Catalog() []Field {
	return []Field{
		{Name: "TITLE", Description: "Movie title"},
		{Name: "YEAR", Description: "Release year"},
		{Name: "IMDB", Description: "IMDb id in bracketed form, e.g. [tt1375666]"},
		{Name: "IMDB_ID", Description: "Raw IMDb id, e.g. tt1375666"},
		{Name: "COLLECTION_NAME", Description: "Collection the movie belongs to, empty if none"},
		{Name: "SOURCE", Description: "Release source, e.g. BluRay, WEB-DL"},
		{Name: "VF", Description: "Video format, e.g. 1080p"},
		{Name: "VC", Description: "Video codec, e.g. x265"},
		{Name: "AC", Description: "Audio codec, e.g. EAC3"},
		{Name: "HDR", Description: "HDR label, empty for SDR"},
		{Name: "FPS", Description: "Frame rate, trailing zeros trimmed"},
		{Name: "LANG", Description: "Metadata language code, e.g. es"},
		{Name: "REGION", Description: "Region code, e.g. ES"},
		{Name: "LOCAL_FILENAME", Description: "Original filename of the item"},
	}
}

// AllowedSet returns the engine whitelist built from the catalog.
func AllowedSet() template.FieldSet {
	names := make([]string, 0, len(Catalog()))
	for _, f := range Catalog() {
		names = append(names, f.Name)
	}
	return template.NewFieldSet(names...)
}

// Input carries the metadata known for one item before rendering.
// Zero values mean "unknown" and render as empty strings.
type Input struct {
	Title          string
	Year           string
	IMDBID         string
	CollectionName string
	Source         string
	VideoFormat    string
	VideoCodec     string
	AudioCodec     string
	HDR            string
	FPS            float64
	Lang           string
	Region         string
	LocalFilename  string
}

// BuildValues flattens an Input into the string map the template engine
// consumes. IMDB carries the bracketed form, IMDB_ID the raw id.
func BuildValues(in Input) map[string]string {
	imdb := ""
	if in.IMDBID != "" {
		imdb = fmt.Sprintf("[%s]", in.IMDBID)
	}
	return map[string]string{
		"TITLE":           in.Title,
		"YEAR":            in.Year,
		"IMDB":            imdb,
		"IMDB_ID":         in.IMDBID,
		"COLLECTION_NAME": in.CollectionName,
		"SOURCE":          in.Source,
		"VF":              in.VideoFormat,
		"VC":              in.VideoCodec,
		"AC":              in.AudioCodec,
		"HDR":             in.HDR,
		"FPS":             FormatFPS(in.FPS),
		"LANG":            in.Lang,
		"REGION":          in.Region,
		"LOCAL_FILENAME":  in.LocalFilename,
	}
}

// FormatFPS renders a frame rate with at most three decimals and no
// trailing zeros. Zero means unknown and renders empty.
func FormatFPS(fps float64) string {
	if fps == 0 {
		return ""
	}
	text := strconv.FormatFloat(fps, 'f', 3, 64)
	text = strings.TrimRight(text, "0")
	text = strings.TrimRight(text, ".")
	return text
}
