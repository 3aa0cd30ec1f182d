// Package imageopt derives responsive image URLs from a source path.  The
// resized variants are produced at build time as <base>-<width>.<format>;
// this package only computes their names.
package imageopt

import (
    "fmt"
    "math"
    "net/url"
    "path"
    "strings"
)

// Format is an output image format.
type Format string

const (
    WebP Format = "webp"
    JPG  Format = "jpg"
    PNG  Format = "png"
)

// DefaultWidths and DefaultFormats are used by NewConfig.
var (
    DefaultWidths  = []int{320, 640, 1024, 1920}
    DefaultFormats = []Format{WebP, JPG}
)

// DefaultThumbSize is the thumbnail width used by ThumbnailURL callers.
const DefaultThumbSize = 320

// Config describes the variants available for one source image.
type Config struct {
    Src     string
    Widths  []int
    Formats []Format
}

// Option adjusts a Config built by NewConfig.
type Option func(*Config)

// WithWidths overrides the generated widths.
func WithWidths(w ...int) Option { return func(c *Config) { c.Widths = w } }

// WithFormats overrides the generated formats.
func WithFormats(f ...Format) Option { return func(c *Config) { c.Formats = f } }

// NewConfig returns the default configuration for src.
func NewConfig(src string, opts ...Option) Config {
    c := Config{
        Src:     src,
        Widths:  append([]int(nil), DefaultWidths...),
        Formats: append([]Format(nil), DefaultFormats...),
    }
    for _, o := range opts {
        o(&c)
    }
    return c
}

// Sources are the srcset values for a <picture> element.
type Sources struct {
    WebP     string `json:"webp"`
    Fallback string `json:"fallback"`
    Sizes    string `json:"sizes"`
}

func stripExt(src string) string {
    return strings.TrimSuffix(src, path.Ext(src))
}

// SrcSet lists every width of base in format, e.g.
// "/a-320.webp 320w, /a-640.webp 640w".
func SrcSet(base string, widths []int, format Format) string {
    parts := make([]string, 0, len(widths))
    for _, w := range widths {
        parts = append(parts, fmt.Sprintf("%s-%d.%s %dw", base, w, format, w))
    }
    return strings.Join(parts, ", ")
}

// SizesAttribute is the sizes attribute used for gallery and menu grids.
func SizesAttribute() string {
    return "(max-width: 640px) 100vw, (max-width: 1024px) 50vw, 33vw"
}

// ResponsiveSources builds the webp and fallback srcsets for cfg.  The
// fallback is the first non-webp format, or jpg.
func ResponsiveSources(cfg Config) Sources {
    base := stripExt(cfg.Src)
    fallback := JPG
    for _, f := range cfg.Formats {
        if f != WebP {
            fallback = f
            break
        }
    }
    return Sources{
        WebP:     SrcSet(base, cfg.Widths, WebP),
        Fallback: SrcSet(base, cfg.Widths, fallback),
        Sizes:    SizesAttribute(),
    }
}

// OptimizedURL is the URL of src resized to width in format.
func OptimizedURL(src string, width int, format Format) string {
    if format == "" {
        format = WebP
    }
    return fmt.Sprintf("%s-%d.%s", stripExt(src), width, format)
}

// ThumbnailURL is the thumbs/ variant of src at size, keeping the
// extension.
func ThumbnailURL(src string, size int) string {
    dir, file := path.Split(src)
    ext := path.Ext(file)
    return fmt.Sprintf("%sthumbs/%s-%d%s", dir, strings.TrimSuffix(file, ext), size, ext)
}

// BlurPlaceholder is the low-quality preview shown while src loads.
func BlurPlaceholder(src string) string {
    return stripExt(src) + "-blur.jpg"
}

// Placeholder returns an SVG data URI of a solid width x height box.
func Placeholder(width, height int, color string) string {
    if color == "" {
        color = "#f0f0f0"
    }
    svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d"><rect width="%d" height="%d" fill="%s"/></svg>`,
        width, height, width, height, color)
    return "data:image/svg+xml," + url.PathEscape(svg)
}

// AspectRatio returns height as a percentage of width, for padding-top
// boxes.  A zero width yields 0.
func AspectRatio(width, height int) float64 {
    if width == 0 {
        return 0
    }
    return float64(height) / float64(width) * 100
}

var bytesPerPixel = map[Format]float64{
    WebP: 0.1,
    JPG:  0.15,
    PNG:  0.5,
}

// EstimateSizeKB is a rough file size in kilobytes for an image of the
// given dimensions and format.
func EstimateSizeKB(width, height int, format Format) int {
    bpp, ok := bytesPerPixel[format]
    if !ok {
        bpp = bytesPerPixel[JPG]
    }
    return int(math.Round(float64(width*height) * bpp / 1024))
}
