package imageopt

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestSrcSet(t *testing.T) {
    got := SrcSet("/images/a", []int{320, 640}, WebP)
    assert.Equal(t, "/images/a-320.webp 320w, /images/a-640.webp 640w", got)
    assert.Equal(t, "", SrcSet("/images/a", nil, WebP))
}

func TestResponsiveSources(t *testing.T) {
    cfg := NewConfig("/images/gallery/wine-cellar.jpg", WithWidths(320, 1024))
    s := ResponsiveSources(cfg)
    assert.Equal(t, "/images/gallery/wine-cellar-320.webp 320w, /images/gallery/wine-cellar-1024.webp 1024w", s.WebP)
    assert.Equal(t, "/images/gallery/wine-cellar-320.jpg 320w, /images/gallery/wine-cellar-1024.jpg 1024w", s.Fallback)
    assert.Equal(t, SizesAttribute(), s.Sizes)

    png := ResponsiveSources(NewConfig("/x.png", WithWidths(100), WithFormats(WebP, PNG)))
    assert.Equal(t, "/x-100.png 100w", png.Fallback)

    webpOnly := ResponsiveSources(NewConfig("/x.png", WithWidths(100), WithFormats(WebP)))
    assert.Equal(t, "/x-100.jpg 100w", webpOnly.Fallback)
}

func TestNewConfigDefaults(t *testing.T) {
    cfg := NewConfig("/a.jpg")
    assert.Equal(t, []int{320, 640, 1024, 1920}, cfg.Widths)
    assert.Equal(t, []Format{WebP, JPG}, cfg.Formats)

    cfg.Widths[0] = 1
    assert.Equal(t, 320, DefaultWidths[0])
}

func TestURLs(t *testing.T) {
    assert.Equal(t, "/images/a-640.webp", OptimizedURL("/images/a.jpg", 640, ""))
    assert.Equal(t, "/images/a-640.png", OptimizedURL("/images/a.jpg", 640, PNG))
    assert.Equal(t, "/images/gallery/thumbs/chakapuli-320.jpg", ThumbnailURL("/images/gallery/chakapuli.jpg", DefaultThumbSize))
    assert.Equal(t, "/images/a-blur.jpg", BlurPlaceholder("/images/a.webp"))
}

func TestPlaceholder(t *testing.T) {
    p := Placeholder(400, 300, "")
    assert.True(t, strings.HasPrefix(p, "data:image/svg+xml,"))
    assert.Contains(t, p, "400")
    assert.Contains(t, p, "%23f0f0f0")
}

func TestAspectRatioAndSize(t *testing.T) {
    assert.InDelta(t, 66.666, AspectRatio(1200, 800), 0.01)
    assert.Equal(t, 0.0, AspectRatio(0, 10))
    assert.Equal(t, 141, EstimateSizeKB(1200, 800, JPG))
    assert.Equal(t, 94, EstimateSizeKB(1200, 800, WebP))
    assert.Equal(t, 469, EstimateSizeKB(1200, 800, PNG))
}
