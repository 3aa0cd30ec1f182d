package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/sanadimo/internal/catalog"
    "github.com/iliyamo/sanadimo/internal/imageopt"
)

// CatalogHandler serves the static restaurant content.  Its responses are
// safe to cache: nothing depends on the visitor.
type CatalogHandler struct {
    Now func() time.Time
}

func NewCatalogHandler() *CatalogHandler {
    return &CatalogHandler{Now: time.Now}
}

type restaurantResp struct {
    catalog.RestaurantInfo
    FormattedAddress string `json:"formatted_address"`
    PhoneLink        string `json:"phone_link"`
    EmailLink        string `json:"email_link"`
    OpenNow          bool   `json:"open_now"`
    TodayHours       string `json:"today_hours"`
}

// Restaurant: GET /v1/restaurant
func (h *CatalogHandler) Restaurant(c echo.Context) error {
    now := h.Now()
    r := catalog.Restaurant()
    return c.JSON(http.StatusOK, restaurantResp{
        RestaurantInfo:   r,
        FormattedAddress: r.FormattedAddress(),
        PhoneLink:        r.PhoneLink(),
        EmailLink:        r.EmailLink(),
        OpenNow:          r.IsOpen(now),
        TodayHours:       r.TodaysHours(now),
    })
}

// Menu: GET /v1/menu
func (h *CatalogHandler) Menu(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"categories": catalog.Categories()})
}

// MenuCategory: GET /v1/menu/:category
func (h *CatalogHandler) MenuCategory(c echo.Context) error {
    pkgs, ok := catalog.PackagesIn(c.Param("category"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
    }
    return c.JSON(http.StatusOK, echo.Map{"category": c.Param("category"), "packages": pkgs})
}

// Gallery: GET /v1/gallery?category=food
func (h *CatalogHandler) Gallery(c echo.Context) error {
    cat := catalog.GalleryCategory(c.QueryParam("category"))
    if cat == "" {
        cat = catalog.CategoryAll
    }
    if !cat.Valid() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "category": cat,
        "images":   catalog.ImagesByCategory(cat),
        "counts":   catalog.CategoryCounts(),
    })
}

type galleryImageResp struct {
    catalog.GalleryImage
    Sources     imageopt.Sources `json:"sources"`
    Blur        string           `json:"blur"`
    AspectRatio float64          `json:"aspect_ratio"`
    NextID      string           `json:"next_id,omitempty"`
    PrevID      string           `json:"prev_id,omitempty"`
}

// GalleryImage: GET /v1/gallery/:id, one image with lightbox navigation
// and its responsive variants.
func (h *CatalogHandler) GalleryImage(c echo.Context) error {
    id := c.Param("id")
    img, ok := catalog.ImageByID(id)
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
    }
    resp := galleryImageResp{
        GalleryImage: img,
        Sources:      imageopt.ResponsiveSources(imageopt.NewConfig(img.Src)),
        Blur:         imageopt.BlurPlaceholder(img.Src),
        AspectRatio:  imageopt.AspectRatio(img.Width, img.Height),
    }
    if next, ok := catalog.NextImage(id); ok {
        resp.NextID = next.ID
    }
    if prev, ok := catalog.PreviousImage(id); ok {
        resp.PrevID = prev.ID
    }
    return c.JSON(http.StatusOK, resp)
}
