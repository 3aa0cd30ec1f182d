package catalog

import "math/rand/v2"

// GalleryCategory filters gallery images.  CategoryAll matches every
// image.
type GalleryCategory string

const (
    CategoryAll        GalleryCategory = "all"
    CategoryFood       GalleryCategory = "food"
    CategoryInterior   GalleryCategory = "interior"
    CategoryAtmosphere GalleryCategory = "atmosphere"
    CategoryEvents     GalleryCategory = "events"
)

// Valid reports whether c is a known category.
func (c GalleryCategory) Valid() bool {
    switch c {
    case CategoryAll, CategoryFood, CategoryInterior, CategoryAtmosphere, CategoryEvents:
        return true
    }
    return false
}

// GalleryImage is one picture of the gallery.
type GalleryImage struct {
    ID        string          `json:"id"`
    Src       string          `json:"src"`
    Thumbnail string          `json:"thumbnail"`
    Alt       string          `json:"alt"`
    Category  GalleryCategory `json:"category"`
    Width     int             `json:"width,omitempty"`
    Height    int             `json:"height,omitempty"`
    Caption   string          `json:"caption,omitempty"`
}

func img(id, file string, cat GalleryCategory, alt, caption string) GalleryImage {
    return GalleryImage{
        ID:        id,
        Src:       "/images/gallery/" + file,
        Thumbnail: "/images/gallery/thumbs/" + file,
        Alt:       alt,
        Category:  cat,
        Width:     1200,
        Height:    800,
        Caption:   caption,
    }
}

var gallery = []GalleryImage{
    img("food-1", "khinkali-plate.jpg", CategoryFood, "ხინკალი თეფშზე - ტრადიციული ქართული კერძი", "ჩვენი ხელნაკეთი ხინკალი"),
    img("food-2", "khachapuri-adjarian.jpg", CategoryFood, "აჭარული ხაჭაპური კვერცხით", "აჭარული ხაჭაპური"),
    img("food-3", "mtsvadi-grill.jpg", CategoryFood, "მწვადი ღია ცეცხლზე", "მწვადი ქართული ტრადიციით"),
    img("food-4", "pkhali-assortment.jpg", CategoryFood, "ფხალის ასორტი", "ფხალის ასორტი"),
    img("food-5", "chakapuli.jpg", CategoryFood, "ჩაქაფული - ბატკნის ხორცი ტარხუნით", "ჩაქაფული"),
    img("interior-1", "dining-room.jpg", CategoryInterior, "რესტორნის სასადილო დარბაზი", "ჩვენი სასადილო დარბაზი"),
    img("interior-2", "traditional-decor.jpg", CategoryInterior, "ტრადიციული ქართული დეკორი", "ქართული ტრადიციული დეკორი"),
    img("interior-3", "wine-cellar.jpg", CategoryInterior, "ღვინის სარდაფი", "ღვინის სარდაფი"),
    img("interior-4", "cozy-corner.jpg", CategoryInterior, "მყუდრო კუთხე", "მყუდრო კუთხე"),
    img("atmosphere-1", "family-dinner.jpg", CategoryAtmosphere, "ოჯახური სადილი რესტორანში", "ოჯახური ატმოსფერო"),
    img("atmosphere-2", "chef-cooking.jpg", CategoryAtmosphere, "მზარეული კერძის მომზადებისას", "ჩვენი მზარეულები"),
    img("atmosphere-3", "wine-tasting.jpg", CategoryAtmosphere, "ღვინის დეგუსტაცია", "ღვინის დეგუსტაცია"),
    img("atmosphere-4", "evening-ambiance.jpg", CategoryAtmosphere, "საღამოს ატმოსფერო", "საღამოს ატმოსფერო"),
}

// ImagesByCategory returns the images in cat, or all of them for
// CategoryAll.
func ImagesByCategory(cat GalleryCategory) []GalleryImage {
    if cat == CategoryAll {
        return append([]GalleryImage(nil), gallery...)
    }
    out := []GalleryImage{}
    for _, im := range gallery {
        if im.Category == cat {
            out = append(out, im)
        }
    }
    return out
}

func imageIndex(id string) int {
    for i, im := range gallery {
        if im.ID == id {
            return i
        }
    }
    return -1
}

// ImageByID looks an image up by id.
func ImageByID(id string) (GalleryImage, bool) {
    if i := imageIndex(id); i >= 0 {
        return gallery[i], true
    }
    return GalleryImage{}, false
}

// NextImage returns the image after id; false at the end or for unknown
// ids.
func NextImage(id string) (GalleryImage, bool) {
    i := imageIndex(id)
    if i < 0 || i == len(gallery)-1 {
        return GalleryImage{}, false
    }
    return gallery[i+1], true
}

// PreviousImage returns the image before id; false at the start or for
// unknown ids.
func PreviousImage(id string) (GalleryImage, bool) {
    i := imageIndex(id)
    if i <= 0 {
        return GalleryImage{}, false
    }
    return gallery[i-1], true
}

// CategoryCounts returns the number of images per category, including
// CategoryAll.
func CategoryCounts() map[GalleryCategory]int {
    counts := map[GalleryCategory]int{
        CategoryAll:        len(gallery),
        CategoryFood:       0,
        CategoryInterior:   0,
        CategoryAtmosphere: 0,
        CategoryEvents:     0,
    }
    for _, im := range gallery {
        counts[im.Category]++
    }
    return counts
}

// RandomImages returns up to n distinct images in random order.
func RandomImages(n int, rng *rand.Rand) []GalleryImage {
    shuffled := append([]GalleryImage(nil), gallery...)
    rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
    if n < 0 {
        n = 0
    }
    if n > len(shuffled) {
        n = len(shuffled)
    }
    return shuffled[:n]
}
