// Package catalog holds the restaurant's static content: menu packages,
// gallery images and contact details.  Everything here is read-only data
// plus small lookup helpers.
package catalog

import "github.com/shopspring/decimal"

// Currency is the symbol shown next to every price.
const Currency = "₾"

// MenuPackage is one orderable dish, set or drink.
type MenuPackage struct {
    ID          string          `json:"id"`
    Title       string          `json:"title"`
    Description string          `json:"description,omitempty"`
    Price       decimal.Decimal `json:"price"`
    Currency    string          `json:"currency"`
    Image       string          `json:"image"`
    Category    string          `json:"category"`
}

// MenuCategory groups packages under a Georgian heading.
type MenuCategory struct {
    ID       string        `json:"id"`
    Name     string        `json:"name"`
    Order    int           `json:"order"`
    Packages []MenuPackage `json:"packages"`
}

func pkg(category, id, title string, price int64, description string) MenuPackage {
    return MenuPackage{
        ID:          id,
        Title:       title,
        Description: description,
        Price:       decimal.NewFromInt(price),
        Currency:    Currency,
        Image:       "/images/menu/" + category + "/" + id + ".webp",
        Category:    category,
    }
}

var menu = []MenuCategory{
    {ID: "breakfast", Name: "საუზმე", Order: 1, Packages: []MenuPackage{
        pkg("breakfast", "breakfast-1", "საუზმე ორაგულით", 35, "ტოსტი შებოლილი ორაგულითა და გუაკამოლეთი, ფანქეიქი ჟოლოს სოუსითა და ხილით. წვენი. ჩაი. შეიცავს ალერგენს"),
        pkg("breakfast", "breakfast-2", "საუზმე ბეკონით", 30, "ტოსტზე ჩამომდნარი ყველი ბეკონისა და პომიდვრის შიგთავსით, კვერცხი სკრემბელი, ვაფლი შოკოლადითა და ხილით. წვენი. ჩაი. შეიცავს ალერგენს"),
        pkg("breakfast", "breakfast-3", "საუზმე ბოსტნეულით", 28, "კვერცხის ომლეტი ჩამდნარი გაუდა ყველითა და ქინძის ბანჩებით, ჩია მაწვნით. წვენი, ჩაი. შეიცავს ალერგენს"),
    }},
    {ID: "business-lunch", Name: "ბიზნეს ლანჩი", Order: 2, Packages: []MenuPackage{
        pkg("business-lunch", "lunch-1", "ბიზნეს ლანჩ მენიუ I სეტი", 25, "სოკოს წვნიანი, ქათმის სტეიკი კარტოფილის პიურესთან ერთად, ქართული სალათი, ბასკური ჩიზქეიქი, პურის ნაირსახეობა, წვენი"),
        pkg("business-lunch", "lunch-2", "ბიზნეს ლანჩ მენიუ II სეტი", 25, "ბოსტნეულის წვნიანი, ოჯახური ღორის ხორცით, ბერძნული სალათი, ყაისეფე, წვენი"),
        pkg("business-lunch", "lunch-3", "ბიზნეს ლანჩ მენიუ III სეტი", 25, ""),
    }},
    {ID: "main", Name: "ძირითადი კერძები", Order: 3, Packages: []MenuPackage{
        pkg("main", "main-1", "ხბოს მწვადი ქართული სოუსით", 33, ""),
        pkg("main", "main-2", "კახური ღორის მწვადი ქართული სოუსით", 24, ""),
        pkg("main", "main-3", "ქათმის მწვადი მაშარაფის სოუსით", 23, ""),
        pkg("main", "main-4", "ორაგულის მწვადი რაიტას სოუსით", 33, ""),
        pkg("main", "main-5", "საქონლის ქაბაბი", 20, ""),
        pkg("main", "main-6", "საქონლის ქაბაბი სულგუნით", 22, ""),
        pkg("main", "main-7", "ღორის ნეკნი", 24, ""),
        pkg("main", "main-8", "წიწილა შქმერულად", 35, ""),
        pkg("main", "main-9", "ხბოს ჩაშუშული", 19, ""),
        pkg("main", "main-10", "საქონლის კუჭმაჭი", 19, ""),
        pkg("main", "main-11", "ოჯახური ღორის ხორცით", 21, ""),
        pkg("main", "main-12", "იახნი", 19, ""),
        pkg("main", "main-13", "ტრადიციული ლობიო შოთის პურითა და მჟავის ნაირსახეობით", 16, ""),
    }},
    {ID: "seafood", Name: "ზღვის პროდუქტები", Order: 4, Packages: []MenuPackage{
        pkg("seafood", "seafood-1", "ორაგულის ფილე", 56, ""),
        pkg("seafood", "seafood-2", "კალმახი გრილზე", 26, ""),
        pkg("seafood", "seafood-3", "დორადო გრილზე", 40, ""),
        pkg("seafood", "seafood-4", "სიბასი გრილზე", 44, ""),
        pkg("seafood", "seafood-5", "გრილზე მომზადებული ლობსტერი", 120, ""),
        pkg("seafood", "seafood-6", "მიდიები თეთრი ღვინის სოუსში", 45, ""),
        pkg("seafood", "seafood-7", "სამეფო კრევეტები თეთრი ღვინის სოუსით", 45, ""),
        pkg("seafood", "seafood-8", "დორადო ხილის სალსათი", 40, ""),
    }},
    {ID: "sushi", Name: "სუში", Order: 5, Packages: []MenuPackage{
        pkg("sushi", "sushi-1", "ფილადელფია", 33, ""),
        pkg("sushi", "sushi-2", "კალიფორნია", 30, ""),
        pkg("sushi", "sushi-3", "დრაგონ როლი", 38, ""),
        pkg("sushi", "sushi-4", "კიტრის და ავოკადოს მაკი", 15, ""),
        pkg("sushi", "sushi-5", "გველთევზას მაკი", 21, ""),
        pkg("sushi", "sushi-6", "საკე მაკი", 19, ""),
        pkg("sushi", "sushi-7", "შაო მაი", 23, ""),
        pkg("sushi", "sushi-8", "კრევეტის როლი", 29, ""),
        pkg("sushi", "sushi-9", "მომწვარი სიბასის როლი", 25, ""),
        pkg("sushi", "sushi-10", "ცხარე ორაგულის როლი", 39, ""),
        pkg("sushi", "sushi-11", "შემწვარი ცხარე ორაგულის როლი", 29, ""),
        pkg("sushi", "sushi-12", "შემწვარი უნაგის როლი", 32, ""),
        pkg("sushi", "sushi-13", "ნიგირის სეტი", 29, ""),
        pkg("sushi", "sushi-14", "მომწვარი ორაგულის როლი", 29, ""),
    }},
    {ID: "soup", Name: "წვნიანი", Order: 6, Packages: []MenuPackage{
        pkg("soup", "soup-1", "ჩიხირთმა", 18, ""),
        pkg("soup", "soup-2", "ჩაქაფული", 23, ""),
        pkg("soup", "soup-3", "მინი-ხინკლის წვნიანი", 18, ""),
        pkg("soup", "soup-4", "სოკოს კრემ-სუპი", 17, ""),
        pkg("soup", "soup-5", "გოგრის კრემ-სუპი", 17, ""),
        pkg("soup", "soup-6", "ქათმის წვნიანი", 16, ""),
        pkg("soup", "soup-7", "ბოსტნეულის წვნიანი", 12, ""),
        pkg("soup", "soup-8", "ტომ იამის წვნიანი კრევეტებით", 29, ""),
        pkg("soup", "soup-9", "რამენი", 18, ""),
    }},
    {ID: "burger", Name: "ბურგერები და სენდვიჩები", Order: 7, Packages: []MenuPackage{
        pkg("burger", "burger-1", "კლასიკური ბურგერი საქონლის ხორცით", 25, ""),
        pkg("burger", "burger-2", "ჩიზბურგერი", 29, ""),
        pkg("burger", "burger-3", "ქათმის ბურგერი", 25, ""),
        pkg("burger", "burger-4", "ქლაბ სენდვიჩი", 23, ""),
        pkg("burger", "burger-5", "პანინის სენდვიჩი", 22, ""),
    }},
    {ID: "beverage", Name: "გამაგრილებელი სასმელები", Order: 8, Packages: []MenuPackage{
        pkg("beverage", "beverage-1", "ბაკურიანი 0.5", 3, "ბაკურიანი 0.5 ლ"),
        pkg("beverage", "beverage-2", "ბორჯომი 0.5", 3, "ბორჯომი 0.5 ლ"),
        pkg("beverage", "beverage-3", "კოკა-კოლა 0.33", 5, "კოკა-კოლა 0.33 ლ"),
        pkg("beverage", "beverage-4", "ფანტა 0.33", 5, "ფანტა 0.33 ლ"),
        pkg("beverage", "beverage-5", "შვეფს ტონიკი 0.33", 5, "შვეფს ტონიკი 0.33 ლ"),
        pkg("beverage", "beverage-6", "რედ ბული 0.33", 11, "რედ ბული ენერგეტიკული სასმელი 0.33 ლ"),
        pkg("beverage", "beverage-7", "რედ ბული უშაქრო 0.33", 11, "რედ ბული უშაქრო ენერგეტიკული სასმელი 0.33 ლ"),
        pkg("beverage", "beverage-8", "ლიმონათი 0.5", 5, "ლიმონათი 0.5 ლ"),
        pkg("beverage", "beverage-9", "მთის წყალი 0.33", 3, "მთის წყალი 0.33 ლ"),
    }},
}

var packagesByID = func() map[string]MenuPackage {
    m := make(map[string]MenuPackage)
    for _, c := range menu {
        for _, p := range c.Packages {
            m[p.ID] = p
        }
    }
    return m
}()

// Categories returns every menu category in display order.  The result is
// a copy; callers may modify it.
func Categories() []MenuCategory {
    out := make([]MenuCategory, len(menu))
    for i, c := range menu {
        c.Packages = append([]MenuPackage(nil), c.Packages...)
        out[i] = c
    }
    return out
}

// PackagesIn returns the packages of category id.
func PackagesIn(category string) ([]MenuPackage, bool) {
    for _, c := range menu {
        if c.ID == category {
            return append([]MenuPackage(nil), c.Packages...), true
        }
    }
    return nil, false
}

// PackageByID looks a package up by id.
func PackageByID(id string) (MenuPackage, bool) {
    p, ok := packagesByID[id]
    return p, ok
}
