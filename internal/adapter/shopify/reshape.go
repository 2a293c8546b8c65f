package shopify

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Reshapers normalize wire payloads into the flat domain model. They
// are total: absent or malformed nested data degrades to omission or
// defaulting, never to an error.

func reshapeMoney(m wireMoney) domain.Money {
	return domain.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func reshapeImage(img wireImage) domain.Image {
	return domain.Image{
		URL:     img.URL,
		AltText: img.AltText,
		Width:   img.Width,
		Height:  img.Height,
	}
}

// reshapeImages flattens the image connection and guarantees alt text
// is never empty: a missing one is synthesized from the owning
// product's title and the image filename.
func reshapeImages(c connection[wireImage], ownerTitle string) []domain.Image {
	flattened := flattenConnection(c)

	images := make([]domain.Image, 0, len(flattened))
	for _, img := range flattened {
		di := reshapeImage(img)
		if di.AltText == "" {
			di.AltText = fmt.Sprintf(
				"%s - %s", ownerTitle, imageFilename(img.URL),
			)
		}
		images = append(images, di)
	}
	return images
}

// imageFilename extracts the last URL path segment without its
// extension.
func imageFilename(url string) string {
	base := path.Base(url)
	return strings.TrimSuffix(base, path.Ext(base))
}

func reshapeSelectedOptions(opts []wireSelectedOption) []domain.SelectedOption {
	out := make([]domain.SelectedOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, domain.SelectedOption{Name: o.Name, Value: o.Value})
	}
	return out
}

func reshapeVariants(c connection[wireVariant]) []domain.ProductVariant {
	flattened := flattenConnection(c)

	variants := make([]domain.ProductVariant, 0, len(flattened))
	for _, v := range flattened {
		variants = append(variants, domain.ProductVariant{
			ID:               v.ID,
			Title:            v.Title,
			AvailableForSale: v.AvailableForSale,
			SelectedOptions:  reshapeSelectedOptions(v.SelectedOptions),
			Price:            reshapeMoney(v.Price),
		})
	}
	return variants
}

func reshapeProductOptions(opts []wireProductOption) []domain.ProductOption {
	out := make([]domain.ProductOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, domain.ProductOption{
			ID:     o.ID,
			Name:   o.Name,
			Values: o.Values,
		})
	}
	return out
}

// reshapeProduct normalizes one backend product. It reports false for
// a product carrying the hidden tag when filtering is requested, so
// hidden products never appear in listings but stay addressable by
// handle.
func (c *Client) reshapeProduct(
	p wireProduct, filterHidden bool,
) (domain.Product, bool) {
	if filterHidden && slices.Contains(p.Tags, c.hiddenTag) {
		return domain.Product{}, false
	}

	return domain.Product{
		ID:               p.ID,
		Handle:           p.Handle,
		AvailableForSale: p.AvailableForSale,
		Title:            p.Title,
		Description:      p.Description,
		DescriptionHTML:  p.DescriptionHTML,
		Options:          reshapeProductOptions(p.Options),
		PriceRange: domain.PriceRange{
			MinVariantPrice: reshapeMoney(p.PriceRange.MinVariantPrice),
			MaxVariantPrice: reshapeMoney(p.PriceRange.MaxVariantPrice),
		},
		Variants:      reshapeVariants(p.Variants),
		FeaturedImage: reshapeImage(p.FeaturedImage),
		Images:        reshapeImages(p.Images, p.Title),
		SEO:           domain.SEO{Title: p.SEO.Title, Description: p.SEO.Description},
		Tags:          p.Tags,
		UpdatedAt:     p.UpdatedAt,
	}, true
}

// reshapeProducts filters hidden products, preserving input order
// among the remaining.
func (c *Client) reshapeProducts(ps []wireProduct) []domain.Product {
	products := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		if dp, ok := c.reshapeProduct(p, true); ok {
			products = append(products, dp)
		}
	}
	return products
}

func reshapeCollection(col wireCollection) domain.Collection {
	return domain.Collection{
		Handle:      col.Handle,
		Title:       col.Title,
		Description: col.Description,
		SEO:         domain.SEO{Title: col.SEO.Title, Description: col.SEO.Description},
		UpdatedAt:   col.UpdatedAt,
		Path:        "/search/" + col.Handle,
	}
}

// reshapeCollections drops collections reserved for internal use, the
// ones whose handle starts with the hidden prefix.
func reshapeCollections(cols []wireCollection) []domain.Collection {
	collections := make([]domain.Collection, 0, len(cols))
	for _, col := range cols {
		if strings.HasPrefix(col.Handle, domain.HiddenCollectionPrefix) {
			continue
		}
		collections = append(collections, reshapeCollection(col))
	}
	return collections
}

// reshapeCart flattens the lines connection and backfills a zero tax
// amount so downstream arithmetic never meets a missing field.
func (c *Client) reshapeCart(w wireCart) domain.Cart {
	totalTax := domain.Money{Amount: "0.0", CurrencyCode: "USD"}
	if w.Cost.TotalTaxAmount != nil {
		totalTax = reshapeMoney(*w.Cost.TotalTaxAmount)
	}

	flattened := flattenConnection(w.Lines)
	lines := make([]domain.CartLine, 0, len(flattened))
	for _, l := range flattened {
		merchProduct, _ := c.reshapeProduct(l.Merchandise.Product, false)
		lines = append(lines, domain.CartLine{
			ID:          l.ID,
			Quantity:    l.Quantity,
			TotalAmount: reshapeMoney(l.Cost.TotalAmount),
			Merchandise: domain.Merchandise{
				ID:              l.Merchandise.ID,
				Title:           l.Merchandise.Title,
				SelectedOptions: reshapeSelectedOptions(l.Merchandise.SelectedOptions),
				Product:         merchProduct,
			},
		})
	}

	return domain.Cart{
		ID:          w.ID,
		CheckoutURL: w.CheckoutURL,
		Cost: domain.CartCost{
			SubtotalAmount: reshapeMoney(w.Cost.SubtotalAmount),
			TotalAmount:    reshapeMoney(w.Cost.TotalAmount),
			TotalTaxAmount: totalTax,
		},
		Lines:         lines,
		TotalQuantity: w.TotalQuantity,
	}
}

// reshapeMenu rewrites backend menu links onto the storefront's own
// routes: the store domain is stripped, /collections becomes /search
// and the /pages segment disappears.
func (c *Client) reshapeMenu(items []wireMenuItem) []domain.MenuItem {
	menu := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		p := strings.Replace(item.URL, c.storeDomain, "", 1)
		p = strings.Replace(p, "/collections", "/search", 1)
		p = strings.Replace(p, "/pages", "", 1)
		menu = append(menu, domain.MenuItem{Title: item.Title, Path: p})
	}
	return menu
}
