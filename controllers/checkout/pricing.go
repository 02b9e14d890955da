package checkoutControllers

import (
	"log"
	"math"

	"github.com/kaloyan-drinchev/sink-shop/models"
	"github.com/kaloyan-drinchev/sink-shop/store"
)

// CartLine is a client-submitted cart entry. Only the product id and
// quantity are trusted; prices always come from the catalog.
type CartLine struct {
	ProductID string `json:"id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// PricedLine is a cart line resolved against the catalog, with totals
// rounded to cents per currency.
type PricedLine struct {
	Product  models.Product
	Quantity int
	LineEur  float64
	LineBgn  float64
}

// Cents rounds a monetary amount to two decimals. Rounding happens at the
// line level, so order totals are exact sums of the rounded lines.
func Cents(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceCart resolves each line against the catalog and computes per-line
// and order totals in both currencies. Lines referencing a missing or
// inactive product are dropped with a warning rather than failing the
// whole cart, so a stale browser cart can still check out.
func PriceCart(s store.Store, lines []CartLine) (priced []PricedLine, totalEur, totalBgn float64) {
	for _, line := range lines {
		if line.Quantity < 1 {
			log.Printf("⚠️ Skipping cart line for product %s: quantity %d", line.ProductID, line.Quantity)
			continue
		}
		product, err := s.GetProduct(line.ProductID)
		if err != nil {
			log.Printf("⚠️ Skipping unresolvable cart line for product %s: %v", line.ProductID, err)
			continue
		}
		if !product.IsActive {
			log.Printf("⚠️ Skipping inactive product %s in cart", line.ProductID)
			continue
		}

		lineEur := Cents(product.PriceEur * float64(line.Quantity))
		lineBgn := Cents(product.PriceBgn * float64(line.Quantity))
		totalEur = Cents(totalEur + lineEur)
		totalBgn = Cents(totalBgn + lineBgn)

		priced = append(priced, PricedLine{
			Product:  *product,
			Quantity: line.Quantity,
			LineEur:  lineEur,
			LineBgn:  lineBgn,
		})
	}
	return priced, totalEur, totalBgn
}
