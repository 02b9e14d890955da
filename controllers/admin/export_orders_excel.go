package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaloyan-drinchev/sink-shop/store"
	"github.com/tealeg/xlsx"
)

// ExportOrdersToExcel streams all orders as an .xlsx download, one row
// per order line.
// GET /api/admin/orders/export-excel
func ExportOrdersToExcel(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.ListOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNumber", "Status", "PaymentStatus", "Customer", "City", "Country",
			"ProductID", "Quantity", "PriceEur", "PriceBgn",
			"TotalEur", "TotalBgn", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			customer := o.ShippingAddress.FirstName + " " + o.ShippingAddress.LastName
			for _, item := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.OrderNumber)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(string(o.PaymentStatus))
				row.AddCell().SetValue(customer)
				row.AddCell().SetValue(o.ShippingAddress.City)
				row.AddCell().SetValue(o.ShippingAddress.Country)
				row.AddCell().SetValue(item.ProductID)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.PriceEur)
				row.AddCell().SetValue(item.PriceBgn)
				row.AddCell().SetValue(o.TotalEur)
				row.AddCell().SetValue(o.TotalBgn)
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
