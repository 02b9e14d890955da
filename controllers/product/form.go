package productControllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kaloyan-drinchev/sink-shop/models"
)

// productForm carries the parsed multipart fields shared by create and
// update. Field names match the admin panel form.
type productForm struct {
	SerialNumber  string
	Model         models.Translation
	Title         models.Translation
	Description   models.Translation
	Material      models.Translation
	Color         models.Translation
	Mounting      models.Translation
	Tag           models.Translation
	Dimensions    string
	Weight        string
	Category      string
	Subcategory   string
	PriceEur      float64
	PriceBgn      float64
	StockQuantity int
	IsFeatured    bool
}

func parseProductForm(c *gin.Context) (*productForm, error) {
	serialNumber := c.PostForm("serialNumber")
	titleEn := c.PostForm("titleEn")
	category := c.PostForm("category")
	priceEurStr := c.PostForm("priceEur")
	priceBgnStr := c.PostForm("priceBgn")
	if serialNumber == "" || titleEn == "" || category == "" || priceEurStr == "" || priceBgnStr == "" {
		return nil, errors.New("serialNumber, titleEn, category, priceEur and priceBgn are required")
	}

	priceEur, err := strconv.ParseFloat(priceEurStr, 64)
	if err != nil {
		return nil, errors.New("invalid priceEur")
	}
	priceBgn, err := strconv.ParseFloat(priceBgnStr, 64)
	if err != nil {
		return nil, errors.New("invalid priceBgn")
	}

	stockQuantity := 1
	if sq := c.PostForm("stockQuantity"); sq != "" {
		stockQuantity, err = strconv.Atoi(sq)
		if err != nil || stockQuantity < 0 {
			return nil, errors.New("invalid stockQuantity")
		}
	}

	return &productForm{
		SerialNumber: serialNumber,
		Model:        models.Translation{EN: c.PostForm("modelEn"), BG: c.PostForm("modelBg")},
		Title:        models.Translation{EN: titleEn, BG: c.PostForm("titleBg")},
		Description:  models.Translation{EN: c.PostForm("descriptionEn"), BG: c.PostForm("descriptionBg")},
		Material:     models.Translation{EN: c.PostForm("materialEn"), BG: c.PostForm("materialBg")},
		Color:        models.Translation{EN: c.PostForm("colorEn"), BG: c.PostForm("colorBg")},
		Mounting:     models.Translation{EN: c.PostForm("mountingEn"), BG: c.PostForm("mountingBg")},
		Tag:          models.Translation{EN: c.PostForm("tagEn"), BG: c.PostForm("tagBg")},
		Dimensions:   c.PostForm("dimensions"),
		Weight:       c.PostForm("weight"),
		Category:     category,
		Subcategory:  c.PostForm("subcategory"),
		PriceEur:     priceEur,
		PriceBgn:     priceBgn,
		StockQuantity: stockQuantity,
		IsFeatured:   c.PostForm("isFeatured") == "true",
	}, nil
}

func (f *productForm) apply(p *models.Product) {
	p.SerialNumber = f.SerialNumber
	p.Model = f.Model
	p.Title = f.Title
	p.Description = f.Description
	p.Material = f.Material
	p.Color = f.Color
	p.Mounting = f.Mounting
	p.Manufacture = models.Translation{EN: "hand-made", BG: "ръчен труд"}
	p.Tag = f.Tag
	p.Dimensions = f.Dimensions
	p.Weight = f.Weight
	p.Category = f.Category
	p.Subcategory = f.Subcategory
	p.PriceEur = f.PriceEur
	p.PriceBgn = f.PriceBgn
	p.StockQuantity = f.StockQuantity
	p.IsFeatured = f.IsFeatured
	p.Slug = Slugify(f.Title.EN)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9 -]`)
var slugDashes = regexp.MustCompile(`-+`)

// Slugify derives the URL slug from the English title.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = strings.ReplaceAll(strings.TrimSpace(slug), " ", "-")
	return slugDashes.ReplaceAllString(slug, "-")
}

// saveImage stores an uploaded file under uploadDir and returns the
// public URL path.
func saveImage(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	filename := strings.ReplaceAll(file.Filename, " ", "_")
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return "/uploads/" + filename, nil
}
