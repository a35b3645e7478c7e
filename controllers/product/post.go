package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/utils"
)

// CreateProduct creates a product from a multipart form. The image is staged
// to a local temp file, forwarded to the asset host, and the temp file is
// removed whether the upload succeeds or not.
func CreateProduct(db *gorm.DB, up utils.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		categoryName := c.PostForm("category")
		stockStr := c.PostForm("stock")
		if title == "" || description == "" || priceStr == "" || categoryName == "" || stockStr == "" {
			utils.Fail(c, http.StatusBadRequest, "All fields are required")
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			utils.Fail(c, http.StatusBadRequest, "Invalid price")
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			utils.Fail(c, http.StatusBadRequest, "Invalid stock")
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			utils.Fail(c, http.StatusBadRequest, "Product Image is required")
			return
		}

		var existing models.Product
		if err := db.Where("title = ?", title).First(&existing).Error; err == nil {
			utils.Fail(c, http.StatusConflict, "Product with same name already exists")
			return
		}

		var category models.Category
		if err := db.Where("name = ?", categoryName).First(&category).Error; err != nil {
			utils.Fail(c, http.StatusNotFound, "Category not found")
			return
		}

		filename := strings.ReplaceAll(file.Filename, " ", "_")
		localPath := filepath.Join(os.TempDir(),
			strconv.FormatInt(time.Now().UnixNano(), 10)+"_"+filename)
		if err := c.SaveUploadedFile(file, localPath); err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to save image")
			return
		}
		defer os.Remove(localPath)

		imageURL, err := up.Upload(c.Request.Context(), localPath)
		if err != nil || imageURL == "" {
			utils.Fail(c, http.StatusInternalServerError, "Image upload failed")
			return
		}

		product := models.Product{
			Title:         title,
			Description:   description,
			Price:         price,
			CategoryID:    category.ID,
			Stock:         stock,
			Image:         imageURL,
			AverageRating: 0,
		}
		if err := db.Create(&product).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to create product")
			return
		}
		utils.OK(c, http.StatusCreated, product, "Product is created")
	}
}
