package productcontroller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Archan-07/E-Commerce-Backend/auth"
	"github.com/Archan-07/E-Commerce-Backend/config"
	"github.com/Archan-07/E-Commerce-Backend/models"
	"github.com/Archan-07/E-Commerce-Backend/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUploader stands in for the asset host. It records the staged file
// path and hands back a deterministic URL.
type fakeUploader struct {
	lastPath string
	err      error
}

func (f *fakeUploader) Upload(_ context.Context, localPath string) (string, error) {
	f.lastPath = localPath
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/uploaded.png", nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.Review{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenTTL:     time.Hour,
		RefreshTokenTTL:    24 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{
		Name: "Test User", Email: email, Password: "irrelevant-hash",
		Address: "42 Test Street", Phone: "1234567890", Role: role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: strings.ToLower(name)}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, title string, categoryID uint, price float64) models.Product {
	t.Helper()
	product := models.Product{
		Title: title, Description: "a product", Price: price,
		CategoryID: categoryID, Stock: 10, Image: "https://cdn.example.com/img.png",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func bearer(t *testing.T, cfg *config.Config, user models.User) string {
	t.Helper()
	token, err := auth.GenerateAccessToken(user, cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	require.NoError(t, err)
	return "Bearer " + token
}

func setupRouter(db *gorm.DB, cfg *config.Config, up *fakeUploader) *gin.Engine {
	r := gin.New()
	api := r.Group("/api/v1")
	routes.SetupProductRoutes(api, db, cfg, up)
	return r
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartProduct(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withImage {
		fw, err := mw.CreateFormFile("image", "product shot.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("not-really-a-png"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postMultipart(r *gin.Engine, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func productFields(category string) map[string]string {
	return map[string]string{
		"title":       "Gizmo",
		"description": "a fine gizmo",
		"price":       "19.99",
		"category":    category,
		"stock":       "5",
	}
}

func TestCreateProduct(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	up := &fakeUploader{}
	r := setupRouter(db, cfg, up)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	createCategory(t, db, "Widgets")
	token := bearer(t, cfg, admin)

	body, ct := multipartProduct(t, productFields("Widgets"), true)
	w := postMultipart(r, "/api/v1/product/createProduct", token, body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, up.lastPath)

	var product models.Product
	require.NoError(t, db.Where("title = ?", "Gizmo").First(&product).Error)
	assert.Equal(t, "https://cdn.example.com/uploaded.png", product.Image)
	assert.Equal(t, 5, product.Stock)

	// Duplicate titles are rejected.
	body, ct = multipartProduct(t, productFields("Widgets"), true)
	w = postMultipart(r, "/api/v1/product/createProduct", token, body, ct)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateProductValidation(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	r := setupRouter(db, cfg, &fakeUploader{})
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	createCategory(t, db, "Widgets")
	token := bearer(t, cfg, admin)

	// Missing image.
	body, ct := multipartProduct(t, productFields("Widgets"), false)
	w := postMultipart(r, "/api/v1/product/createProduct", token, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing field.
	fields := productFields("Widgets")
	delete(fields, "description")
	body, ct = multipartProduct(t, fields, true)
	w = postMultipart(r, "/api/v1/product/createProduct", token, body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown category.
	body, ct = multipartProduct(t, productFields("NoSuchCategory"), true)
	w = postMultipart(r, "/api/v1/product/createProduct", token, body, ct)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductUploadFailure(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	up := &fakeUploader{err: errors.New("asset host down")}
	r := setupRouter(db, cfg, up)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	createCategory(t, db, "Widgets")

	body, ct := multipartProduct(t, productFields("Widgets"), true)
	w := postMultipart(r, "/api/v1/product/createProduct", bearer(t, cfg, admin), body, ct)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProductRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	r := setupRouter(db, cfg, &fakeUploader{})
	user := createUser(t, db, "alice@example.com", models.RoleUser)
	createCategory(t, db, "Widgets")

	body, ct := multipartProduct(t, productFields("Widgets"), true)
	w := postMultipart(r, "/api/v1/product/createProduct", bearer(t, cfg, user), body, ct)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetProductByID(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	r := setupRouter(db, cfg, &fakeUploader{})
	user := createUser(t, db, "alice@example.com", models.RoleUser)
	category := createCategory(t, db, "Widgets")
	product := createProduct(t, db, "Gizmo", category.ID, 19.99)
	token := bearer(t, cfg, user)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/product/getProductById/%d", product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Gizmo", env.Data.Title)
	assert.Equal(t, "Widgets", env.Data.Category.Name)

	w = doRequest(r, http.MethodGet, "/api/v1/product/getProductById/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllProductsPagination(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	r := setupRouter(db, cfg, &fakeUploader{})
	user := createUser(t, db, "alice@example.com", models.RoleUser)
	category := createCategory(t, db, "Widgets")
	for i := 0; i < 12; i++ {
		createProduct(t, db, fmt.Sprintf("Item %02d", i), category.ID, float64(i))
	}
	token := bearer(t, cfg, user)

	w := doRequest(r, http.MethodGet, "/api/v1/product/getAllProducts?page=2&limit=5", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data struct {
			Total    int64            `json:"total"`
			Page     int              `json:"page"`
			Limit    int              `json:"limit"`
			Products []models.Product `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.EqualValues(t, 12, env.Data.Total)
	assert.Equal(t, 2, env.Data.Page)
	assert.Len(t, env.Data.Products, 5)
}

func TestGetAllProductsFilters(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	r := setupRouter(db, cfg, &fakeUploader{})
	user := createUser(t, db, "alice@example.com", models.RoleUser)
	widgets := createCategory(t, db, "Widgets")
	gadgets := createCategory(t, db, "Gadgets")
	createProduct(t, db, "Blue Widget", widgets.ID, 5)
	createProduct(t, db, "Red Widget", widgets.ID, 6)
	createProduct(t, db, "Gadget", gadgets.ID, 7)
	token := bearer(t, cfg, user)

	w := doRequest(r, http.MethodGet, "/api/v1/product/getAllProducts?keyword=blue", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data struct {
			Total    int64            `json:"total"`
			Products []models.Product `json:"products"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.EqualValues(t, 1, env.Data.Total)
	assert.Equal(t, "Blue Widget", env.Data.Products[0].Title)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/product/getAllProducts?category=%d", widgets.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.EqualValues(t, 2, env.Data.Total)

	w = doRequest(r, http.MethodGet, "/api/v1/product/getAllProducts?category=not-a-number", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	r := setupRouter(db, cfg, &fakeUploader{})
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	user := createUser(t, db, "alice@example.com", models.RoleUser)
	category := createCategory(t, db, "Widgets")
	product := createProduct(t, db, "Gizmo", category.ID, 19.99)
	adminToken := bearer(t, cfg, admin)

	update := map[string]interface{}{
		"title": "Gizmo Pro", "description": "improved", "price": 29.99,
		"category": "Widgets", "stock": 3,
	}
	path := fmt.Sprintf("/api/v1/product/updateProduct/%d", product.ID)
	w := doRequest(r, http.MethodPut, path, adminToken, update)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&product, product.ID).Error)
	assert.Equal(t, "Gizmo Pro", product.Title)
	assert.InDelta(t, 29.99, product.Price, 1e-9)

	w = doRequest(r, http.MethodPut, path, bearer(t, cfg, user), update)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/api/v1/product/deleteProduct/%d", product.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}
