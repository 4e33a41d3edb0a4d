package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackcoffee-backend/internal/catalog"
	"blackcoffee-backend/internal/i18n"
	"blackcoffee-backend/internal/images"
	"blackcoffee-backend/internal/middleware"
	"blackcoffee-backend/internal/models"
)

// productSearchFields covers both the bilingual subpaths and the bare paths
// legacy string documents still have.
var productSearchFields = []string{
	"name.uk", "name.en", "name",
	"description.uk", "description.en", "description",
	"origin.uk", "origin.en", "origin",
}

// productResponse resolves the stored image reference so clients always get
// a fetchable URL regardless of which backend the image lives in.
func productResponse(p models.Product) models.Product {
	p.Image = images.Resolve(p.Image)
	return p
}

func (h *Handler) ListProducts(c *gin.Context) {
	params := catalog.Params{
		Page:     1,
		Limit:    12,
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Filter:   c.Query("filter"),
		SortBy:   c.DefaultQuery("sortBy", "createdAt"),
	}
	if c.Query("sortOrder") == "asc" {
		params.SortOrder = 1
	} else {
		params.SortOrder = -1
	}
	params.ParsePage(c.Query("page"), c.Query("limit"))

	ctx := c.Request.Context()
	col := h.DB.Products()
	query := params.Query(productSearchFields)

	cur, err := col.Find(ctx, query, params.FindOptions())
	if err != nil {
		h.serverError(c, "products: fetch failed", err)
		return
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		h.serverError(c, "products: decode failed", err)
		return
	}

	totalCount, err := col.CountDocuments(ctx, query)
	if err != nil {
		h.serverError(c, "products: count failed", err)
		return
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse(p))
	}

	c.JSON(200, gin.H{
		"products":   out,
		"pagination": catalog.NewPageInfo(params, totalCount),
	})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	err = h.DB.Products().FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		h.serverError(c, "products: fetch failed", err)
		return
	}

	c.JSON(200, productResponse(product))
}

type productRequest struct {
	Name          models.LocalizedText `json:"name"`
	Description   models.LocalizedText `json:"description"`
	Price         float64              `json:"price"`
	OriginalPrice float64              `json:"originalPrice"`
	Image         string               `json:"image"`
	Category      models.LocalizedText `json:"category"`
	Type          models.LocalizedText `json:"type"`
	Weight        models.LocalizedText `json:"weight"`
	Origin        models.LocalizedText `json:"origin"`
	IsNew         *bool                `json:"isNew"`
	IsOnSale      *bool                `json:"isOnSale"`
	InStock       *bool                `json:"inStock"`
}

func (r productRequest) missingField() string {
	switch {
	case r.Name.IsEmpty():
		return "name"
	case r.Description.IsEmpty():
		return "description"
	case r.Price <= 0:
		return "price"
	case r.Image == "":
		return "image"
	case r.Type.IsEmpty():
		return "type"
	case r.Weight.IsEmpty():
		return "weight"
	case r.Origin.IsEmpty():
		return "origin"
	}
	return ""
}

func (h *Handler) CreateProduct(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}
	if field := req.missingField(); field != "" {
		c.JSON(400, gin.H{"error": field + " is required"})
		return
	}

	now := time.Now()
	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Category:      req.Category,
		Type:          req.Type,
		Weight:        req.Weight,
		Origin:        req.Origin,
		IsNew:         req.IsNew == nil || *req.IsNew,
		IsOnSale:      req.OriginalPrice > 0 && req.OriginalPrice > req.Price,
		InStock:       req.InStock == nil || *req.InStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res, err := h.DB.Products().InsertOne(c.Request.Context(), product)
	if err != nil {
		h.serverError(c, "products: insert failed", err)
		return
	}
	product.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(201, gin.H{"product": productResponse(product)})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid product ID"})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	update := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Category:      req.Category,
		Type:          req.Type,
		Weight:        req.Weight,
		Origin:        req.Origin,
		IsNew:         req.IsNew != nil && *req.IsNew,
		IsOnSale:      req.IsOnSale != nil && *req.IsOnSale,
		InStock:       req.InStock == nil || *req.InStock,
	}
	// Edit is the moment legacy single-language select fields get their
	// English side filled from the fixed tables.
	i18n.NormalizeProduct(&update)

	var product models.Product
	err = h.DB.Products().FindOneAndUpdate(c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":          update.Name,
			"description":   update.Description,
			"price":         update.Price,
			"originalPrice": update.OriginalPrice,
			"image":         update.Image,
			"category":      update.Category,
			"type":          update.Type,
			"weight":        update.Weight,
			"origin":        update.Origin,
			"isNew":         update.IsNew,
			"isOnSale":      update.IsOnSale,
			"inStock":       update.InStock,
			"updatedAt":     time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		h.serverError(c, "products: update failed", err)
		return
	}

	c.JSON(200, gin.H{"product": productResponse(product)})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid product ID"})
		return
	}

	res, err := h.DB.Products().DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		h.serverError(c, "products: delete failed", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(404, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"message": "Product deleted successfully"})
}
