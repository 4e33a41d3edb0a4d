package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackcoffee-backend/internal/catalog"
	"blackcoffee-backend/internal/images"
	"blackcoffee-backend/internal/middleware"
	"blackcoffee-backend/internal/models"
)

var newsSearchFields = []string{
	"title.uk", "title.en", "title",
	"excerpt.uk", "excerpt.en", "excerpt",
	"author",
}

const wordsPerMinute = 200

// estimateReadTime derives the reading time in minutes from the Ukrainian
// article body, falling back to 3 minutes for empty content.
func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 3
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func newsResponse(n models.News) models.News {
	n.Image = images.Resolve(n.Image)
	return n
}

func (h *Handler) ListNews(c *gin.Context) {
	params := catalog.Params{
		Page:      1,
		Limit:     10,
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    "publishedAt",
		SortOrder: -1,
	}
	params.ParsePage(c.Query("page"), c.Query("limit"))

	ctx := c.Request.Context()
	col := h.DB.News()
	query := params.Query(newsSearchFields)

	cur, err := col.Find(ctx, query, params.FindOptions())
	if err != nil {
		h.serverError(c, "news: fetch failed", err)
		return
	}
	var items []models.News
	if err := cur.All(ctx, &items); err != nil {
		h.serverError(c, "news: decode failed", err)
		return
	}

	totalCount, err := col.CountDocuments(ctx, query)
	if err != nil {
		h.serverError(c, "news: count failed", err)
		return
	}

	out := make([]models.News, 0, len(items))
	for _, n := range items {
		out = append(out, newsResponse(n))
	}

	c.JSON(200, gin.H{
		"news":       out,
		"pagination": catalog.NewPageInfo(params, totalCount),
	})
}

func (h *Handler) GetNews(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid news ID"})
		return
	}

	var article models.News
	err = h.DB.News().FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&article)
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "News not found"})
		return
	}
	if err != nil {
		h.serverError(c, "news: fetch failed", err)
		return
	}

	c.JSON(200, gin.H{"news": newsResponse(article)})
}

type newsRequest struct {
	Title       models.LocalizedText `json:"title"`
	Excerpt     models.LocalizedText `json:"excerpt"`
	Content     models.LocalizedText `json:"content"`
	Author      string               `json:"author"`
	Image       string               `json:"image"`
	Category    string               `json:"category"`
	Featured    bool                 `json:"featured"`
	PublishedAt *time.Time           `json:"publishedAt"`
}

func (h *Handler) CreateNews(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}
	if req.Title.IsEmpty() || req.Excerpt.IsEmpty() || req.Content.IsEmpty() ||
		req.Image == "" || req.Category == "" || req.Author == "" {
		c.JSON(400, gin.H{"error": "Missing required fields"})
		return
	}

	now := time.Now()
	publishedAt := now
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	article := models.News{
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Author:      req.Author,
		Image:       req.Image,
		Category:    req.Category,
		Featured:    req.Featured,
		ReadTime:    estimateReadTime(req.Content.Uk),
		PublishedAt: publishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := h.DB.News().InsertOne(c.Request.Context(), article)
	if err != nil {
		h.serverError(c, "news: insert failed", err)
		return
	}
	article.ID = res.InsertedID.(primitive.ObjectID)

	c.JSON(201, gin.H{"news": newsResponse(article)})
}

func (h *Handler) UpdateNews(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid news ID"})
		return
	}

	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}
	// Edits must carry both languages for every text field.
	if req.Title.Uk == "" || req.Title.En == "" ||
		req.Excerpt.Uk == "" || req.Excerpt.En == "" ||
		req.Content.Uk == "" || req.Content.En == "" {
		c.JSON(400, gin.H{"error": "Missing required fields"})
		return
	}

	set := bson.M{
		"title":     req.Title,
		"excerpt":   req.Excerpt,
		"content":   req.Content,
		"featured":  req.Featured,
		"readTime":  estimateReadTime(req.Content.Uk),
		"updatedAt": time.Now(),
	}
	if req.Author != "" {
		set["author"] = req.Author
	}
	if req.Image != "" {
		set["image"] = req.Image
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if req.PublishedAt != nil {
		set["publishedAt"] = *req.PublishedAt
	}

	var article models.News
	err = h.DB.News().FindOneAndUpdate(c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&article)
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "News not found"})
		return
	}
	if err != nil {
		h.serverError(c, "news: update failed", err)
		return
	}

	c.JSON(200, gin.H{"news": newsResponse(article)})
}

func (h *Handler) DeleteNews(c *gin.Context) {
	if c.GetString(middleware.CtxRole) != models.RoleAdmin {
		c.JSON(403, gin.H{"error": "Admin access required"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid news ID"})
		return
	}

	res, err := h.DB.News().DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		h.serverError(c, "news: delete failed", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(404, gin.H{"error": "News not found"})
		return
	}

	c.JSON(200, gin.H{"message": "News deleted successfully"})
}
