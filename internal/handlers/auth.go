package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"blackcoffee-backend/internal/auth"
	"blackcoffee-backend/internal/email"
	"blackcoffee-backend/internal/models"
)

const bcryptCost = 12

// userResponse is the profile shape returned to clients, never including the
// password hash or token fields.
func userResponse(u models.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"email":         u.Email,
		"name":          u.Name,
		"role":          u.Role,
		"avatar":        u.Avatar,
		"phone":         u.Phone,
		"address":       u.Address,
		"createdAt":     u.CreatedAt,
		"emailVerified": u.EmailVerified,
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" || req.Name == "" {
		c.JSON(400, gin.H{"error": "Email, password, and name are required"})
		return
	}

	if errs := auth.ValidatePassword(req.Password); len(errs) > 0 {
		c.JSON(400, gin.H{"error": strings.Join(errs, ", ")})
		return
	}

	ctx := c.Request.Context()
	users := h.DB.Users()

	count, err := users.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		h.serverError(c, "register: email lookup failed", err)
		return
	}
	if count > 0 {
		c.JSON(409, gin.H{"error": "User with this email already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.serverError(c, "register: hash failed", err)
		return
	}

	now := time.Now()
	user := models.User{
		Email:                    req.Email,
		Password:                 string(hashed),
		Name:                     req.Name,
		Role:                     models.RoleUser,
		EmailVerified:            false,
		VerificationToken:        auth.NewOpaqueToken(),
		VerificationTokenExpires: now.Add(24 * time.Hour),
		CreatedAt:                now,
		LastLogin:                now,
	}

	res, err := users.InsertOne(ctx, user)
	if err != nil {
		h.serverError(c, "register: insert failed", err)
		return
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	// Verification mail is best effort; registration succeeds either way.
	verifyURL := h.BaseURL + "/verify-email?token=" + user.VerificationToken
	h.Mail.SendAsync(user.Email, "Підтвердіть вашу електронну адресу", email.VerificationBody(user.Name, verifyURL))

	c.JSON(201, gin.H{
		"user":    userResponse(user),
		"message": "Реєстрація успішна. Перевірте вашу електронну пошту для підтвердження.",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(400, gin.H{"error": "Email and password are required"})
		return
	}

	ctx := c.Request.Context()
	users := h.DB.Users()

	var user models.User
	err := users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		h.serverError(c, "login: lookup failed", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(401, gin.H{"error": "Invalid credentials"})
		return
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	token, err := auth.Sign(h.Secret, user.ID.Hex(), user.Email, role)
	if err != nil {
		h.serverError(c, "login: token sign failed", err)
		return
	}

	_, err = users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"lastLogin": time.Now()}})
	if err != nil {
		h.Log.Warn("login: lastLogin update failed", zap.Error(err))
	}

	user.Role = role
	c.JSON(200, gin.H{"user": userResponse(user), "token": token})
}

// Verify returns the profile for a valid token; the auth middleware already
// rejected everything else.
func (h *Handler) Verify(c *gin.Context) {
	h.GetProfile(c)
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var user models.User
	err := h.DB.Users().FindOne(c.Request.Context(), bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		h.serverError(c, "profile: lookup failed", err)
		return
	}
	c.JSON(200, gin.H{"user": userResponse(user)})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req struct {
		Name            string `json:"name"`
		Phone           string `json:"phone"`
		Address         string `json:"address"`
		Avatar          string `json:"avatar"`
		Email           string `json:"email"`
		NewPassword     string `json:"newPassword"`
		CurrentPassword string `json:"currentPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid input"})
		return
	}

	ctx := c.Request.Context()
	users := h.DB.Users()
	update := bson.M{}

	if req.Name != "" {
		update["name"] = req.Name
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if req.Address != "" {
		update["address"] = req.Address
	}
	if req.Avatar != "" {
		update["avatar"] = req.Avatar
	}

	if req.NewPassword != "" {
		if errs := auth.ValidatePassword(req.NewPassword); len(errs) > 0 {
			c.JSON(400, gin.H{"error": strings.Join(errs, ", ")})
			return
		}
		if req.CurrentPassword != "" {
			var user models.User
			if err := users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
				c.JSON(404, gin.H{"error": "User not found"})
				return
			}
			if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
				c.JSON(400, gin.H{"error": "Current password is incorrect"})
				return
			}
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
		if err != nil {
			h.serverError(c, "profile: hash failed", err)
			return
		}
		update["password"] = string(hashed)
	}

	if req.Email != "" {
		count, err := users.CountDocuments(ctx, bson.M{"email": req.Email, "_id": bson.M{"$ne": userID}})
		if err != nil {
			h.serverError(c, "profile: email lookup failed", err)
			return
		}
		if count > 0 {
			c.JSON(409, gin.H{"error": "Email is already taken"})
			return
		}
		update["email"] = req.Email
	}

	update["updatedAt"] = time.Now()

	var user models.User
	err := users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		h.serverError(c, "profile: update failed", err)
		return
	}

	c.JSON(200, gin.H{"user": userResponse(user)})
}

// DeleteAccount removes the user and cascades to orders, favorites and the
// cart document.
func (h *Handler) DeleteAccount(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	filter := bson.M{"userId": userID}
	if _, err := h.DB.Orders().DeleteMany(ctx, filter); err != nil {
		h.serverError(c, "delete account: orders cleanup failed", err)
		return
	}
	if _, err := h.DB.Favorites().DeleteMany(ctx, filter); err != nil {
		h.serverError(c, "delete account: favorites cleanup failed", err)
		return
	}
	if _, err := h.DB.Carts().DeleteOne(ctx, filter); err != nil {
		h.serverError(c, "delete account: cart cleanup failed", err)
		return
	}

	res, err := h.DB.Users().DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		h.serverError(c, "delete account: user delete failed", err)
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	c.JSON(200, gin.H{"message": "Account deleted successfully"})
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(400, gin.H{"error": "Email is required"})
		return
	}

	// The response is the same whether or not the account exists.
	neutral := gin.H{"message": "If the email exists, a reset link has been sent"}

	ctx := c.Request.Context()
	users := h.DB.Users()

	var user models.User
	err := users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(200, neutral)
		return
	}
	if err != nil {
		h.serverError(c, "forgot password: lookup failed", err)
		return
	}

	resetToken := auth.NewOpaqueToken()
	_, err = users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"resetToken":        resetToken,
		"resetTokenExpires": time.Now().Add(time.Hour),
	}})
	if err != nil {
		h.serverError(c, "forgot password: token store failed", err)
		return
	}

	resetURL := h.BaseURL + "/reset-password?token=" + resetToken
	h.Mail.SendAsync(user.Email, "Скидання паролю", email.PasswordResetBody(user.Name, resetURL))

	c.JSON(200, neutral)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.NewPassword == "" {
		c.JSON(400, gin.H{"error": "Token and new password are required"})
		return
	}

	if errs := auth.ValidatePassword(req.NewPassword); len(errs) > 0 {
		c.JSON(400, gin.H{"error": strings.Join(errs, ", ")})
		return
	}

	ctx := c.Request.Context()
	users := h.DB.Users()

	var user models.User
	err := users.FindOne(ctx, bson.M{
		"resetToken":        req.Token,
		"resetTokenExpires": bson.M{"$gt": time.Now()},
	}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		c.JSON(400, gin.H{"error": "Invalid or expired token"})
		return
	}
	if err != nil {
		h.serverError(c, "reset password: lookup failed", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		h.serverError(c, "reset password: hash failed", err)
		return
	}

	_, err = users.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
		"$set":   bson.M{"password": string(hashed)},
		"$unset": bson.M{"resetToken": "", "resetTokenExpires": ""},
	})
	if err != nil {
		h.serverError(c, "reset password: update failed", err)
		return
	}

	c.JSON(200, gin.H{"message": "Password has been reset successfully"})
}
