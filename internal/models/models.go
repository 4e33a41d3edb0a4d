package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email                    string             `bson:"email" json:"email"`
	Password                 string             `bson:"password" json:"-"`
	Name                     string             `bson:"name" json:"name"`
	Role                     string             `bson:"role" json:"role"`
	Avatar                   string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Phone                    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address                  string             `bson:"address,omitempty" json:"address,omitempty"`
	EmailVerified            bool               `bson:"emailVerified" json:"emailVerified"`
	VerificationToken        string             `bson:"verificationToken,omitempty" json:"-"`
	VerificationTokenExpires time.Time          `bson:"verificationTokenExpires,omitempty" json:"-"`
	ResetToken               string             `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpires        time.Time          `bson:"resetTokenExpires,omitempty" json:"-"`
	CreatedAt                time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt                time.Time          `bson:"updatedAt,omitempty" json:"-"`
	LastLogin                time.Time          `bson:"lastLogin,omitempty" json:"-"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          LocalizedText      `bson:"name" json:"name"`
	Description   LocalizedText      `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Image         string             `bson:"image" json:"image"`
	Category      LocalizedText      `bson:"category" json:"category"`
	Type          LocalizedText      `bson:"type" json:"type"`
	Weight        LocalizedText      `bson:"weight" json:"weight"`
	Origin        LocalizedText      `bson:"origin" json:"origin"`
	IsNew         bool               `bson:"isNew" json:"isNew"`
	IsOnSale      bool               `bson:"isOnSale" json:"isOnSale"`
	InStock       bool               `bson:"inStock" json:"inStock"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"-"`
}

type News struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       LocalizedText      `bson:"title" json:"title"`
	Excerpt     LocalizedText      `bson:"excerpt" json:"excerpt"`
	Content     LocalizedText      `bson:"content" json:"content"`
	Author      string             `bson:"author" json:"author"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Featured    bool               `bson:"featured" json:"featured"`
	ReadTime    int                `bson:"readTime" json:"readTime"`
	PublishedAt time.Time          `bson:"publishedAt" json:"publishedAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"-"`
}

// CartItem is the line-item snapshot kept both in the browser cart and in the
// per-user cart document. The id is the product id as a string; price and the
// display fields are frozen at add time.
type CartItem struct {
	ID       string  `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Image    string  `bson:"image" json:"image"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Type     string  `bson:"type" json:"type"`
	Weight   string  `bson:"weight" json:"weight"`
}

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"-"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"-"`
}

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is immutable once created; status updates happen outside this service.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	OrderNumber     string             `bson:"orderNumber" json:"orderNumber"`
	Items           []CartItem         `bson:"items" json:"items"`
	Total           float64            `bson:"total" json:"total"`
	Status          string             `bson:"status" json:"status"`
	DeliveryAddress string             `bson:"deliveryAddress" json:"deliveryAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Message     string             `bson:"message" json:"message"`
	Type        string             `bson:"type" json:"type"`
	Read        bool               `bson:"read" json:"read"`
	RelatedID   string             `bson:"relatedId,omitempty" json:"relatedId,omitempty"`
	RelatedType string             `bson:"relatedType,omitempty" json:"relatedType,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type AdminLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AdminID    string             `bson:"adminId" json:"adminId"`
	AdminEmail string             `bson:"adminEmail" json:"adminEmail"`
	Action     string             `bson:"action" json:"action"`
	Details    string             `bson:"details" json:"details"`
	IP         string             `bson:"ip" json:"ip"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}
