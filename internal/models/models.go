package models

import (
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	Name         string    `gorm:"not null"                 json:"name"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null"                 json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Session struct {
	ID        uint      `gorm:"primaryKey"          json:"id"`
	Token     string    `gorm:"unique;not null"     json:"token"`
	UserID    uint      `gorm:"index;not null"      json:"user_id"`
	ExpiresAt time.Time `gorm:"not null"            json:"expires_at"`
	Revoked   bool      `gorm:"default:false"       json:"revoked"`
}

const (
	CategorySoap   = "soap"
	CategoryCandle = "candle"
)

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string    `gorm:"unique;not null"          json:"slug"`
	Name        string    `gorm:"not null"                 json:"name"`
	ShortDesc   string    `gorm:"not null"                 json:"short_desc"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Category    string    `gorm:"index;not null"           json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Order struct {
	ID              string      `gorm:"primaryKey"      json:"id"`
	Email           string      `gorm:"index;not null"  json:"email"`
	StripeSessionID string      `gorm:"unique"          json:"stripe_session_id"`
	Total           float64     `gorm:"not null"        json:"total"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"                  json:"id"`
	OrderID   string  `gorm:"index;not null"              json:"order_id"`
	ProductID uint    `gorm:"not null"                    json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity>0"  json:"quantity"`
	Price     float64 `gorm:"not null"                    json:"price"`
	Product   Product `gorm:"foreignKey:ProductID"        json:"product"`
}

// Settings tables hold admin-configured key/value pairs. Values are opaque
// strings, conventionally JSON-encoded, but bare strings like "true" occur
// and consumers must tolerate them.

type AnimationSetting struct {
	ID    uint   `gorm:"primaryKey"      json:"id"`
	Key   string `gorm:"unique;not null" json:"key"`
	Value string `gorm:"not null"        json:"value"`
}

type CarouselSetting struct {
	ID    uint   `gorm:"primaryKey"      json:"id"`
	Key   string `gorm:"unique;not null" json:"key"`
	Value string `gorm:"not null"        json:"value"`
}

type DesignSetting struct {
	ID    uint   `gorm:"primaryKey"      json:"id"`
	Key   string `gorm:"unique;not null" json:"key"`
	Value string `gorm:"not null"        json:"value"`
}

type CarouselSlide struct {
	ID        uint   `gorm:"primaryKey"     json:"id"`
	Title     string `gorm:"not null"       json:"title"`
	Subtitle  string `json:"subtitle"`
	ImageURL  string `gorm:"not null"       json:"image_url"`
	LinkURL   string `json:"link_url"`
	SortOrder int    `gorm:"index"          json:"sort_order"`
	Enabled   bool   `gorm:"default:true"   json:"enabled"`
}

type HomepageContent struct {
	ID        uint   `gorm:"primaryKey"     json:"id"`
	Section   string `gorm:"index;not null" json:"section"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Metadata  string `json:"-"`
	SortOrder int    `gorm:"index"          json:"sort_order"`
	Enabled   bool   `gorm:"default:true"   json:"enabled"`
}

type StaticContent struct {
	ID        uint      `gorm:"primaryKey"      json:"id"`
	Key       string    `gorm:"unique;not null" json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Enabled   bool      `gorm:"default:true"    json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}
