package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID          string           `gorm:"type:varchar(64);primary_key"`
	CallerID    string           `gorm:"type:varchar(64);not null;index"`
	FullName    string           `gorm:"type:varchar(255);not null"`
	Email       string           `gorm:"type:varchar(255);not null"`
	AddressLine string           `gorm:"type:varchar(255);not null"`
	City        string           `gorm:"type:varchar(128);not null"`
	PostalCode  string           `gorm:"type:varchar(32);not null"`
	Subtotal    decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	PlacedAt    time.Time        `gorm:"not null;index"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Product name and price are snapshots taken at checkout time.
type OrderItemModel struct {
	ID          uint            `gorm:"primary_key;autoIncrement"`
	OrderID     string          `gorm:"type:varchar(64);not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   string          `gorm:"type:varchar(64);not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
