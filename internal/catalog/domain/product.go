package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed storefront category tags.
type Category string

const (
	CategoryAll     Category = "all"
	CategoryFish    Category = "fish"
	CategoryMeat    Category = "meat"
	CategoryEggs    Category = "eggs"
	CategorySeafood Category = "seafood"
)

// Categories lists the tags in display order, CategoryAll first.
var Categories = []Category{
	CategoryAll,
	CategoryFish,
	CategoryMeat,
	CategoryEggs,
	CategorySeafood,
}

func (c Category) String() string {
	return string(c)
}

// Product is an immutable catalog entry. Products are created once from the
// seed migrations and never mutated afterwards.
type Product struct {
	ID        int64
	Name      string
	Category  Category
	Price     decimal.Decimal
	ImageURL  string
	CreatedAt time.Time
}
