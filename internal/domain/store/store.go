package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidCategoryType = errors.New("invalid store category type")

// CategoryType is the closed set of store directory tags.
type CategoryType string

const (
	CategoryFood     CategoryType = "FOOD"
	CategoryClothes  CategoryType = "CLOTHES"
	CategoryBuilding CategoryType = "BUILDING"
	CategoryHome     CategoryType = "HOME"
	CategoryPharmacy CategoryType = "PHARMACY"
	CategoryAuto     CategoryType = "AUTO"
)

func AllCategoryTypes() []CategoryType {
	return []CategoryType{
		CategoryFood, CategoryClothes, CategoryBuilding,
		CategoryHome, CategoryPharmacy, CategoryAuto,
	}
}

func ParseCategoryType(s string) (CategoryType, error) {
	ct := CategoryType(s)
	switch ct {
	case CategoryFood, CategoryClothes, CategoryBuilding,
		CategoryHome, CategoryPharmacy, CategoryAuto:
		return ct, nil
	}
	return "", ErrInvalidCategoryType
}

type Store struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Address      *string         `json:"address,omitempty"`
	Phone        *string         `json:"phone,omitempty"`
	Description  *string         `json:"description,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Rating       decimal.Decimal `json:"rating"`
	CategoryType CategoryType    `json:"category_type"`
}
