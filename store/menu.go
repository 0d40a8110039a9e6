package store

import (
	"pizza-store/models"
)

// MenuFilter selects one of the five browse modes: exact type match, exact
// price match, and/or a price sort. Zero value lists everything.
type MenuFilter struct {
	Type  string
	Price *float64
	Sort  string // "asc", "desc" or empty
}

var itemFields = map[string]bool{
	"price":        true,
	"type_of_item": true,
	"description":  true,
	"ingredients":  true,
}

func (g *Gateway) ListItems(f MenuFilter) ([]models.Item, error) {
	query := g.db.Model(&models.Item{})
	if f.Type != "" {
		query = query.Where("type_of_item = ?", f.Type)
	}
	if f.Price != nil {
		query = query.Where("price = ?", *f.Price)
	}
	switch f.Sort {
	case "asc":
		query = query.Order("price asc")
	case "desc":
		query = query.Order("price desc")
	}

	var items []models.Item
	err := query.Find(&items).Error
	return items, err
}

func (g *Gateway) GetItem(name string) (*models.Item, error) {
	var item models.Item
	if err := g.db.Where("item_name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (g *Gateway) ItemExists(name string) (bool, error) {
	var n int64
	err := g.db.Model(&models.Item{}).Where("item_name = ?", name).Count(&n).Error
	return n > 0, err
}

// AddItem inserts a new menu item after confirming the name is free.
func (g *Gateway) AddItem(item models.Item) error {
	taken, err := g.ItemExists(item.ItemName)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}
	return g.db.Create(&item).Error
}

// SetItemField applies a single-column update to the named item. Renames go
// through RenameItem so the collision check cannot be skipped.
func (g *Gateway) SetItemField(name, column string, value interface{}) error {
	if !itemFields[column] {
		return ErrFieldNotAllowed
	}
	res := g.db.Model(&models.Item{}).Where("item_name = ?", name).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RenameItem changes an item's name, refusing names already on the menu.
func (g *Gateway) RenameItem(oldName, newName string) error {
	taken, err := g.ItemExists(newName)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}
	res := g.db.Model(&models.Item{}).Where("item_name = ?", oldName).Update("item_name", newName)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *Gateway) ListStores() ([]models.Store, error) {
	var stores []models.Store
	err := g.db.Find(&stores).Error
	return stores, err
}

func (g *Gateway) StoreExists(id uint) (bool, error) {
	var n int64
	err := g.db.Model(&models.Store{}).Where("store_id = ?", id).Count(&n).Error
	return n > 0, err
}
