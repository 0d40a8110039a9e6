package store

import (
	"time"

	"pizza-store/models"

	"gorm.io/gorm"
)

// OrderLine is one requested item in an order being placed. Prices are
// resolved inside the placement transaction, not trusted from the caller.
type OrderLine struct {
	ItemName string
	Quantity int
}

// PlaceOrder writes the FoodOrder row and its ItemInOrder rows in a single
// transaction. The order ID is issued by the store's identity column, so
// interleaved placements cannot mint duplicates. Nothing is written when the
// store is unknown, any item is unknown, any quantity is non-positive, or no
// lines were given.
func (g *Gateway) PlaceOrder(login string, storeID uint, lines []OrderLine) (*models.FoodOrder, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var order models.FoodOrder
	err := g.db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.Where("store_id = ?", storeID).First(&store).Error; err != nil {
			return err
		}

		var total float64
		merged := make(map[string]int)
		names := make([]string, 0, len(lines))
		for _, line := range lines {
			if line.Quantity <= 0 {
				return ErrBadQuantity
			}
			var item models.Item
			if err := tx.Where("item_name = ?", line.ItemName).First(&item).Error; err != nil {
				return err
			}
			total += item.Price * float64(line.Quantity)
			if _, seen := merged[line.ItemName]; !seen {
				names = append(names, line.ItemName)
			}
			merged[line.ItemName] += line.Quantity
		}

		// one ItemInOrder row per distinct item
		items := make([]models.ItemInOrder, 0, len(names))
		for _, name := range names {
			items = append(items, models.ItemInOrder{ItemName: name, Quantity: merged[name]})
		}

		order = models.FoodOrder{
			Login:          login,
			StoreID:        storeID,
			TotalPrice:     total,
			OrderTimestamp: time.Now(),
			OrderStatus:    models.StatusIncomplete,
			Items:          items,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrdersFor returns a login's orders newest first. A positive limit caps the
// result (the recent-orders view passes 5).
func (g *Gateway) OrdersFor(login string, limit int) ([]models.FoodOrder, error) {
	query := g.db.Where("login = ?", login).Order("order_timestamp desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var orders []models.FoodOrder
	err := query.Find(&orders).Error
	return orders, err
}

func (g *Gateway) OrderCountFor(login string) (int64, error) {
	var n int64
	err := g.db.Model(&models.FoodOrder{}).Where("login = ?", login).Count(&n).Error
	return n, err
}

func (g *Gateway) OrderExists(id uint) (bool, error) {
	var n int64
	err := g.db.Model(&models.FoodOrder{}).Where("order_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (g *Gateway) GetOrder(id uint) (*models.FoodOrder, error) {
	var order models.FoodOrder
	if err := g.db.Preload("Items").Where("order_id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderFor returns the order only when it belongs to login. The ownership
// predicate is part of the query, so a customer can never be shown another
// login's order.
func (g *Gateway) GetOrderFor(id uint, login string) (*models.FoodOrder, error) {
	var order models.FoodOrder
	err := g.db.Preload("Items").
		Where("order_id = ? AND login = ?", id, login).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetOrderStatus applies the new status verbatim. Status is display text;
// there is no enumeration to check against.
func (g *Gateway) SetOrderStatus(id uint, status string) error {
	res := g.db.Model(&models.FoodOrder{}).Where("order_id = ?", id).Update("order_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
