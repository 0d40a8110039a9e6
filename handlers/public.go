package handlers

import (
	"net/http"
	"strconv"

	"pizza-store/store"

	"github.com/gin-gonic/gin"
)

// GetMenu lists menu items, with the same filter and sort modes the console
// offers: exact type, exact price, price ascending or descending.
func GetMenu(c *gin.Context) {
	var filter store.MenuFilter
	filter.Type = c.Query("type")
	if raw := c.Query("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price filter"})
			return
		}
		filter.Price = &price
	}
	switch sort := c.Query("sort"); sort {
	case "", "asc", "desc":
		filter.Sort = sort
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort must be asc or desc"})
		return
	}

	items, err := gw.ListItems(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// ListStores returns every store with location, review score, and open flag.
func ListStores(c *gin.Context) {
	stores, err := gw.ListStores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stores"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(stores), "stores": stores})
}
