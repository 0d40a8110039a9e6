package handlers

import (
	"errors"
	"net/http"

	"pizza-store/models"
	"pizza-store/store"

	"github.com/gin-gonic/gin"
)

type CreateItemRequest struct {
	ItemName    string  `json:"item_name" binding:"required"`
	TypeOfItem  string  `json:"type_of_item"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
	Ingredients string  `json:"ingredients"`
}

// AddMenuItem inserts a new item — manager only. Taken names are refused.
func AddMenuItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.Item{
		ItemName:    req.ItemName,
		TypeOfItem:  req.TypeOfItem,
		Price:       req.Price,
		Description: req.Description,
		Ingredients: req.Ingredients,
	}
	if err := gw.AddItem(item); err != nil {
		if errors.Is(err, store.ErrNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Item name already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

type UpdateItemRequest struct {
	ItemName    *string  `json:"item_name"`
	TypeOfItem  *string  `json:"type_of_item"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Ingredients *string  `json:"ingredients"`
}

// UpdateMenuItem updates one or more fields of an existing item. A rename is
// carried in "item_name" and pre-checked for collisions. Fields bind into
// typed values so a mistyped price is rejected instead of written.
func UpdateMenuItem(c *gin.Context) {
	name := c.Param("name")
	exists, err := gw.ItemExists(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up item"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.TypeOfItem != nil {
		updates["type_of_item"] = *req.TypeOfItem
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Ingredients != nil {
		updates["ingredients"] = *req.Ingredients
	}
	for field, value := range updates {
		if err := gw.SetItemField(name, field, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
			return
		}
	}

	if req.ItemName != nil {
		newName := *req.ItemName
		if newName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_name must be a non-empty string"})
			return
		}
		if err := gw.RenameItem(name, newName); err != nil {
			if errors.Is(err, store.ErrNameTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "Item name already taken"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename item"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item updated successfully"})
}

// UpdateUser lets a manager edit any user's fields, including login and
// role. Role changes targeting a current manager are refused.
func UpdateUser(c *gin.Context) {
	target := c.Param("login")
	exists, err := gw.UserExists(target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if raw, ok := req["role"]; ok {
		role, ok := models.ParseRole(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not a valid role"})
			return
		}
		if err := gw.SetRole(target, role); err != nil {
			if errors.Is(err, store.ErrManagerDemotion) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Cannot demote managers"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
			return
		}
	}

	for _, field := range []string{"favorite_items", "phone_num", "password", "login"} {
		value, ok := req[field]
		if !ok {
			continue
		}
		if err := gw.SetUserField(target, field, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		if field == "login" {
			target = value
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}
