package cli

import (
	"errors"
	"strconv"

	"pizza-store/models"
	"pizza-store/store"
)

func (s *Session) viewMenu(models.UserRole) error {
	s.c.Print("BROWSE MENU")
	s.c.Print("-----------")
	s.c.Print("1. View All Items")
	s.c.Print("2. Filter Based On Type")
	s.c.Print("3. Filter Based On Price")
	s.c.Print("4. View All Items Sorted From Highest To Lowest Price")
	s.c.Print("5. View All Items Sorted From Lowest To Highest Price")
	s.c.Print(".....................................................")
	s.c.Print("6. Go Back")

	choice, err := s.c.ReadChoice()
	if err != nil {
		return err
	}

	var filter store.MenuFilter
	switch choice {
	case 1:
		// no filter
	case 2:
		t, err := s.c.PromptLine("Enter Type: ")
		if err != nil {
			return err
		}
		filter.Type = t
	case 3:
		price, err := s.c.PromptFloat("Enter Price: ")
		if err != nil {
			return err
		}
		filter.Price = &price
	case 4:
		filter.Sort = "desc"
	case 5:
		filter.Sort = "asc"
	case 6:
		return nil
	default:
		s.c.Print("Unrecognized choice!")
		return nil
	}

	items, err := s.gw.ListItems(filter)
	if err != nil {
		return err
	}
	s.c.Table(itemHeaders, itemRows(items))
	s.c.Printf("Total items found: %d\n", len(items))
	return nil
}

// updateMenu is the manager's item editor: change one field of an existing
// item, or add a new one. Name collisions are refused on both paths.
func (s *Session) updateMenu(models.UserRole) error {
	s.c.Print("UPDATE FOOD ITEM INFORMATION")
	s.c.Print("----------------------------")
	s.c.Print("1. Update item")
	s.c.Print("2. Add new item")
	s.c.Print(".....................................................")
	s.c.Print("3. Go Back")

	choice, err := s.c.ReadChoice()
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		return s.updateItem()
	case 2:
		return s.addItem()
	case 3:
		return nil
	default:
		s.c.Print("Unrecognized choice!")
		return nil
	}
}

func (s *Session) updateItem() error {
	name, err := s.c.PromptLine("Enter the name of the item to update: ")
	if err != nil {
		return err
	}
	exists, err := s.gw.ItemExists(name)
	if err != nil {
		return err
	}
	if !exists {
		s.c.Print("Item not found! Returning to menu.")
		return nil
	}

	s.c.Print("What would you like to update?")
	s.c.Print("1. Price")
	s.c.Print("2. Type")
	s.c.Print("3. Description")
	s.c.Print("4. Ingredients")
	s.c.Print("5. Name")
	choice, err := s.c.PromptInt("Enter choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		price, err := s.c.PromptFloat("Enter new price: ")
		if err != nil {
			return err
		}
		if err := s.gw.SetItemField(name, "price", price); err != nil {
			return err
		}
	case 2:
		value, err := s.c.PromptLine("Enter new type: ")
		if err != nil {
			return err
		}
		if err := s.gw.SetItemField(name, "type_of_item", value); err != nil {
			return err
		}
	case 3:
		value, err := s.c.PromptLine("Enter new description: ")
		if err != nil {
			return err
		}
		if err := s.gw.SetItemField(name, "description", value); err != nil {
			return err
		}
	case 4:
		value, err := s.c.PromptLine("Enter new ingredients: ")
		if err != nil {
			return err
		}
		if err := s.gw.SetItemField(name, "ingredients", value); err != nil {
			return err
		}
	case 5:
		newName, err := s.c.PromptLine("Enter new name: ")
		if err != nil {
			return err
		}
		if err := s.gw.RenameItem(name, newName); err != nil {
			if errors.Is(err, store.ErrNameTaken) {
				s.c.Print("Item name already taken! Returning to menu.")
				return nil
			}
			return err
		}
	default:
		s.c.Print("Invalid choice! Returning to menu.")
		return nil
	}

	s.c.Print("Item updated successfully!")
	return nil
}

func (s *Session) addItem() error {
	name, err := s.c.PromptLine("Enter Item Name: ")
	if err != nil {
		return err
	}
	taken, err := s.gw.ItemExists(name)
	if err != nil {
		return err
	}
	if taken {
		s.c.Print("Item already exists!")
		return nil
	}

	ingredients, err := s.c.PromptLine("Enter Ingredients: ")
	if err != nil {
		return err
	}
	typeOfItem, err := s.c.PromptLine("Enter Type Of Item: ")
	if err != nil {
		return err
	}
	price, err := s.c.PromptFloat("Enter Price: ")
	if err != nil {
		return err
	}
	description, err := s.c.PromptLine("Enter Description: ")
	if err != nil {
		return err
	}

	item := models.Item{
		ItemName:    name,
		TypeOfItem:  typeOfItem,
		Price:       price,
		Description: description,
		Ingredients: ingredients,
	}
	if err := s.gw.AddItem(item); err != nil {
		if errors.Is(err, store.ErrNameTaken) {
			s.c.Print("Item already exists!")
			return nil
		}
		return err
	}
	s.c.Print("New item added successfully!")
	return nil
}

var itemHeaders = []string{"Item", "Type", "Price", "Description", "Ingredients"}

func itemRows(items []models.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ItemName,
			it.TypeOfItem,
			strconv.FormatFloat(it.Price, 'f', 2, 64),
			it.Description,
			it.Ingredients,
		})
	}
	return rows
}
