package cli

import (
	"errors"
	"strconv"

	"pizza-store/models"
	"pizza-store/store"
)

// placeOrder runs the interactive order builder: a validated store, then an
// item/quantity loop ended by the "0" sentinel, then one transactional
// placement. An abandoned or empty cart writes nothing.
func (s *Session) placeOrder(models.UserRole) error {
	storeID, err := s.c.PromptInt("Enter Store ID: ")
	if err != nil {
		return err
	}
	exists, err := s.gw.StoreExists(uint(storeID))
	if err != nil {
		return err
	}
	if !exists {
		s.c.Print("Store ID does not exist! Returning to menu.")
		return nil
	}

	var lines []store.OrderLine
	for {
		name, err := s.c.PromptLine("Enter Item Name (or type '0' to finish): ")
		if err != nil {
			return err
		}
		if name == "0" {
			break
		}
		if _, err := s.gw.GetItem(name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				s.c.Print("Item does not exist! Try again.")
				continue
			}
			return err
		}
		quantity, err := s.c.PromptQuantity("Enter Quantity: ")
		if err != nil {
			return err
		}
		lines = append(lines, store.OrderLine{ItemName: name, Quantity: quantity})
	}

	if len(lines) == 0 {
		s.c.Print("No items selected. Order canceled.")
		return nil
	}

	order, err := s.gw.PlaceOrder(s.login, uint(storeID), lines)
	if err != nil {
		return err
	}
	s.c.Printf("Order placed successfully! Total Price: $%.2f\n", order.TotalPrice)
	return nil
}

func (s *Session) viewAllOrders(role models.UserRole) error {
	return s.printOrderHistory(role, 0)
}

func (s *Session) viewRecentOrders(role models.UserRole) error {
	return s.printOrderHistory(role, 5)
}

// printOrderHistory scopes customers to their own orders; drivers and
// managers name any login.
func (s *Session) printOrderHistory(role models.UserRole, limit int) error {
	target := s.login
	if role != models.RoleCustomer {
		var err error
		target, err = s.c.PromptLine("Enter login of user whose order history you want to see: ")
		if err != nil {
			return err
		}
	}

	orders, err := s.gw.OrdersFor(target, limit)
	if err != nil {
		return err
	}
	s.c.Table(orderHeaders, orderRows(orders))
	if len(orders) == 0 {
		s.c.Print("No orders found.")
	}
	return nil
}

// viewOrderInfo shows one order's row and its item rows. Customers are
// checked for ownership before anything is disclosed; drivers and managers
// first name a login with at least one order, then an order ID under it.
func (s *Session) viewOrderInfo(role models.UserRole) error {
	target := s.login
	if role != models.RoleCustomer {
		var err error
		target, err = s.c.PromptLine("Enter the login of the person whose food order you want to see: ")
		if err != nil {
			return err
		}
		count, err := s.gw.OrderCountFor(target)
		if err != nil {
			return err
		}
		if count == 0 {
			s.c.Print("Orders under specified login not found! Returning to menu.")
			return nil
		}
	}

	orderID, err := s.c.PromptInt("Enter Order ID: ")
	if err != nil {
		return err
	}
	order, err := s.gw.GetOrderFor(uint(orderID), target)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.c.Print("Order ID not found! Returning to menu.")
			return nil
		}
		return err
	}

	s.c.Table(orderHeaders, orderRows([]models.FoodOrder{*order}))
	s.c.Table(orderItemHeaders, orderItemRows(order.Items))
	return nil
}

func (s *Session) viewStores(models.UserRole) error {
	stores, err := s.gw.ListStores()
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(stores))
	for _, st := range stores {
		open := "no"
		if st.IsOpen {
			open = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(st.StoreID), 10),
			st.Address,
			st.City,
			st.State,
			open,
			strconv.FormatFloat(st.ReviewScore, 'f', 1, 64),
		})
	}
	s.c.Table([]string{"Store ID", "Address", "City", "State", "Open", "Review Score"}, rows)
	return nil
}

// updateOrderStatus is open to drivers and managers. The status is display
// text and goes in verbatim.
func (s *Session) updateOrderStatus(models.UserRole) error {
	orderID, err := s.c.PromptInt("Enter Order ID: ")
	if err != nil {
		return err
	}
	exists, err := s.gw.OrderExists(uint(orderID))
	if err != nil {
		return err
	}
	if !exists {
		s.c.Print("OrderID not found! Returning to menu.")
		return nil
	}
	status, err := s.c.PromptLine("Enter New Order Status: ")
	if err != nil {
		return err
	}
	if err := s.gw.SetOrderStatus(uint(orderID), status); err != nil {
		return err
	}
	s.c.Print("Status Updated Successfully!")
	return nil
}

var (
	orderHeaders     = []string{"Order ID", "Login", "Store ID", "Total Price", "Timestamp", "Status"}
	orderItemHeaders = []string{"Order ID", "Item", "Quantity"}
)

func orderRows(orders []models.FoodOrder) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(o.OrderID), 10),
			o.Login,
			strconv.FormatUint(uint64(o.StoreID), 10),
			strconv.FormatFloat(o.TotalPrice, 'f', 2, 64),
			o.OrderTimestamp.Format("2006-01-02 15:04:05"),
			o.OrderStatus,
		})
	}
	return rows
}

func orderItemRows(items []models.ItemInOrder) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(it.OrderID), 10),
			it.ItemName,
			strconv.Itoa(it.Quantity),
		})
	}
	return rows
}
