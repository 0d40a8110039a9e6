package store

import (
	"errors"
	"strings"
	"testing"

	"pizza-store/config"
	"pizza-store/models"
)

func testGateway(t *testing.T) *Gateway {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := config.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return New(db)
}

func seed(t *testing.T, g *Gateway) {
	t.Helper()
	if err := g.db.Create(&models.Store{StoreID: 1, Address: "123 Main St", City: "Riverside", State: "CA", IsOpen: true, ReviewScore: 4.2}).Error; err != nil {
		t.Fatalf("seed store: %v", err)
	}
	items := []models.Item{
		{ItemName: "Margherita", TypeOfItem: "entree", Price: 10.00, Ingredients: "tomato, mozzarella, basil"},
		{ItemName: "Pepperoni", TypeOfItem: "entree", Price: 12.50, Ingredients: "tomato, mozzarella, pepperoni"},
		{ItemName: "Cola", TypeOfItem: "drinks", Price: 2.00},
	}
	for _, item := range items {
		if err := g.db.Create(&item).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
	if err := g.CreateUser("alice", "pw", "555-0100"); err != nil {
		t.Fatalf("seed alice: %v", err)
	}
	if err := g.CreateUser("bob", "pw", "555-0101"); err != nil {
		t.Fatalf("seed bob: %v", err)
	}
}

func countRows(t *testing.T, g *Gateway, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := g.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestCreateUserDefaults(t *testing.T) {
	g := testGateway(t)
	if err := g.CreateUser("dave", "secret", "555-0199"); err != nil {
		t.Fatalf("create: %v", err)
	}
	user, err := g.GetUser("dave")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Role != models.RoleCustomer {
		t.Fatalf("expected customer role, got %s", user.Role)
	}
	if user.FavoriteItems != "" {
		t.Fatalf("expected empty favorite items, got %q", user.FavoriteItems)
	}
}

func TestCreateUserDuplicateLogin(t *testing.T) {
	g := testGateway(t)
	seed(t, g)
	if err := g.CreateUser("alice", "other", "555-0000"); err == nil {
		t.Fatal("expected duplicate login to fail")
	}
}

func TestAuthenticate(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	user, err := g.Authenticate("alice", "pw")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Login != "alice" {
		t.Fatalf("expected alice, got %s", user.Login)
	}

	if _, err := g.Authenticate("alice", "wrong"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong password, got %v", err)
	}
	if _, err := g.Authenticate("nobody", "pw"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown login, got %v", err)
	}
}

func TestSetUserFieldGuards(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	if err := g.SetUserField("alice", "favorite_items", "Margherita"); err != nil {
		t.Fatalf("update: %v", err)
	}
	user, _ := g.GetUser("alice")
	if user.FavoriteItems != "Margherita" {
		t.Fatalf("favorite items not applied: %q", user.FavoriteItems)
	}

	if err := g.SetUserField("alice", "role", "manager"); !errors.Is(err, ErrFieldNotAllowed) {
		t.Fatalf("expected ErrFieldNotAllowed for role column, got %v", err)
	}
	if err := g.SetUserField("nobody", "phone_num", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown login, got %v", err)
	}
}

func TestSetRole(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	if err := g.SetRole("bob", models.RoleDriver); err != nil {
		t.Fatalf("promote bob: %v", err)
	}
	role, err := g.RoleOf("bob")
	if err != nil || role != models.RoleDriver {
		t.Fatalf("expected driver, got %s (%v)", role, err)
	}

	if err := g.SetRole("alice", "wizard"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestSetRoleNeverDemotesManagers(t *testing.T) {
	g := testGateway(t)
	seed(t, g)
	if err := g.SetRole("alice", models.RoleManager); err != nil {
		t.Fatalf("promote alice: %v", err)
	}

	for _, role := range []models.UserRole{models.RoleCustomer, models.RoleDriver, models.RoleManager} {
		if err := g.SetRole("alice", role); !errors.Is(err, ErrManagerDemotion) {
			t.Fatalf("expected ErrManagerDemotion for %s, got %v", role, err)
		}
	}
	role, _ := g.RoleOf("alice")
	if role != models.RoleManager {
		t.Fatalf("alice's role changed to %s", role)
	}
}

func TestPlaceOrder(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	order, err := g.PlaceOrder("alice", 1, []OrderLine{
		{ItemName: "Margherita", Quantity: 2},
		{ItemName: "Cola", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if order.OrderID == 0 {
		t.Fatal("order ID was not issued")
	}
	if order.TotalPrice != 22.00 {
		t.Fatalf("expected total 22.00, got %v", order.TotalPrice)
	}
	if order.OrderStatus != models.StatusIncomplete {
		t.Fatalf("expected incomplete status, got %q", order.OrderStatus)
	}
	if n := countRows(t, g, &models.FoodOrder{}); n != 1 {
		t.Fatalf("expected 1 order row, got %d", n)
	}
	if n := countRows(t, g, &models.ItemInOrder{}); n != 2 {
		t.Fatalf("expected 2 item rows, got %d", n)
	}
}

func TestPlaceOrderMergesDuplicateItems(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	order, err := g.PlaceOrder("alice", 1, []OrderLine{
		{ItemName: "Cola", Quantity: 1},
		{ItemName: "Cola", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 distinct item row, got %d", len(order.Items))
	}
	if order.Items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", order.Items[0].Quantity)
	}
	if order.TotalPrice != 6.00 {
		t.Fatalf("expected total 6.00, got %v", order.TotalPrice)
	}
}

func TestPlaceOrderWritesNothingOnFailure(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	cases := []struct {
		name    string
		storeID uint
		lines   []OrderLine
		want    error
	}{
		{"unknown store", 99, []OrderLine{{ItemName: "Cola", Quantity: 1}}, ErrNotFound},
		{"empty cart", 1, nil, ErrEmptyOrder},
		{"unknown item", 1, []OrderLine{{ItemName: "Sushi", Quantity: 1}}, ErrNotFound},
		{"bad quantity", 1, []OrderLine{{ItemName: "Cola", Quantity: 0}}, ErrBadQuantity},
	}
	for _, tc := range cases {
		if _, err := g.PlaceOrder("alice", tc.storeID, tc.lines); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if n := countRows(t, g, &models.FoodOrder{}); n != 0 {
		t.Fatalf("expected zero order rows, got %d", n)
	}
	if n := countRows(t, g, &models.ItemInOrder{}); n != 0 {
		t.Fatalf("expected zero item rows, got %d", n)
	}
}

// Interleaved placements from two sessions must never mint the same order
// ID; the identity column issues them, not a max+1 read.
func TestInterleavedOrderIDsAreUnique(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	seen := make(map[uint]bool)
	logins := []string{"alice", "bob"}
	for i := 0; i < 10; i++ {
		order, err := g.PlaceOrder(logins[i%2], 1, []OrderLine{{ItemName: "Cola", Quantity: 1}})
		if err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
		if seen[order.OrderID] {
			t.Fatalf("duplicate order ID %d", order.OrderID)
		}
		seen[order.OrderID] = true
	}
}

func TestOrderHistoryScoping(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	for i := 0; i < 6; i++ {
		if _, err := g.PlaceOrder("alice", 1, []OrderLine{{ItemName: "Cola", Quantity: 1}}); err != nil {
			t.Fatalf("place: %v", err)
		}
	}
	if _, err := g.PlaceOrder("bob", 1, []OrderLine{{ItemName: "Cola", Quantity: 1}}); err != nil {
		t.Fatalf("place: %v", err)
	}

	orders, err := g.OrdersFor("alice", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(orders) != 6 {
		t.Fatalf("expected 6 orders, got %d", len(orders))
	}
	for _, o := range orders {
		if o.Login != "alice" {
			t.Fatalf("alice's history contains %s's order %d", o.Login, o.OrderID)
		}
	}

	recent, err := g.OrdersFor("alice", 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent orders, got %d", len(recent))
	}
}

func TestGetOrderForEnforcesOwnership(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	order, err := g.PlaceOrder("alice", 1, []OrderLine{{ItemName: "Margherita", Quantity: 2}})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	got, err := g.GetOrderFor(order.OrderID, "alice")
	if err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ItemName != "Margherita" {
		t.Fatalf("unexpected items: %+v", got.Items)
	}

	if _, err := g.GetOrderFor(order.OrderID, "bob"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner, got %v", err)
	}
}

func TestSetOrderStatus(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	order, err := g.PlaceOrder("alice", 1, []OrderLine{{ItemName: "Cola", Quantity: 1}})
	if err != nil {
		t.Fatalf("place: %v", err)
	}

	if err := g.SetOrderStatus(order.OrderID, "out for delivery"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	got, _ := g.GetOrder(order.OrderID)
	if got.OrderStatus != "out for delivery" {
		t.Fatalf("status not applied: %q", got.OrderStatus)
	}

	if err := g.SetOrderStatus(9999, "lost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMenuFilters(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	drinks, err := g.ListItems(MenuFilter{Type: "drinks"})
	if err != nil {
		t.Fatalf("filter type: %v", err)
	}
	if len(drinks) != 1 || drinks[0].ItemName != "Cola" {
		t.Fatalf("unexpected drinks: %+v", drinks)
	}

	price := 10.00
	exact, err := g.ListItems(MenuFilter{Price: &price})
	if err != nil {
		t.Fatalf("filter price: %v", err)
	}
	if len(exact) != 1 || exact[0].ItemName != "Margherita" {
		t.Fatalf("unexpected price match: %+v", exact)
	}

	desc, err := g.ListItems(MenuFilter{Sort: "desc"})
	if err != nil {
		t.Fatalf("sort: %v", err)
	}
	if len(desc) != 3 || desc[0].ItemName != "Pepperoni" || desc[2].ItemName != "Cola" {
		t.Fatalf("unexpected desc order: %+v", desc)
	}
}

func TestAddItemRefusesTakenName(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	err := g.AddItem(models.Item{ItemName: "Cola", Price: 3.00})
	if !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
	item, _ := g.GetItem("Cola")
	if item.Price != 2.00 {
		t.Fatalf("existing item mutated: %v", item.Price)
	}
}

func TestRenameItemRefusesTakenName(t *testing.T) {
	g := testGateway(t)
	seed(t, g)

	if err := g.RenameItem("Cola", "Pepperoni"); !errors.Is(err, ErrNameTaken) {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}
	if exists, _ := g.ItemExists("Cola"); !exists {
		t.Fatal("original item lost after refused rename")
	}

	if err := g.RenameItem("Cola", "Lemonade"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if exists, _ := g.ItemExists("Lemonade"); !exists {
		t.Fatal("renamed item missing")
	}
}
