package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaloyan-drinchev/sink-shop/models"
)

func testProduct(id, serial, category string) models.Product {
	return models.Product{
		ID:            id,
		SerialNumber:  serial,
		Category:      category,
		Title:         models.Translation{EN: "Sink " + serial, BG: "Мивка " + serial},
		PriceEur:      143,
		PriceBgn:      280,
		StockQuantity: 5,
		IsActive:      true,
	}
}

func TestMemoryStoreProducts(t *testing.T) {
	s := NewMemoryStore([]models.Product{
		testProduct("p1", "b101", models.CategoryRiverStone),
		testProduct("p2", "g201", models.CategoryMarble),
	})

	all, err := s.ListProducts()
	require.NoError(t, err)
	require.Len(t, all, 2)

	marble, err := s.ListProductsByCategory(models.CategoryMarble)
	require.NoError(t, err)
	require.Len(t, marble, 1)
	require.Equal(t, "p2", marble[0].ID)

	p, err := s.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, "b101", p.SerialNumber)

	bySerial, err := s.GetProductBySerial("g201")
	require.NoError(t, err)
	require.Equal(t, "p2", bySerial.ID)

	_, err = s.GetProduct("missing")
	require.ErrorIs(t, err, ErrNotFound)

	p.PriceEur = 200
	require.NoError(t, s.UpdateProduct(p))
	updated, err := s.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, 200.0, updated.PriceEur)

	require.NoError(t, s.DeleteProduct("p1"))
	_, err = s.GetProduct("p1")
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.DeleteProduct("p1"), ErrNotFound)
}

func TestMemoryStoreListsOnlyActiveProducts(t *testing.T) {
	inactive := testProduct("p2", "c102", models.CategoryRiverStone)
	inactive.IsActive = false

	s := NewMemoryStore([]models.Product{
		testProduct("p1", "b101", models.CategoryRiverStone),
		inactive,
	})

	all, err := s.ListProducts()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "p1", all[0].ID)

	// Inactive products stay reachable by ID for the admin panel.
	p, err := s.GetProduct("p2")
	require.NoError(t, err)
	require.False(t, p.IsActive)
}

func TestMemoryStoreAdjustStock(t *testing.T) {
	s := NewMemoryStore([]models.Product{testProduct("p1", "b101", models.CategoryRiverStone)})

	require.NoError(t, s.AdjustStock("p1", 2))

	p, err := s.GetProduct("p1")
	require.NoError(t, err)
	require.Equal(t, 3, p.StockQuantity)
	require.Equal(t, 2, p.SalesCount)

	require.ErrorIs(t, s.AdjustStock("missing", 1), ErrNotFound)
}

func TestMemoryStoreUsers(t *testing.T) {
	s := NewMemoryStore(nil)

	u := &models.User{Email: "ivan@example.com", Password: "hashed", FirstName: "Ivan"}
	require.NoError(t, s.CreateUser(u))
	require.NotEmpty(t, u.ID)
	require.Equal(t, models.RoleUser, u.Role)

	dup := &models.User{Email: "ivan@example.com", Password: "other"}
	require.ErrorIs(t, s.CreateUser(dup), ErrEmailTaken)

	byEmail, err := s.GetUserByEmail("ivan@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byID, err := s.GetUserByID(u.ID)
	require.NoError(t, err)
	require.Equal(t, "Ivan", byID.FirstName)

	users, err := s.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestMemoryStoreCart(t *testing.T) {
	s := NewMemoryStore([]models.Product{testProduct("p1", "b101", models.CategoryRiverStone)})

	item, err := s.UpsertCartItem("u1", "p1", 1)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)

	// Adding the same product again merges into one line.
	item, err = s.UpsertCartItem("u1", "p1", 2)
	require.NoError(t, err)
	require.Equal(t, 3, item.Quantity)

	items, err := s.CartItems("u1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	item, err = s.UpdateCartItem(item.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 5, item.Quantity)

	require.NoError(t, s.RemoveCartItem(item.ID))
	items, err = s.CartItems("u1")
	require.NoError(t, err)
	require.Empty(t, items)

	_, err = s.UpsertCartItem("u1", "p1", 1)
	require.NoError(t, err)
	require.NoError(t, s.ClearCart("u1"))
	items, err = s.CartItems("u1")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMemoryStoreOrders(t *testing.T) {
	s := NewMemoryStore(nil)

	userID := "u1"
	o := &models.Order{
		OrderNumber:   "ORD-1-abc",
		UserID:        &userID,
		Status:        models.OrderStatusProcessing,
		PaymentStatus: models.PaymentStatusPaid,
		TotalEur:      200,
		TotalBgn:      390,
		Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 2, PriceEur: 100, PriceBgn: 195},
		},
	}
	require.NoError(t, s.CreateOrder(o))
	require.NotEmpty(t, o.ID)

	got, err := s.GetOrder(o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, o.ID, got.Items[0].OrderID)

	// Mutating a returned order must not touch the stored one.
	got.Items[0].Quantity = 99
	again, err := s.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, 2, again.Items[0].Quantity)

	byUser, err := s.ListOrdersByUser(userID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	byUser, err = s.ListOrdersByUser("someone-else")
	require.NoError(t, err)
	require.Empty(t, byUser)

	all, err := s.ListOrders()
	require.NoError(t, err)
	require.Len(t, all, 1)

	updated, err := s.UpdateOrderStatus(o.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, updated.Status)

	updated, err = s.UpdateOrderPaymentStatus(o.ID, models.PaymentStatusRefunded)
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusRefunded, updated.PaymentStatus)

	_, err = s.UpdateOrderStatus("missing", models.OrderStatusShipped)
	require.ErrorIs(t, err, ErrNotFound)
}
