package cart

import (
	"testing"

	"blackcoffee-backend/internal/models"
)

func item(id string, price float64, qty int) models.CartItem {
	return models.CartItem{ID: id, Name: "Кава " + id, Price: price, Quantity: qty}
}

func TestAddItemTwiceIncrementsQuantity(t *testing.T) {
	var items []models.CartItem

	items = AddItem(items, item("p1", 100, 0))
	items = AddItem(items, item("p1", 100, 0))

	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", items[0].Quantity)
	}
}

func TestAddItemDifferentIDsAppend(t *testing.T) {
	var items []models.CartItem
	items = AddItem(items, item("p1", 100, 0))
	items = AddItem(items, item("p2", 150, 0))

	if len(items) != 2 {
		t.Fatalf("expected two line items, got %d", len(items))
	}
	if items[0].ID != "p1" || items[1].ID != "p2" {
		t.Errorf("order not preserved: %v", items)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	items := []models.CartItem{item("p1", 100, 2), item("p2", 150, 1)}

	items = UpdateQuantity(items, "p1", 0)

	for _, it := range items {
		if it.ID == "p1" {
			t.Fatal("item should be absent after quantity 0")
		}
	}
	if len(items) != 1 {
		t.Errorf("expected one remaining item, got %d", len(items))
	}
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	items := []models.CartItem{item("p1", 100, 2)}
	items = UpdateQuantity(items, "p1", -3)
	if len(items) != 0 {
		t.Errorf("expected empty cart, got %v", items)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	items := []models.CartItem{item("p1", 100, 1)}
	items = UpdateQuantity(items, "p1", 5)
	if items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", items[0].Quantity)
	}
}

func TestRemoveAbsentIDIsNoop(t *testing.T) {
	items := []models.CartItem{item("p1", 100, 1)}
	items = RemoveItem(items, "missing")
	if len(items) != 1 {
		t.Errorf("expected untouched cart, got %v", items)
	}
}

func TestTotals(t *testing.T) {
	items := []models.CartItem{item("p1", 100, 2), item("p2", 75.5, 3)}

	if got := TotalPrice(items); got != 100*2+75.5*3 {
		t.Errorf("TotalPrice = %v", got)
	}
	if got := TotalItems(items); got != 5 {
		t.Errorf("TotalItems = %d, want 5", got)
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	if got := TotalPrice(nil); got != 0 {
		t.Errorf("TotalPrice(nil) = %v, want 0", got)
	}
	if got := TotalItems(nil); got != 0 {
		t.Errorf("TotalItems(nil) = %d, want 0", got)
	}
}

func TestMergeServerWinsOnSharedID(t *testing.T) {
	server := []models.CartItem{item("p1", 100, 3)}
	local := []models.CartItem{item("p1", 100, 1), item("p2", 150, 2)}

	merged := Merge(server, local)

	if len(merged) != 2 {
		t.Fatalf("expected two lines, got %d", len(merged))
	}
	if merged[0].ID != "p1" || merged[0].Quantity != 3 {
		t.Errorf("server quantity should win: %+v", merged[0])
	}
	if merged[1].ID != "p2" || merged[1].Quantity != 2 {
		t.Errorf("local-only item should survive: %+v", merged[1])
	}
}

func TestMergeEmptyServerKeepsLocal(t *testing.T) {
	local := []models.CartItem{item("p1", 100, 1)}
	merged := Merge(nil, local)
	if len(merged) != 1 || merged[0].ID != "p1" {
		t.Errorf("got %v", merged)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	server := []models.CartItem{item("p1", 100, 3)}
	local := []models.CartItem{item("p2", 150, 2)}

	_ = Merge(server, local)

	if len(server) != 1 || len(local) != 1 {
		t.Errorf("inputs mutated: server=%v local=%v", server, local)
	}
}
