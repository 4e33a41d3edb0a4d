// Package cart implements the line-item operations shared by the guest cart
// and the per-user server cart document.
package cart

import "blackcoffee-backend/internal/models"

// AddItem adds one unit of item to items. An existing line with the same id
// gets its quantity incremented; otherwise a new line with quantity 1 is
// appended. The incoming quantity on item is ignored.
func AddItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			return items
		}
	}
	item.Quantity = 1
	return append(items, item)
}

// RemoveItem drops the line with the given id. Removing an absent id is a
// no-op.
func RemoveItem(items []models.CartItem, id string) []models.CartItem {
	out := items[:0]
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// UpdateQuantity sets the quantity of the line with the given id. A quantity
// of zero or less removes the line.
func UpdateQuantity(items []models.CartItem, id string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return RemoveItem(items, id)
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}
	return items
}

// TotalPrice is the sum of price times quantity over all lines.
func TotalPrice(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems is the sum of quantities over all lines.
func TotalItems(items []models.CartItem) int {
	var total int
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// Merge reconciles a locally kept cart with the server copy at login. The
// server copy wins for any id present in both; local-only lines are appended
// after the server lines, so nothing added while logged out is lost.
func Merge(server, local []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, len(server))
	copy(merged, server)

	seen := make(map[string]bool, len(server))
	for _, item := range server {
		seen[item.ID] = true
	}
	for _, item := range local {
		if !seen[item.ID] && item.Quantity > 0 {
			merged = append(merged, item)
		}
	}
	return merged
}
