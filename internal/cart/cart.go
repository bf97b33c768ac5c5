// Package cart holds the datasets a user has set aside for comparison or
// purchase enquiry. There is no checkout, payment or order state.
package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/joshhuu/data-navigator-ai/internal/models"
)

var (
	ErrNotInCart        = errors.New("dataset not in cart")
	ErrCompareSelection = errors.New("select 2 or 3 distinct datasets from the cart")
)

// CheckoutMessage is returned in place of a real checkout.
const CheckoutMessage = "Checkout is not available yet. Our team will contact you about licensing the datasets in your cart."

type Item struct {
	Dataset models.Dataset `json:"dataset"`
	AddedAt time.Time      `json:"addedAt"`
}

// Cart is an ordered, duplicate-free list of items.
type Cart struct {
	Items []Item `json:"items"`
}

// Add appends ds unless a dataset with the same id is already present.
// It reports whether the cart changed.
func (c *Cart) Add(ds models.Dataset, now time.Time) bool {
	if c.Contains(ds.ID) {
		return false
	}
	c.Items = append(c.Items, Item{Dataset: ds, AddedAt: now})
	return true
}

// Remove deletes the dataset with the given id. It reports whether the cart changed.
func (c *Cart) Remove(id string) bool {
	for i, item := range c.Items {
		if item.Dataset.ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) Contains(id string) bool {
	for _, item := range c.Items {
		if item.Dataset.ID == id {
			return true
		}
	}
	return false
}

func (c *Cart) Count() int {
	return len(c.Items)
}

func (c *Cart) IDs() []string {
	ids := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.Dataset.ID)
	}
	return ids
}

// SelectForCompare returns the cart datasets named by ids, in ids order.
// Between 2 and 3 distinct ids are required and each must be in the cart.
func (c *Cart) SelectForCompare(ids []string) ([]models.Dataset, error) {
	seen := map[string]struct{}{}
	var out []models.Dataset
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %s selected twice", ErrCompareSelection, id)
		}
		seen[id] = struct{}{}

		ds, ok := c.find(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotInCart, id)
		}
		out = append(out, ds)
	}
	if len(out) < 2 || len(out) > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrCompareSelection, len(out))
	}
	return out, nil
}

func (c *Cart) find(id string) (models.Dataset, bool) {
	for _, item := range c.Items {
		if item.Dataset.ID == id {
			return item.Dataset, true
		}
	}
	return models.Dataset{}, false
}
