package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/joshhuu/data-navigator-ai/internal/auth"
	"github.com/joshhuu/data-navigator-ai/internal/cart"
)

// loadCart resolves the user's stored cart rows against the catalog.
// Rows for datasets no longer in the catalog are dropped.
func (s *Server) loadCart(c echo.Context) (*cart.Cart, error) {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return nil, err
	}
	entries, err := s.Store.ListCart(c.Request().Context(), userID)
	if err != nil {
		return nil, err
	}

	cc := &cart.Cart{Items: []cart.Item{}}
	for _, e := range entries {
		if ds, ok := s.Catalog.ByID(e.DatasetID); ok {
			cc.Add(ds, e.AddedAt)
		}
	}
	return cc, nil
}

func (s *Server) respondCart(c echo.Context, status int) error {
	cc, err := s.loadCart(c)
	if err != nil {
		c.Logger().Errorf("Failed to load cart: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cart"})
	}
	return c.JSON(status, cc)
}

func (s *Server) handleGetCart(c echo.Context) error {
	return s.respondCart(c, http.StatusOK)
}

func (s *Server) handleAddToCart(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	ds, ok := s.Catalog.ByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	added, err := s.Store.AddToCart(c.Request().Context(), userID, ds.ID)
	if err != nil {
		c.Logger().Errorf("Failed to add %s to cart: %v", ds.ID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add to cart"})
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	return s.respondCart(c, status)
}

func (s *Server) handleRemoveFromCart(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	removed, err := s.Store.RemoveFromCart(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		c.Logger().Errorf("Failed to remove from cart: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove from cart"})
	}
	if !removed {
		return c.JSON(http.StatusNotFound, map[string]string{"error": cart.ErrNotInCart.Error()})
	}
	return s.respondCart(c, http.StatusOK)
}

func (s *Server) handleClearCart(c echo.Context) error {
	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	if err := s.Store.ClearCart(c.Request().Context(), userID); err != nil {
		c.Logger().Errorf("Failed to clear cart: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to clear cart"})
	}
	return c.NoContent(http.StatusNoContent)
}

// handleCheckout acknowledges the request without creating any order.
func (s *Server) handleCheckout(c echo.Context) error {
	cc, err := s.loadCart(c)
	if err != nil {
		c.Logger().Errorf("Failed to load cart: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cart"})
	}
	if cc.Count() == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":    cart.CheckoutMessage,
		"datasetIds": cc.IDs(),
	})
}

func (s *Server) handleCompareCart(c echo.Context) error {
	cc, err := s.loadCart(c)
	if err != nil {
		c.Logger().Errorf("Failed to load cart: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cart"})
	}

	datasets, err := cc.SelectForCompare(splitCSV(c.QueryParam("ids")))
	if errors.Is(err, cart.ErrCompareSelection) || errors.Is(err, cart.ErrNotInCart) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return s.respondComparison(c, datasets)
}
