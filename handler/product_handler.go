package handler

import (
	"encoding/json"
	"go-shop-api/common"
	"go-shop-api/service"
	"net/http"
)

type ProductHandler struct {
	service *service.ProductService
}

func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProducts godoc
// @Summary      List all products
// @Description  public product catalog, served cache-first
// @Tags         products
// @Produce      json
// @Success      200  {array}  model.Product
// @Router       /api/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) *common.AppError {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve products", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)

	return nil
}
