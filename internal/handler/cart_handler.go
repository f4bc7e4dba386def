package handler

import (
	"net/http"
	"strconv"

	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
// 範囲外の数量・無い明細はエラーにせず、変わらないカートを返す。
type CartHandler struct {
	cartUC    *usecase.CartUsecase
	productUC *usecase.ProductUsecase
}

// DI
func NewCartHandler(cartUC *usecase.CartUsecase, productUC *usecase.ProductUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC, productUC: productUC}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// /cart, /cart/{id} を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("", h.addToCart)
	g.PATCH("/:id", h.patchItem)
	g.DELETE("/:id", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cartUC.Cart())
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.productUC.FindProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		return writeError(c, err)
	}

	//在庫0はボタン無効と同じ扱い
	if !p.InStock() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "out of stock"})
	}

	h.cartUC.AddToCart(c.Request().Context(), p)
	return c.JSON(http.StatusOK, h.cartUC.Cart())
}

// 上限は明細の stock を渡す
func (h *CartHandler) patchItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	line, _ := h.cartUC.Line(id)
	h.cartUC.UpdateQuantity(c.Request().Context(), id, req.Quantity, line.Stock)

	return c.JSON(http.StatusOK, h.cartUC.Cart())
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	h.cartUC.RemoveFromCart(c.Request().Context(), id)
	return c.JSON(http.StatusOK, h.cartUC.Cart())
}
