package handler

import (
	"net/http"

	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products, /filters, /categories
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 省略した項目は変更しない
type UpdateFilterRequest struct {
	Search   *string `json:"search"`
	Category *string `json:"category"`
	Sort     *string `json:"sort"`
}

type CategoriesResponse struct {
	Items []string `json:"items"`
}

// 商品一覧のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/categories", h.categories)

	e.GET("/filters", h.getFilter)
	e.PUT("/filters", h.putFilter)
	e.DELETE("/filters", h.clearFilter)
}

// q/category/sort があれば絞り込み条件に反映してから返す
func (h *ProductHandler) list(c echo.Context) error {
	params := c.QueryParams()

	var in usecase.UpdateFilterInput
	if params.Has("q") {
		q := params.Get("q")
		in.Search = &q
	}
	if params.Has("category") {
		category := params.Get("category")
		in.Category = &category
	}
	if params.Has("sort") {
		sort := params.Get("sort")
		in.Sort = &sort
	}
	if _, err := h.uc.UpdateFilter(in); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) categories(c echo.Context) error {
	cats := h.uc.Categories()
	items := make([]string, 0, len(cats))
	for _, cat := range cats {
		items = append(items, string(cat))
	}
	return c.JSON(http.StatusOK, CategoriesResponse{Items: items})
}

func (h *ProductHandler) getFilter(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Filter())
}

func (h *ProductHandler) putFilter(c echo.Context) error {
	var req UpdateFilterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	f, err := h.uc.UpdateFilter(usecase.UpdateFilterInput{
		Search:   req.Search,
		Category: req.Category,
		Sort:     req.Sort,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// Clear
func (h *ProductHandler) clearFilter(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.ClearFilters())
}
