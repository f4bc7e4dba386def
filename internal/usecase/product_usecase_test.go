package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"minishop/internal/domain/model"
	"minishop/internal/infra/catalog"
	infraRepo "minishop/internal/infra/repository"
	repo "minishop/internal/repository"
	"minishop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func newStaticProductUsecase() *usecase.ProductUsecase {
	return usecase.NewProductUsecase(infraRepo.NewProductStaticRepository(catalog.MustProducts()))
}

func strPtr(s string) *string { return &s }

func assertHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
	assert.Equal(t, msg, he.Message)
}

func TestProductUsecase_ListProducts_All(t *testing.T) {
	uc := newStaticProductUsecase()

	out, err := uc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15, out.Total)
	assert.Empty(t, out.Message)

	assert.Equal(t, "₹70000", out.Items[0].PriceLabel)
	assert.Equal(t, "In Stock", out.Items[0].StockStatus)
	assert.True(t, out.Items[0].InStock)
	assert.Equal(t, "Out of Stock", out.Items[3].StockStatus)
	assert.False(t, out.Items[3].InStock)
}

func TestProductUsecase_ListProducts_UsesFilterState(t *testing.T) {
	ctx := context.Background()
	uc := newStaticProductUsecase()

	_, err := uc.SetCategory("Accessories")
	require.NoError(t, err)
	_, err = uc.SetSort("low")
	require.NoError(t, err)

	out, err := uc.ListProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, out.Total)
	assert.Equal(t, int64(15), out.Items[0].ID)
	assert.Equal(t, model.FilterState{Category: model.CategoryAccessories, Sort: model.SortPriceLow}, out.Filter)

	uc.SetSearch("zzz")
	out, err = uc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Items)
	assert.Equal(t, "No products found", out.Message)
}

func TestProductUsecase_ClearFilters(t *testing.T) {
	uc := newStaticProductUsecase()
	uc.SetSearch("shoe")
	_, _ = uc.SetCategory("Fashion")
	_, _ = uc.SetSort("high")

	assert.Equal(t, model.FilterState{}, uc.ClearFilters())
	assert.Equal(t, model.FilterState{}, uc.Filter())
}

func TestProductUsecase_UpdateFilter_Validation(t *testing.T) {
	uc := newStaticProductUsecase()
	uc.SetSearch("mouse")

	_, err := uc.UpdateFilter(usecase.UpdateFilterInput{Search: strPtr("x"), Category: strPtr("Food")})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid category")

	_, err = uc.UpdateFilter(usecase.UpdateFilterInput{Search: strPtr("x"), Sort: strPtr("cheap")})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid sort")

	// 途中まで反映されない
	assert.Equal(t, "mouse", uc.Filter().Search)

	f, err := uc.UpdateFilter(usecase.UpdateFilterInput{Category: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "mouse", f.Search)
	assert.Equal(t, model.Category(""), f.Category)
}

func TestProductUsecase_ListProducts_DBError(t *testing.T) {
	pRepo := new(ProductRepoMock)
	pRepo.On("ListAll", mock.Anything).Return(nil, errors.New("db down"))

	uc := usecase.NewProductUsecase(pRepo)
	_, err := uc.ListProducts(context.Background())
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")
	pRepo.AssertExpectations(t)
}

func TestProductUsecase_FindProduct(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "iPhone 14"}, nil)
	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)
	pRepo.On("FindByID", mock.Anything, int64(7)).Return(model.Product{}, errors.New("db down"))

	uc := usecase.NewProductUsecase(pRepo)

	p, err := uc.FindProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 14", p.Name)

	_, err = uc.FindProduct(ctx, 99)
	assertHTTPError(t, err, http.StatusNotFound, "not found")

	_, err = uc.FindProduct(ctx, 7)
	assertHTTPError(t, err, http.StatusInternalServerError, "db error")

	_, err = uc.FindProduct(ctx, 0)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid product id")

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_Categories(t *testing.T) {
	uc := newStaticProductUsecase()
	assert.Equal(t, []model.Category{"Electronics", "Fashion", "Accessories"}, uc.Categories())
}
