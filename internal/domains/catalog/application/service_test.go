package application

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patanova/groomer-api/internal/domains/catalog/adapters/memory"
	"github.com/patanova/groomer-api/internal/domains/catalog/ports"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	service := NewService(memory.NewServiceRepository(), memory.NewProductRepository())
	var seq int
	service.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return service
}

func TestCreateService(t *testing.T) {
	catalog := newTestService(t)

	created, err := catalog.CreateService(context.Background(), CreateServiceInput{
		Name:     "Banho",
		Duration: "45 min",
		Price:    40,
	})
	require.NoError(t, err)
	assert.Equal(t, "Banho", created.Name)
	assert.Equal(t, 40.0, created.Price)
}

func TestCreateServiceInvalid(t *testing.T) {
	catalog := newTestService(t)
	ctx := context.Background()

	_, err := catalog.CreateService(ctx, CreateServiceInput{Name: "", Price: 40})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = catalog.CreateService(ctx, CreateServiceInput{Name: "Banho", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateServicePartial(t *testing.T) {
	catalog := newTestService(t)
	ctx := context.Background()

	created, err := catalog.CreateService(ctx, CreateServiceInput{Name: "Banho", Price: 40})
	require.NoError(t, err)

	price := 55.0
	updated, err := catalog.UpdateService(ctx, created.ID, UpdateServiceInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 55.0, updated.Price)
	assert.Equal(t, "Banho", updated.Name)
}

func TestListServicesOrderedByName(t *testing.T) {
	catalog := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Tosa", "Banho", "Hidratação"} {
		_, err := catalog.CreateService(ctx, CreateServiceInput{Name: name, Price: 10})
		require.NoError(t, err)
	}

	services, err := catalog.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, "Banho", services[0].Name)
	assert.Equal(t, "Hidratação", services[1].Name)
	assert.Equal(t, "Tosa", services[2].Name)
}

func TestDeleteService(t *testing.T) {
	catalog := newTestService(t)
	ctx := context.Background()

	created, err := catalog.CreateService(ctx, CreateServiceInput{Name: "Banho", Price: 40})
	require.NoError(t, err)

	require.NoError(t, catalog.DeleteService(ctx, created.ID))
	_, err = catalog.GetService(ctx, created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	assert.ErrorIs(t, catalog.DeleteService(ctx, created.ID), ports.ErrNotFound)
}

func TestCreateProduct(t *testing.T) {
	catalog := newTestService(t)

	old := 80.0
	created, err := catalog.CreateProduct(context.Background(), CreateProductInput{
		Name:     "Shampoo Neutro",
		Price:    64,
		OldPrice: &old,
		Rating:   4.5,
		Reviews:  12,
		Tag:      "NEW",
	})
	require.NoError(t, err)
	assert.Equal(t, "Shampoo Neutro", created.Name)
	require.NotNil(t, created.OldPrice)
	assert.Equal(t, 80.0, *created.OldPrice)
}

func TestCreateProductInvalid(t *testing.T) {
	catalog := newTestService(t)
	ctx := context.Background()

	_, err := catalog.CreateProduct(ctx, CreateProductInput{Name: "Shampoo", Price: 10, Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = catalog.CreateProduct(ctx, CreateProductInput{Name: "Shampoo", Price: 10, Tag: "SALE"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProductPartial(t *testing.T) {
	catalog := newTestService(t)
	ctx := context.Background()

	created, err := catalog.CreateProduct(ctx, CreateProductInput{Name: "Shampoo", Price: 10})
	require.NoError(t, err)

	tag := "OUT_OF_STOCK"
	updated, err := catalog.UpdateProduct(ctx, created.ID, UpdateProductInput{Tag: &tag})
	require.NoError(t, err)
	assert.Equal(t, "OUT_OF_STOCK", string(updated.Tag))
	assert.Equal(t, "Shampoo", updated.Name)
}

func TestGetProductMissing(t *testing.T) {
	catalog := newTestService(t)
	_, err := catalog.GetProduct(context.Background(), "ghost")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
