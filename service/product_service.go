// file: service/product_service.go

package service

import (
	"context"
	"encoding/json"
	"go-shop-api/model"
	"go-shop-api/repository"
	"time"
)

const productCacheKey = "products:all"
const productCacheTTL = 10 * time.Minute

// ProductService serves the public product listing, utilizing a
// cache-aside strategy on top of Redis.
type ProductService struct {
	repo  repository.IProductRepository
	cache ICacheClient
}

func NewProductService(repo repository.IProductRepository, cache ICacheClient) *ProductService {
	return &ProductService{
		repo:  repo,
		cache: cache,
	}
}

// ListProducts returns all products, preferring the cached copy.
func (s *ProductService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	// 1. Try to get data from Redis.
	cached, err := s.cache.Get(ctx, productCacheKey).Result()
	if err == nil {
		var products []*model.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
	}

	// 2. Cache miss. Fetch from the database.
	products, err := s.repo.GetAllProducts()
	if err != nil {
		return nil, err
	}

	// 3. Store the result in Redis for future requests.
	if data, err := json.Marshal(products); err == nil {
		s.cache.Set(ctx, productCacheKey, data, productCacheTTL)
	}

	return products, nil
}
