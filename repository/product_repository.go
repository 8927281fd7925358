package repository

import (
	"database/sql"
	"go-shop-api/model"
)

// IProductRepository defines the contract for product database operations.
type IProductRepository interface {
	GetAllProducts() ([]*model.Product, error)
}

// ProductRepository implements IProductRepository.
type ProductRepository struct {
	DB *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) GetAllProducts() ([]*model.Product, error) {
	query := `SELECT id, name, price, image, category, description FROM products ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*model.Product{}
	for rows.Next() {
		p := &model.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Category, &p.Description); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
