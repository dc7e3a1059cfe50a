package services

import (
	"github.com/iam-david1/shophub/internal/domain"
	"github.com/iam-david1/shophub/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}
