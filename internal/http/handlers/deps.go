package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/iam-david1/shophub/internal/repos"
	"github.com/iam-david1/shophub/internal/services"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	OrderHandler    *OrderHandler
	ContactHandler  *ContactHandler
	SalonHandler    *SalonHandler
	HomecareHandler *HomecareHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	contactRepo := repos.NewContactRepo(db)
	salonRepo := repos.NewSalonRepo(db)
	careRepo := repos.NewHomecareRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	orderSvc := services.NewOrderService(orderRepo)
	contactSvc := services.NewContactService(contactRepo)
	salonSvc := services.NewSalonService(salonRepo)
	careSvc := services.NewHomecareService(careRepo)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		OrderHandler:    &OrderHandler{Order: orderSvc},
		ContactHandler:  &ContactHandler{Contact: contactSvc},
		SalonHandler:    &SalonHandler{Salon: salonSvc},
		HomecareHandler: &HomecareHandler{Care: careSvc},
	}
}
