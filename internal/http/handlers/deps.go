package handlers

import (
	"dukastore/internal/services"
)

type Deps struct {
	StorefrontHandler *StorefrontHandler
	AuthHandler       *AuthHandler
	CartHandler       *CartHandler
	OrderHandler      *OrderHandler
	ReviewHandler     *ReviewHandler
	AdminHandler      *AdminHandler
}

func NewDeps(store *services.Store) *Deps {
	return &Deps{
		StorefrontHandler: &StorefrontHandler{Store: store},
		AuthHandler:       &AuthHandler{Store: store},
		CartHandler:       &CartHandler{Store: store},
		OrderHandler:      &OrderHandler{Store: store},
		ReviewHandler:     &ReviewHandler{Store: store},
		AdminHandler:      &AdminHandler{Store: store},
	}
}
